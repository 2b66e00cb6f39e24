package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/data/repository"
)

type InvoiceService interface {
	// Render returns the invoice of a booking owned by the caller as HTML.
	Render(ctx context.Context, bookingID string) ([]byte, error)
}

type invoiceService struct {
	bookingRepo repository.BookingRepository
	loc         *time.Location
	log         *zap.Logger
}

func NewInvoiceService(bookingRepo repository.BookingRepository, loc *time.Location, log *zap.Logger) InvoiceService {
	return &invoiceService{
		bookingRepo: bookingRepo,
		loc:         loc,
		log:         log.With(zap.String("service", "invoice")),
	}
}

var (
	invoiceMarkdown     goldmark.Markdown
	invoiceMarkdownOnce sync.Once
)

func getInvoiceMarkdown() goldmark.Markdown {
	invoiceMarkdownOnce.Do(func() {
		invoiceMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return invoiceMarkdown
}

func (s *invoiceService) Render(ctx context.Context, bookingID string) ([]byte, error) {
	booking, err := findOwnedBooking(ctx, s.bookingRepo, s.log, bookingID)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := getInvoiceMarkdown().Convert([]byte(InvoiceMarkdown(booking, s.loc)), &out); err != nil {
		s.log.Error("Failed to render invoice", zap.Error(err), zap.String("reference", booking.Reference))
		return nil, fmt.Errorf("render invoice: %w", err)
	}

	return out.Bytes(), nil
}

var vndPrinter = message.NewPrinter(language.Vietnamese)

// FormatVND formats an amount of dong with Vietnamese digit grouping, e.g. 1.250.000 ₫.
func FormatVND(amount int64) string {
	return vndPrinter.Sprintf("%d ₫", amount)
}

// InvoiceMarkdown builds the Markdown source of a booking invoice.
func InvoiceMarkdown(b *entity.Booking, loc *time.Location) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Invoice %s\n\n", b.Reference)
	fmt.Fprintf(&sb, "Issued %s. Status: **%s**.\n\n", b.CreatedAt.In(loc).Format("02/01/2006 15:04"), b.Status)

	sb.WriteString("## Contact\n\n")
	fmt.Fprintf(&sb, "- Name: %s\n", escapeMarkdown(b.ContactInfo.FullName))
	fmt.Fprintf(&sb, "- Email: %s\n", escapeMarkdown(b.ContactInfo.Email))
	fmt.Fprintf(&sb, "- Phone: %s\n", escapeMarkdown(b.ContactInfo.Phone))
	if b.ContactInfo.Note != "" {
		fmt.Fprintf(&sb, "- Note: %s\n", escapeMarkdown(b.ContactInfo.Note))
	}
	sb.WriteString("\n## Items\n\n")
	sb.WriteString("| Item | Detail | Amount |\n|---|---|---:|\n")

	switch b.Category {
	case entity.BookingCategoryFlight:
		for _, leg := range []*entity.FlightSnapshot{b.Snapshot.Flight, b.Snapshot.ReturnFlight} {
			if leg == nil {
				continue
			}
			fmt.Fprintf(&sb, "| %s %s | %s → %s, %s | %s x %d |\n",
				escapeMarkdown(leg.Airline), leg.FlightNumber,
				escapeMarkdown(leg.From), escapeMarkdown(leg.To),
				leg.DepartAt.In(loc).Format("02/01/2006 15:04"),
				FormatVND(leg.Price), len(b.Details.Passengers),
			)
		}
	case entity.BookingCategoryHotel:
		if b.Snapshot.Hotel != nil && b.Snapshot.Room != nil {
			fmt.Fprintf(&sb, "| %s | %s, %d night(s) x %d room(s) | %s |\n",
				escapeMarkdown(b.Snapshot.Hotel.Name), escapeMarkdown(b.Snapshot.Room.Name),
				b.Details.Nights, b.Details.RoomQuantity,
				FormatVND(b.Snapshot.Room.PricePerNight),
			)
		}
	case entity.BookingCategoryTour:
		if t := b.Snapshot.Tour; t != nil {
			fmt.Fprintf(&sb, "| %s | adults x %d | %s |\n", escapeMarkdown(t.Name), b.Details.Adults, FormatVND(t.Price))
			if b.Details.Children > 0 {
				fmt.Fprintf(&sb, "| %s | children x %d | %s |\n", escapeMarkdown(t.Name), b.Details.Children, FormatVND(ChildPrice(t.Price)))
			}
			if b.Details.Infants > 0 {
				fmt.Fprintf(&sb, "| %s | infants x %d | %s |\n", escapeMarkdown(t.Name), b.Details.Infants, FormatVND(InfantPrice(t.Price)))
			}
		}
	}

	fmt.Fprintf(&sb, "| **Total** | | **%s** |\n", FormatVND(b.TotalPrice))

	if len(b.Details.Passengers) > 0 {
		sb.WriteString("\n## Passengers\n\n")
		for i, p := range b.Details.Passengers {
			fmt.Fprintf(&sb, "%d. %s (%s)\n", i+1, escapeMarkdown(p.FullName), p.Type)
		}
	}

	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`, "`", "\\`",
	`[`, `\[`, `]`, `\]`, `<`, `&lt;`, `>`, `&gt;`, `#`, `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
