package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING REFERENCE ====================

// BookingReference derives the human readable reference from the booking
// id, e.g. HT-3F2A9C1B. It is unique whenever the id is.
func BookingReference(prefix string, id uuid.UUID) string {
	hex := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex[:8]))
}
