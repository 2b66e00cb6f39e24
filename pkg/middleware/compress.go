package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compress gzips responses for clients that accept it. The event stream is
// excluded so events are not held back by the compressor.
func Compress() (func(http.Handler) http.Handler, error) {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(1024),
		gzhttp.ExceptContentTypes([]string{"text/event-stream"}),
	)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}, nil
}
