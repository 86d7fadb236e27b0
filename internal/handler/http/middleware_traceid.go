package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-poster-keeper/internal/utils"
)

// withTraceID attaches a child logger carrying trace_id to the request
// context. The id is taken from the X-Request-ID header the client adapter
// sends, or generated, and echoed back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.RequestIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(utils.RequestIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
