package http

import (
	"net/http"

	"github.com/MKhiriev/vault-unpacker/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// withTraceID reuses the caller's X-Trace-ID or generates one, echoes it in
// the response and stores it in the request context together with a child
// logger tagged with "trace_id".
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(r.Context(), traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
