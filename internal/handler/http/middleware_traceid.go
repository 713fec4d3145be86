package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/rhsm-sync/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace ID, taken from the X-Trace-ID
// header when the caller sent one. The ID is echoed back, stored in the
// context and added to the request-scoped logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
