package middlewarex

import (
	"net/http"

	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/httpx"
)

// TraceID keeps the caller's X-Trace-Id when it looks sane and issues a new
// one otherwise. The id is echoed in the response header.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, ok := contextx.ParseTraceID(r.Header.Get(httpx.HeaderNameTraceID))
		if !ok {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(httpx.HeaderNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
