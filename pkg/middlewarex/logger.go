package middlewarex

import (
	"log/slog"
	"net/http"

	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/logx"
)

// Logger puts a request scoped logger into the context. It must run after
// TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			slog.String(logx.FieldURL, r.URL.Path),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
			slog.String(logx.FieldUserAgent, r.UserAgent()),
		}

		if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		} else {
			logger(ctx).Warn("request without trace id", logx.Error(err))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
