package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/logx"
	"insurance_predict/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		traceID string
	}{
		{name: "Generated", traceID: ""},
		{name: "Forwarded", traceID: "cs0l3c2n4k1a2b3c4d5e"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var got contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				got = traceID
			}))

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.traceID != "" {
				r.Header.Set("X-Trace-Id", tc.traceID)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.NotEmpty(got.String())
			rq.Equal(got.String(), w.Header().Get("X-Trace-Id"))

			if tc.traceID != "" {
				rq.Equal(tc.traceID, got.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("classifier exploded")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/predictions", http.NoBody))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(w.Body.String(), w.Header().Get("X-Trace-Id"))
}

func TestRecoveryAbortHandler(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rq.PanicsWithValue(http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}

func TestRequestLoggingMasksBody(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := middlewarex.RequestLogging(
		logx.NewSensitiveDataMasker(),
		4096,
	)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r := httptest.NewRequest(
		http.MethodPost,
		"/v1/predictions",
		strings.NewReader(`{"gender":"Female","age":42,"annualPremium":31000}`),
	)
	r = r.WithContext(contextx.WithLogger(r.Context(), log))

	h.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), "/v1/predictions")
	rq.NotContains(buf.String(), "Female")
	rq.NotContains(buf.String(), "31000")
}

func TestResponseLoggingSizesHTML(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := middlewarex.ResponseLogging(
		logx.NewSensitiveDataMasker(),
		4096,
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<input name="age" value="42">`))
	}))

	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	r = r.WithContext(contextx.WithLogger(r.Context(), log))

	h.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), "[html 29 bytes]")
	rq.NotContains(buf.String(), "<input")
}
