package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"insurance_predict/pkg/contextx"
	"insurance_predict/pkg/errcodes"
	"insurance_predict/pkg/httpx/reply"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type testCodedError struct{}

func (testCodedError) Error() string                { return "model is not loaded: open model.txt" }
func (testCodedError) ErrorCode() failure.ErrorCode { return errcodes.ModelNotLoaded }
func (testCodedError) PublicMessage() string        { return "model is not loaded" }

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func TestError(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
	}{
		{
			name: "Invalid argument",
			err: failure.NewInvalidArgumentError(
				"bad gender",
				failure.WithCode(errcodes.InvalidGender),
			),
			statusCode: http.StatusBadRequest,
			code:       errcodes.InvalidGender.String(),
		},
		{
			name:       "Domain error",
			err:        fmt.Errorf("predict: %w", testCodedError{}),
			statusCode: http.StatusInternalServerError,
			code:       errcodes.ModelNotLoaded.String(),
		},
		{
			name:       "Plain error",
			err:        errors.New("boom"),
			statusCode: http.StatusInternalServerError,
			code:       errcodes.InternalServerError.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx := contextx.WithTraceID(context.Background(), "trace-1")
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var body errorBody
			rq.NoError(json.Unmarshal(w.Body.Bytes(), &body))
			rq.Equal(tc.code, body.Code)
			rq.Equal("trace-1", body.SupportID)
		})
	}
}

func TestHTML(t *testing.T) {
	rq := require.New(t)

	w := httptest.NewRecorder()
	reply.HTML(context.Background(), w, http.StatusOK, []byte("<p>ok</p>"))

	rq.Equal(http.StatusOK, w.Code)
	rq.Equal("text/html; charset=utf-8", w.Header().Get("Content-Type"))
	rq.Equal("<p>ok</p>", w.Body.String())
}
