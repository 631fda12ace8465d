package contextx

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/xid"
)

// maxTraceIDLen bounds trace ids accepted from callers.
const maxTraceIDLen = 64

type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

// ParseTraceID accepts a caller supplied id if it is short and printable.
func ParseTraceID(s string) (TraceID, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxTraceIDLen {
		return "", false
	}

	for _, r := range s {
		if r < '!' || r > '~' {
			return "", false
		}
	}

	return TraceID(s), true
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
