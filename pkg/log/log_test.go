package log

import (
	"testing"

	"github.com/google/uuid"
	"golang.org/x/net/context"
)

func TestErrorWithTraceID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	if got := ErrorWithTraceID(Fields{RequestIDKey: "01HZX"}, "boom"); got != "01HZX" {
		t.Errorf("trace id = %q, want the request id", got)
	}

	got := ErrorWithTraceID(nil, "boom")
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("trace id %q is not a uuid: %v", got, err)
	}
}

func TestWithRequestID(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	entry := WithRequestID(context.WithValue(context.Background(), RequestIDKey, "req-1"))
	if entry.Data[RequestIDKey] != "req-1" {
		t.Errorf("request_id = %v", entry.Data[RequestIDKey])
	}

	if WithRequestID(context.Background()).Data[RequestIDKey] != "unknown" {
		t.Error("missing request id should read unknown")
	}
}
