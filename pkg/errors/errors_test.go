package errors

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"
	"time"
)

type testHandler struct {
	onError func(*DevMenuError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DevMenuError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestDevMenuErrorString(t *testing.T) {
	err := &DevMenuError{
		Op:   "widgets.NewFloatingControl",
		Kind: KindConfig,
		Err:  &ValidationError{Field: "EdgeThreshold", Value: -1.0, Reason: "must be >= 0"},
	}
	got := err.Error()
	want := "widgets.NewFloatingControl [config]: invalid EdgeThreshold -1: must be >= 0"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDevMenuErrorUnwrap(t *testing.T) {
	inner := &ValidationError{Field: "FreeSize", Value: 0, Reason: "must be positive"}
	err := error(&DevMenuError{Op: "test", Kind: KindConfig, Err: inner})

	var ve *ValidationError
	if !stderrors.As(err, &ve) {
		t.Fatal("expected errors.As to find the ValidationError")
	}
	if ve.Field != "FreeSize" {
		t.Errorf("Field = %q", ve.Field)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindGesture, "gesture"},
		{KindCallback, "callback"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got := err.Error(); got != "panic: boom" {
		t.Errorf("PanicError.Error() = %q", got)
	}
	err.Op = "widgets.OnActivate"
	if got := err.Error(); got != "panic in widgets.OnActivate: boom" {
		t.Errorf("PanicError.Error() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *DevMenuError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(err *DevMenuError) { captured = err }})
	defer SetHandler(oldHandler)

	Report(&DevMenuError{Op: "test.op", Kind: KindGesture, Err: stderrors.New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v", captured.Value)
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q", captured.Op)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleError(&DevMenuError{Op: "widgets.HandlePointer", Kind: KindGesture, Err: stderrors.New("stray pointer")})
	h.HandlePanic(&PanicError{Op: "widgets.OnActivate", Value: "boom", StackTrace: "frames"})

	out := buf.String()
	if !strings.Contains(out, "[devmenu error] widgets.HandlePointer: stray pointer") {
		t.Errorf("missing error line in %q", out)
	}
	if !strings.Contains(out, "[devmenu panic] widgets.OnActivate: boom") {
		t.Errorf("missing panic line in %q", out)
	}
	if strings.Contains(out, "Stack trace") {
		t.Error("non-verbose handler should not print stack traces")
	}

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Value: "boom", StackTrace: "frames"})
	if !strings.Contains(buf.String(), "Stack trace:\nframes") {
		t.Errorf("verbose handler should print stack, got %q", buf.String())
	}
}

func TestLogHandler_Ops(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Ops: []string{"widgets."}}

	h.HandleError(&DevMenuError{Op: "config.Resolve", Err: stderrors.New("skipped")})
	h.HandlePanic(&PanicError{Op: "snapshot.Render", Value: "skipped"})
	if buf.Len() != 0 {
		t.Errorf("unmatched ops should be dropped, got %q", buf.String())
	}

	h.HandleError(&DevMenuError{Op: "widgets.FloatingControl.HandlePointer", Err: stderrors.New("kept")})
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("matching op should be logged, got %q", buf.String())
	}
}
