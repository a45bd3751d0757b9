package errors

import (
	stderrors "errors"
	"testing"
)

func TestNewRegistered(t *testing.T) {
	err := New("E001")
	if err.Code != "E001" {
		t.Errorf("Code = %q", err.Code)
	}
	if err.Category != CategoryStructural {
		t.Errorf("Category = %q", err.Category)
	}
	if !err.Fatal {
		t.Error("E001 should be fatal")
	}
	if err.Error() != "E001: fiber has no parent" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Message != "Unknown error" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Fatal {
		t.Error("unknown codes must not be fatal")
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := New("E201").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(New("E002")) {
		t.Error("E002 is fatal")
	}
	if IsFatal(New("E003")) {
		t.Error("E003 is recoverable")
	}
	if IsFatal(stderrors.New("plain")) {
		t.Error("plain errors are not fatal")
	}

	// Fatality is visible through wrapping.
	wrapped := Newf(CategoryHost, "outer").Wrap(New("E001"))
	if !IsFatal(wrapped) {
		t.Error("fatality should propagate through Unwrap")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E200") != nil {
		t.Error("FromError(nil) should be nil")
	}

	we := New("E200")
	if FromError(we, "E201") != we {
		t.Error("FromError should pass WeftError through")
	}

	err := FromError(stderrors.New("io"), "E201")
	if err.Code != "E201" {
		t.Errorf("Code = %q", err.Code)
	}
}
