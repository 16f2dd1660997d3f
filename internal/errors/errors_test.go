package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	base := errors.New("disk gone")
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{"message wins", New(CodeSourceReadFailed, "read species list", base), "read species list"},
		{"falls back to wrapped", New(CodeSourceReadFailed, "", base), "disk gone"},
		{"falls back to code", New(CodePayloadInvalid, "", nil), "payload_invalid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeOfWalksChain(t *testing.T) {
	base := errors.New("missing")
	err := fmt.Errorf("load: %w", New(CodeSourceNotFound, "species file not found", base))

	if got := CodeOf(err); got != CodeSourceNotFound {
		t.Errorf("CodeOf = %q, want %q", got, CodeSourceNotFound)
	}
	if !IsCode(err, CodeSourceNotFound) {
		t.Error("IsCode should match through wrapping")
	}
	if !errors.Is(err, base) {
		t.Error("Unwrap should expose the cause")
	}
	if CodeOf(base) != CodeUnknown {
		t.Error("plain errors should report CodeUnknown")
	}
	if CodeOf(nil) != CodeUnknown {
		t.Error("nil should report CodeUnknown")
	}
}
