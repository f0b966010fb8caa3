package clipboard

import (
	"errors"
	"os"
	"testing"
)

func TestOpenAndRead(t *testing.T) {
	if os.Getenv("AUTO_VAT_INTERACTIVE_TESTS") != "1" {
		t.Skip("set AUTO_VAT_INTERACTIVE_TESTS=1 to run against the real clipboard")
	}

	for _, backend := range []string{BackendNative, BackendCommand} {
		t.Run(backend, func(t *testing.T) {
			r, err := Open(backend)
			if err != nil {
				t.Skipf("%s clipboard unavailable: %v", backend, err)
			}
			if _, err := r.ReadText(); err != nil && !errors.Is(err, ErrNoText) {
				t.Errorf("ReadText failed: %v", err)
			}
		})
	}
}

func TestOpenUnknownBackendUsesNative(t *testing.T) {
	if os.Getenv("AUTO_VAT_INTERACTIVE_TESTS") != "1" {
		t.Skip("set AUTO_VAT_INTERACTIVE_TESTS=1 to run against the real clipboard")
	}

	r, err := Open("bogus")
	if err != nil {
		t.Skipf("native clipboard unavailable: %v", err)
	}
	if _, ok := r.(*Native); !ok {
		t.Errorf("Expected *Native, got %T", r)
	}
}
