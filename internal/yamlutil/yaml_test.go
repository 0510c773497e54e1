package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var got sample
		err := Unmarshal([]byte("name: guide\ncount: 3\n"), &got)
		if err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if got.Name != "guide" || got.Count != 3 {
			t.Errorf("got %+v, want {guide 3}", got)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var got sample
		if err := Unmarshal(nil, &got); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := Unmarshal([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		var got sample
		big := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := Unmarshal(big, &got); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		var got sample
		if err := Unmarshal([]byte("name: [unclosed"), &got); err == nil {
			t.Error("expected a parse error")
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		t.Parallel()

		var got sample
		if err := Unmarshal([]byte("name: x\nextra: y\n"), &got); err != nil {
			t.Errorf("Unmarshal() error = %v, want nil", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		var got sample
		if err := UnmarshalStrict([]byte("name: x\n"), &got); err != nil {
			t.Errorf("UnmarshalStrict() error = %v, want nil", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var got sample
		if err := UnmarshalStrict([]byte("name: x\nextra: y\n"), &got); err == nil {
			t.Error("expected an error for unknown field")
		}
	})
}
