package alphabet

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"upper_bases", "ACGT", []byte{A, C, G, T}},
		{"lower_bases", "acgt", []byte{A, C, G, T}},
		{"mixed_case", "AcGt", []byte{A, C, G, T}},
		{"ambiguity_to_other", "ANTA", []byte{A, Other, T, A}},
		{"unknown_to_other", "A*T", []byte{A, Other, T}},
		{"empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode([]byte(tt.in))
			if err != nil {
				t.Fatalf("Encode(%q) error: %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeRejectsSentinel(t *testing.T) {
	_, err := Encode([]byte("AC$GT"))
	if !errors.Is(err, ErrSentinel) {
		t.Fatalf("Encode error = %v, want ErrSentinel", err)
	}
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Encode error type = %T, want *InputError", err)
	}
	if inputErr.Pos != 2 || inputErr.Sym != '$' {
		t.Errorf("InputError = {Pos: %d, Sym: %q}, want {Pos: 2, Sym: '$'}", inputErr.Pos, inputErr.Sym)
	}
}

func TestEncodePattern(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{"bases", "ACGT", []byte{A, C, G, T}},
		{"lower_bases", "acgt", []byte{A, C, G, T}},
		{"ambiguity_invalid", "ANA", []byte{A, Invalid, A}},
		{"sentinel_invalid", "A$", []byte{A, Invalid}},
		{"empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodePattern([]byte(tt.in)); !bytes.Equal(got, tt.want) {
				t.Errorf("EncodePattern(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	in := []byte("ACGTNACGT")
	codes, err := Encode(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := Decode(codes); !bytes.Equal(got, in) {
		t.Errorf("Decode(Encode(%q)) = %q", in, got)
	}
}

func TestDecodeSymbol(t *testing.T) {
	if got := DecodeSymbol(Sentinel); got != '$' {
		t.Errorf("DecodeSymbol(Sentinel) = %q, want '$'", got)
	}
	if got := DecodeSymbol(Other); got != 'N' {
		t.Errorf("DecodeSymbol(Other) = %q, want 'N'", got)
	}
}

// The sentinel must sort before every real symbol; the whole suffix order
// depends on it.
func TestSentinelIsMinimal(t *testing.T) {
	for _, c := range []byte{A, C, G, T, Other} {
		if Sentinel >= c {
			t.Fatalf("Sentinel code %d not smaller than symbol code %d", Sentinel, c)
		}
	}
	if !IsBase(A) || !IsBase(T) || IsBase(Sentinel) || IsBase(Other) || IsBase(Invalid) {
		t.Error("IsBase misclassifies codes")
	}
}
