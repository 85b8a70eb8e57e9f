package serial

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeHexPayload(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []byte
	}{
		{"single byte", "AB", []byte{0xAB}},
		{"lowercase", "ab", []byte{0xAB}},
		{"multi byte", "48656C6C6F", []byte("Hello")},
		{"spaces between pairs", "48 65 6C 6C 6F", []byte("Hello")},
		{"mixed whitespace", "\t48\n65 6C\r6C 6F ", []byte("Hello")},
		{"empty", "", []byte{}},
		{"only whitespace", "   ", []byte{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeHexPayload(tc.input)
			if err != nil {
				t.Fatalf("DecodeHexPayload(%q) error: %v", tc.input, err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Fatalf("DecodeHexPayload(%q) = % X, want % X", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecodeHexPayloadInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"odd length", "ABC"},
		{"odd length after stripping", "A B C"},
		{"non-hex pair", "GZ"},
		{"non-hex tail", "48 6Q"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeHexPayload(tc.input)
			if !errors.Is(err, ErrInvalidHex) {
				t.Fatalf("DecodeHexPayload(%q) error = %v, want ErrInvalidHex", tc.input, err)
			}
		})
	}
}
