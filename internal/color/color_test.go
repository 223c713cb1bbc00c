package color

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"with hash", "#eb6f92", Color{235, 111, 146, 255}, false},
		{"without hash", "eb6f92", Color{235, 111, 146, 255}, false},
		{"black", "#000000", Color{0, 0, 0, 255}, false},
		{"white", "#ffffff", Color{255, 255, 255, 255}, false},
		{"uppercase", "#AABBCC", Color{170, 187, 204, 255}, false},
		{"with alpha", "#aabbcc80", Color{170, 187, 204, 128}, false},
		{"transparent", "#00000000", Color{0, 0, 0, 0}, false},
		{"too short", "#fff", Color{}, true},
		{"seven digits", "#aabbccd", Color{}, true},
		{"invalid chars", "#zzzzzz", Color{}, true},
		{"trailing non-hex digit", "#12345G", Color{}, true},
		{"embedded spaces", "#1 2 3 ", Color{}, true},
		{"non-hex alpha", "#aabbccx0", Color{}, true},
		{"sign", "#+12345", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"opaque", RGB(235, 111, 146), "#EB6F92"},
		{"zero padding", RGB(1, 2, 3), "#010203"},
		{"translucent", Color{255, 0, 0, 128}, "#FF000080"},
		{"transparent", Color{}, "#00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.Hex(); got != tt.want {
				t.Errorf("Color.Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHexIsCanonical(t *testing.T) {
	// Differently spelled inputs of the same color must compare equal and print the same.
	a, err := ParseHex("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseHex("FF0000ff")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("%v != %v", a, b)
	}
	if a.Hex() != "#FF0000" {
		t.Errorf("Hex() = %q, want %q", a.Hex(), "#FF0000")
	}
}

func TestColorCSS(t *testing.T) {
	if got, want := RGB(235, 111, 146).CSS(), "rgb(235, 111, 146)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
	if got, want := (Color{0, 0, 0, 51}).CSS(), "rgba(0, 0, 0, 0.20)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}
