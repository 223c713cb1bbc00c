package lsp

import (
	"testing"
)

func TestFormatEdits(t *testing.T) {
	edits, err := formatEdits("swatch \"a\" {\nname=\"A\"\ncolor=\"#000000\"\n}\n")
	if err != nil {
		t.Fatalf("formatEdits() error: %v", err)
	}
	if len(edits) != 1 {
		t.Fatalf("len(edits) = %d, want 1", len(edits))
	}
	want := "swatch \"a\" {\n  name  = \"A\"\n  color = \"#000000\"\n}\n"
	if edits[0].NewText != want {
		t.Errorf("NewText = %q, want %q", edits[0].NewText, want)
	}
	if edits[0].Range.Start.Line != 0 || edits[0].Range.End.Line != 5 {
		t.Errorf("Range = %+v, want lines 0-5", edits[0].Range)
	}
}

func TestFormatEdits_AlreadyFormatted(t *testing.T) {
	edits, err := formatEdits("swatch \"a\" {\n  name  = \"A\"\n  color = \"#000000\"\n}\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("expected no edits, got %+v", edits)
	}
}

func TestFilenameFromURI(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///home/me/designs/app.hcl", "app.hcl"},
		{"file:///tmp/my%20doc.hcl", "my doc.hcl"},
		{"untitled:1", "untitled:1"},
	}
	for _, tt := range tests {
		if got := filenameFromURI(tt.uri); got != tt.want {
			t.Errorf("filenameFromURI(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}
