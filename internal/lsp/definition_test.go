package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDefinition(t *testing.T) {
	result := Analyze("test.hcl", sampleDoc)
	const uri = "file:///tmp/test.hcl"

	tests := []struct {
		name     string
		pos      protocol.Position
		wantLine uint32
		wantNil  bool
	}{
		{name: "swatch reference", pos: protocol.Position{Line: 8, Character: 22}, wantLine: 0},
		{name: "style binding", pos: protocol.Position{Line: 14, Character: 12}, wantLine: 5},
		{name: "not a reference", pos: protocol.Position{Line: 7, Character: 20}, wantNil: true},
		{name: "past end of file", pos: protocol.Position{Line: 99}, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := definition(result, uri, tt.pos)
			if tt.wantNil {
				if loc != nil {
					t.Errorf("expected nil, got %+v", loc)
				}
				return
			}
			if loc == nil {
				t.Fatal("expected a location")
			}
			if loc.URI != uri {
				t.Errorf("URI = %q, want %q", loc.URI, uri)
			}
			if loc.Range.Start.Line != tt.wantLine {
				t.Errorf("definition on line %d, want %d", loc.Range.Start.Line, tt.wantLine)
			}
		})
	}
}

func TestDefinition_UnknownTarget(t *testing.T) {
	content := "layer \"a\" {\n  fill { swatch = \"nope\" }\n}\n"
	result := Analyze("test.hcl", content)
	if loc := definition(result, "file:///x.hcl", protocol.Position{Line: 1, Character: 20}); loc != nil {
		t.Errorf("expected nil for an undefined swatch, got %+v", loc)
	}
}

func TestDefinition_NilResult(t *testing.T) {
	if loc := definition(nil, "file:///x.hcl", protocol.Position{}); loc != nil {
		t.Errorf("expected nil, got %+v", loc)
	}
}
