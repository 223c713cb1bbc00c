package lsp

import (
	"slices"
	"strings"

	"github.com/sketch-hq/color-variables-migrator/internal/document"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot   blockContext = iota
	contextSwatch              // inside swatch "<id>" {}
	contextStyle               // inside layer_style or text_style
	contextLayer               // inside layer, at any depth
	contextPaint               // inside fill, border or text_color
)

var (
	topLevelBlocks  = []string{"swatch", "layer_style", "text_style", "layer"}
	swatchMembers   = []string{"name", "color"}
	styleMembers    = []string{"name", "fill", "border", "text_color"}
	layerMembers    = []string{"name", "kind", "style", "out_of_sync", "fill", "border", "text_color", "layer"}
	paintAttributes = []string{"type", "color", "swatch"}
	childBlocks     = []string{"fill", "border", "text_color", "layer"}
	layerKinds      = []string{
		string(document.KindShape), string(document.KindText),
		string(document.KindGroup), string(document.KindSymbol),
	}
	fillTypes = []string{
		document.FillColor.String(), document.FillGradient.String(), document.FillPattern.String(),
	}
)

// complete produces completion items given an analysis result, document content,
// and cursor position.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if attr, ok := valuePosition(textBeforeCursor); ok {
		return valueCompletions(result, attr)
	}

	switch determineBlockContext(lines, int(pos.Line)) {
	case contextRoot:
		return blockSnippets(topLevelBlocks, true)
	case contextSwatch:
		return memberCompletions(swatchMembers, lines, int(pos.Line))
	case contextStyle:
		return memberCompletions(styleMembers, lines, int(pos.Line))
	case contextLayer:
		return memberCompletions(layerMembers, lines, int(pos.Line))
	case contextPaint:
		return memberCompletions(paintAttributes, lines, int(pos.Line))
	}
	return nil
}

// valuePosition reports whether the cursor sits right after `<attr> =` and
// returns the attribute name.
func valuePosition(textBeforeCursor string) (string, bool) {
	eqIdx := strings.LastIndex(textBeforeCursor, "=")
	if eqIdx == -1 {
		return "", false
	}
	if strings.TrimSpace(textBeforeCursor[eqIdx+1:]) != "" {
		return "", false
	}
	fields := strings.Fields(textBeforeCursor[:eqIdx])
	if len(fields) == 0 {
		return "", false
	}
	return fields[len(fields)-1], true
}

// valueCompletions offers the values an attribute accepts.
func valueCompletions(result *AnalysisResult, attr string) []protocol.CompletionItem {
	switch attr {
	case "swatch":
		return swatchCompletions(result)
	case "style":
		return styleCompletions(result)
	case "kind":
		return stringCompletions(layerKinds)
	case "type":
		return stringCompletions(fillTypes)
	case "color":
		return colorFunctionCompletions()
	}
	return nil
}

func swatchCompletions(result *AnalysisResult) []protocol.CompletionItem {
	if result == nil || result.Document == nil {
		return nil
	}
	var items []protocol.CompletionItem
	for _, s := range result.Document.Swatches() {
		insert := `"` + s.ID + `"`
		detail := s.Name + " " + s.Color.Hex()
		items = append(items, protocol.CompletionItem{
			Label:      s.ID,
			Kind:       completionKindPtr(protocol.CompletionItemKindColor),
			Detail:     &detail,
			InsertText: &insert,
		})
	}
	return items
}

func styleCompletions(result *AnalysisResult) []protocol.CompletionItem {
	if result == nil || result.Document == nil {
		return nil
	}
	var items []protocol.CompletionItem
	for _, s := range slices.Concat(result.Document.LayerStyles(), result.Document.TextStyles()) {
		insert := `"` + s.ID + `"`
		detail := s.Kind.String() + " " + s.Name
		items = append(items, protocol.CompletionItem{
			Label:      s.ID,
			Kind:       completionKindPtr(protocol.CompletionItemKindReference),
			Detail:     &detail,
			InsertText: &insert,
		})
	}
	return items
}

func stringCompletions(values []string) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(values))
	for _, v := range values {
		insert := `"` + v + `"`
		items = append(items, protocol.CompletionItem{
			Label:      v,
			Kind:       completionKindPtr(protocol.CompletionItemKindEnumMember),
			InsertText: &insert,
		})
	}
	return items
}

// colorFunctionCompletions returns snippets for the color constructors.
func colorFunctionCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	rgbSnippet := "rgb(${1:0}, ${2:0}, ${3:0})"
	rgbaSnippet := "rgba(${1:0}, ${2:0}, ${3:0}, ${4:1.0})"

	return []protocol.CompletionItem{
		{
			Label:            "rgb",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("rgb(red, green, blue)"),
			InsertText:       &rgbSnippet,
			InsertTextFormat: &snippetFormat,
		},
		{
			Label:            "rgba",
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr("rgba(red, green, blue, alpha)"),
			InsertText:       &rgbaSnippet,
			InsertTextFormat: &snippetFormat,
		},
	}
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			if parts := strings.Fields(line); len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}
		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[len(stack)-1] {
	case "swatch":
		return contextSwatch
	case "layer_style", "text_style":
		return contextStyle
	case "layer":
		return contextLayer
	case "fill", "border", "text_color":
		return contextPaint
	}
	return contextRoot
}

// memberCompletions returns the attributes and blocks valid in the current
// block, excluding attributes already set there.
func memberCompletions(members []string, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)

	var items []protocol.CompletionItem
	for _, name := range members {
		if slices.Contains(childBlocks, name) {
			items = append(items, blockSnippets([]string{name}, false)...)
			continue
		}
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  completionKindPtr(protocol.CompletionItemKindProperty),
			})
		}
	}
	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		depth += strings.Count(line, "}") - strings.Count(line, "{")
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// blockSnippets returns block completion items. Labeled blocks get an id
// placeholder.
func blockSnippets(names []string, labeled bool) []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range names {
		snippet := name + " {\n  $0\n}"
		if labeled || name == "layer" {
			snippet = name + ` "${1:id}" {` + "\n  $0\n}"
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}
	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	return complete(s.getResult(uri), content, params.Position), nil
}
