// Package lsp is a language server for document files: diagnostics, color
// decorations, hover, go to definition, completion and formatting.
package lsp

import (
	"net/url"
	"path"

	"github.com/sketch-hq/color-variables-migrator/internal/format"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const serverName = "colorvars-lsp"

var log = commonlog.GetLogger("colorvars.lsp")

type Server struct {
	handler   protocol.Handler
	docs      *DocumentStore
	version   string
	verbosity int
}

func NewServer(version string, verbosity int) *Server {
	s := &Server{
		docs:      NewDocumentStore(),
		version:   version,
		verbosity: verbosity,
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentDefinition:        s.textDocumentDefinition,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentColor:             s.textDocumentDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}

	return s
}

func (s *Server) Run() error {
	commonlog.Configure(s.verbosity, nil)
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"=", " "},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	s.docs.Open(uri, params.TextDocument.Text)
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.docs.Update(uri, c.Text)
		}
	}
	s.publishDiagnostics(ctx, uri)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(string(params.TextDocument.URI))
	// Clear what the editor still shows for the file.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentFormatting(_ *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return formatEdits(content)
}

// formatEdits returns a single whole-document edit, or none when the content
// is already formatted.
func formatEdits(content string) ([]protocol.TextEdit, error) {
	formatted, err := format.Format(content)
	if err != nil {
		return nil, err
	}
	if formatted == content {
		return []protocol.TextEdit{}, nil
	}
	lines := splitLines(content)
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: uint32(len(lines)), Character: 0},
		},
		NewText: formatted,
	}}, nil
}

// getResult returns the analysis for an open document, or nil.
func (s *Server) getResult(uri string) *AnalysisResult {
	return s.docs.Result(uri, func(content string) *AnalysisResult {
		return Analyze(filenameFromURI(uri), content)
	})
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri string) {
	result := s.getResult(uri)
	if result == nil {
		return
	}
	diags := result.Diagnostics
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}
	log.Debugf("%s: %d diagnostic(s)", uri, len(diags))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(uri),
		Diagnostics: diags,
	})
}

// filenameFromURI returns the base name used in HCL ranges.
func filenameFromURI(uri string) string {
	if u, err := url.Parse(uri); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return uri
}
