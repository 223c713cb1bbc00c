package lsp

import "sync"

type openDocument struct {
	content string
	result  *AnalysisResult // nil until analyzed
}

// DocumentStore holds open document contents keyed by URI, with the analysis
// of the current content once it has been computed.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*openDocument
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*openDocument)}
}

func (s *DocumentStore) Open(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &openDocument{content: content}
}

// Update replaces the content and drops the cached analysis.
func (s *DocumentStore) Update(uri, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &openDocument{content: content}
}

func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[uri]
	if !ok {
		return "", false
	}
	return d.content, true
}

// Result returns the analysis of the document's current content, running
// analyze on first use.
func (s *DocumentStore) Result(uri string, analyze func(content string) *AnalysisResult) *AnalysisResult {
	s.mu.RLock()
	d, ok := s.docs[uri]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if d.result == nil {
		d.result = analyze(d.content)
	}
	return d.result
}
