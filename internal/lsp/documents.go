package lsp

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

type document struct {
	content string
	result  *AnalysisResult
}

// DocumentStore holds open documents and their analysis keyed by URI.
// Documents are analyzed when opened or updated.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[protocol.DocumentUri]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[protocol.DocumentUri]document)}
}

// Open stores a document and returns its analysis.
func (s *DocumentStore) Open(uri protocol.DocumentUri, content string) *AnalysisResult {
	return s.Update(uri, content)
}

// Update replaces a document's content and returns its new analysis.
func (s *DocumentStore) Update(uri protocol.DocumentUri, content string) *AnalysisResult {
	result := Analyze(string(uri), content)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{content: content, result: result}
	return result
}

func (s *DocumentStore) Close(uri protocol.DocumentUri) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

func (s *DocumentStore) Get(uri protocol.DocumentUri) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, ok
}

// Result returns the latest analysis of a document, or nil if it is not open.
func (s *DocumentStore) Result(uri protocol.DocumentUri) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri].result
}
