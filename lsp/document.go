// Copyright © 2026 The chill-lsp authors

package lsp

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Zaneham/Chill-lsp/analysis"
)

// instrumentationName identifies parse spans emitted by this package.
const instrumentationName = "github.com/Zaneham/Chill-lsp/lsp"

// Document represents an open text document tracked by the LSP server
// together with its current symbol model. The model is immutable once
// built; edits build a fresh model and swap it in under the lock, so
// request handlers never observe a half-updated table.
type Document struct {
	mu      sync.Mutex
	URI     string
	Version int32
	Content string
	model   *analysis.Model
}

// Model returns the document's current symbol model.
func (d *Document) Model() *analysis.Model {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.model
}

// Text returns the document's current content.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Content
}

// rebuild parses the content into a fresh model. Callers hold d.mu or
// have exclusive access to the document.
func (d *Document) rebuild(tracer trace.Tracer) {
	_, span := tracer.Start(context.Background(), "chill.parse",
		trace.WithAttributes(attribute.String("chill.document.uri", d.URI)))
	model := analysis.Parse(d.Content)
	span.SetAttributes(attribute.Int("chill.document.symbols", len(model.AllSymbols())))
	span.End()

	d.model = model
}

// DocumentStore manages open documents with thread-safe access. Documents
// for different URIs are fully independent.
type DocumentStore struct {
	mu     sync.RWMutex
	docs   map[string]*Document
	tracer trace.Tracer
}

// NewDocumentStore creates an empty document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs:   make(map[string]*Document),
		tracer: otel.Tracer(instrumentationName),
	}
}

// Open adds a document to the store and builds its model.
func (s *DocumentStore) Open(uri string, version int32, content string) *Document {
	doc := &Document{
		URI:     uri,
		Version: version,
		Content: content,
	}
	doc.rebuild(s.tracer)
	s.mu.Lock()
	s.docs[uri] = doc
	s.mu.Unlock()
	return doc
}

// Change updates a document's content (full sync) and rebuilds its model.
func (s *DocumentStore) Change(uri string, version int32, content string) *Document {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		doc = &Document{URI: uri}
		s.docs[uri] = doc
	}
	s.mu.Unlock()

	doc.mu.Lock()
	doc.Version = version
	doc.Content = content
	doc.rebuild(s.tracer)
	doc.mu.Unlock()
	return doc
}

// Close removes a document from the store.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	delete(s.docs, uri)
	s.mu.Unlock()
}

// Get retrieves a document by URI. Returns nil if not found.
func (s *DocumentStore) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns every open document in unspecified order.
func (s *DocumentStore) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		docs = append(docs, d)
	}
	return docs
}
