package lsp

import (
	"strings"
	"sync"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is the full text of one open editor document.
type Document struct {
	URI  string
	Text string
}

// OffsetAt converts an LSP position (line plus UTF-16 code units) to a byte
// offset into the document text. Positions past the end are clamped.
func (d *Document) OffsetAt(pos protocol.Position) int {
	text := d.Text

	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return len(text)
		}
		offset += nl + 1
	}

	units := protocol.UInteger(0)
	for offset < len(text) && units < pos.Character {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if r == '\n' {
			break
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
		offset += size
	}
	return offset
}

// WordAt returns the identifier-like word surrounding the byte offset, or ""
// when the offset touches no word.
func (d *Document) WordAt(offset int) string {
	text := d.Text
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	start := offset
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	end := offset
	for end < len(text) && isWordByte(text[end]) {
		end++
	}
	return text[start:end]
}

// PrefixAt returns the partial word ending at the byte offset, used for
// completion matching.
func (d *Document) PrefixAt(offset int) string {
	text := d.Text
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	start := offset
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	return text[start:offset]
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// DocumentStore tracks open documents by URI.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewDocumentStore creates an empty store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*Document)}
}

// Open registers a document with its full text.
func (s *DocumentStore) Open(uri, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = &Document{URI: uri, Text: text}
}

// Close forgets a document.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Get returns the document for uri, if open.
func (s *DocumentStore) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc, ok
}

// ApplyChanges applies LSP content changes to an open document. Whole-document
// replacements and ranged edits are both handled.
func (s *DocumentStore) ApplyChanges(uri string, changes []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[uri]
	if !ok {
		return
	}
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			doc.Text = c.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			doc.Text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			applyRangedChange(doc, c.Range, c.Text)
		case *protocol.TextDocumentContentChangeEvent:
			applyRangedChange(doc, c.Range, c.Text)
		}
	}
}

func applyRangedChange(doc *Document, rng *protocol.Range, text string) {
	if rng == nil {
		doc.Text = text
		return
	}
	start := doc.OffsetAt(rng.Start)
	end := doc.OffsetAt(rng.End)
	if end < start {
		start, end = end, start
	}
	doc.Text = doc.Text[:start] + text + doc.Text[end:]
}
