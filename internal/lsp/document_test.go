package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestOffsetAt_PlainASCII(t *testing.T) {
	doc := &Document{Text: "s.boot;\n1.postln;\n"}

	got := doc.OffsetAt(protocol.Position{Line: 1, Character: 2})
	if got != len("s.boot;\n1.") {
		t.Errorf("expected offset %d, got %d", len("s.boot;\n1."), got)
	}
}

func TestOffsetAt_UTF16Units(t *testing.T) {
	// "é" is one UTF-16 unit but two bytes; "𝄞" is two UTF-16 units, four bytes.
	doc := &Document{Text: "// é𝄞x\n"}

	// Character 5 counts: /, /, space, é (1 unit), 𝄞 (2 units) → before x.
	got := doc.OffsetAt(protocol.Position{Line: 0, Character: 6})
	want := len("// é𝄞")
	if got != want {
		t.Errorf("expected byte offset %d, got %d", want, got)
	}
}

func TestOffsetAt_ClampsPastEnd(t *testing.T) {
	doc := &Document{Text: "abc"}

	if got := doc.OffsetAt(protocol.Position{Line: 5, Character: 0}); got != 3 {
		t.Errorf("expected clamp to text length, got %d", got)
	}
	if got := doc.OffsetAt(protocol.Position{Line: 0, Character: 99}); got != 3 {
		t.Errorf("expected clamp to line end, got %d", got)
	}
}

func TestOffsetAt_StopsAtNewline(t *testing.T) {
	doc := &Document{Text: "ab\ncd"}

	if got := doc.OffsetAt(protocol.Position{Line: 0, Character: 99}); got != 2 {
		t.Errorf("expected offset at newline, got %d", got)
	}
}

func TestWordAt(t *testing.T) {
	doc := &Document{Text: "SinOsc.ar(440)"}

	if got := doc.WordAt(3); got != "SinOsc" {
		t.Errorf("expected 'SinOsc', got %q", got)
	}
	if got := doc.WordAt(8); got != "ar" {
		t.Errorf("expected 'ar', got %q", got)
	}
	if got := doc.WordAt(6); got != "SinOsc" {
		t.Errorf("expected word before dot, got %q", got)
	}
	if got := doc.WordAt(10); got != "440" {
		t.Errorf("expected '440', got %q", got)
	}
}

func TestPrefixAt(t *testing.T) {
	doc := &Document{Text: "x = SinO"}

	if got := doc.PrefixAt(len(doc.Text)); got != "SinO" {
		t.Errorf("expected prefix 'SinO', got %q", got)
	}
	if got := doc.PrefixAt(4); got != "" {
		t.Errorf("expected empty prefix after space, got %q", got)
	}
}

func TestDocumentStore_OpenGetClose(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.scd", "s.boot;")

	doc, ok := store.Get("file:///a.scd")
	if !ok || doc.Text != "s.boot;" {
		t.Fatalf("expected stored document, got %v %v", doc, ok)
	}

	store.Close("file:///a.scd")
	if _, ok := store.Get("file:///a.scd"); ok {
		t.Error("expected document forgotten after close")
	}
}

func TestApplyChanges_WholeDocument(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.scd", "old")

	store.ApplyChanges("file:///a.scd", []any{
		protocol.TextDocumentContentChangeEventWhole{Text: "new text"},
	})

	doc, _ := store.Get("file:///a.scd")
	if doc.Text != "new text" {
		t.Errorf("expected whole-document replacement, got %q", doc.Text)
	}
}

func TestApplyChanges_Ranged(t *testing.T) {
	store := NewDocumentStore()
	store.Open("file:///a.scd", "s.boot;\n")

	store.ApplyChanges("file:///a.scd", []any{
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 0, Character: 2},
				End:   protocol.Position{Line: 0, Character: 6},
			},
			Text: "quit",
		},
	})

	doc, _ := store.Get("file:///a.scd")
	if doc.Text != "s.quit;\n" {
		t.Errorf("expected ranged edit applied, got %q", doc.Text)
	}
}

func TestApplyChanges_UnknownURIIgnored(t *testing.T) {
	store := NewDocumentStore()
	store.ApplyChanges("file:///missing.scd", []any{
		protocol.TextDocumentContentChangeEventWhole{Text: "x"},
	})
	// No panic, nothing stored.
	if _, ok := store.Get("file:///missing.scd"); ok {
		t.Error("expected unknown URI to stay unknown")
	}
}
