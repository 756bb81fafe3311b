package lang

import "testing"

func TestCompletions_PrefixMatch(t *testing.T) {
	items := Completions("Sin")

	if len(items) == 0 {
		t.Fatal("expected completions for prefix 'Sin'")
	}
	for _, item := range items {
		if item.Label[:3] != "Sin" {
			t.Errorf("item %q does not match prefix", item.Label)
		}
	}

	found := false
	for _, item := range items {
		if item.Label == "SinOsc" {
			found = true
			if item.Kind != KindClass {
				t.Errorf("expected SinOsc to be a class, got kind %d", item.Kind)
			}
			if item.Doc == "" {
				t.Error("expected SinOsc to carry documentation")
			}
		}
	}
	if !found {
		t.Error("expected SinOsc in completions for 'Sin'")
	}
}

func TestCompletions_KeywordsBeforeClassesBeforeMethods(t *testing.T) {
	// "p" matches the keywords pi/protect, no classes, and several methods.
	items := Completions("p")

	if len(items) == 0 {
		t.Fatal("expected completions for prefix 'p'")
	}
	lastKind := KindKeyword
	for _, item := range items {
		if item.Kind < lastKind {
			t.Fatalf("expected kinds in keyword/class/method order, got %q out of order", item.Label)
		}
		lastKind = item.Kind
	}
}

func TestCompletions_MethodKind(t *testing.T) {
	items := Completions("postln")
	if len(items) != 1 {
		t.Fatalf("expected exactly one completion for 'postln', got %d", len(items))
	}
	if items[0].Kind != KindMethod {
		t.Errorf("expected method kind, got %d", items[0].Kind)
	}
}

func TestCompletions_EmptyPrefix(t *testing.T) {
	if items := Completions(""); items != nil {
		t.Errorf("expected no completions for empty prefix, got %d", len(items))
	}
}

func TestCompletions_NoMatch(t *testing.T) {
	if items := Completions("Zzzz"); len(items) != 0 {
		t.Errorf("expected no completions, got %v", items)
	}
}

func TestHoverDoc_Class(t *testing.T) {
	doc, ok := HoverDoc("SinOsc")
	if !ok {
		t.Fatal("expected hover doc for SinOsc")
	}
	if doc == "" {
		t.Error("expected non-empty doc")
	}
}

func TestHoverDoc_Method(t *testing.T) {
	doc, ok := HoverDoc("midicps")
	if !ok {
		t.Fatal("expected hover doc for midicps")
	}
	if doc == "" {
		t.Error("expected non-empty doc")
	}
}

func TestHoverDoc_ExactMatchOnly(t *testing.T) {
	if _, ok := HoverDoc("SinOs"); ok {
		t.Error("expected no hover doc for a prefix of a known word")
	}
	if _, ok := HoverDoc("unknownWord"); ok {
		t.Error("expected no hover doc for unknown word")
	}
}
