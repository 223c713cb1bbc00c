package lsp

import (
	"testing"
)

func TestDocumentStore_Lifecycle(t *testing.T) {
	store := NewDocumentStore()
	const uri = "test://doc.hcl"

	store.Open(uri, "initial content")
	content, ok := store.Get(uri)
	if !ok || content != "initial content" {
		t.Fatalf("Get() = %q, %v after open", content, ok)
	}

	store.Update(uri, "updated content")
	content, ok = store.Get(uri)
	if !ok || content != "updated content" {
		t.Errorf("Get() = %q, %v after update", content, ok)
	}

	store.Close(uri)
	if _, ok := store.Get(uri); ok {
		t.Error("document still present after close")
	}
}

func TestDocumentStore_ResultIsCached(t *testing.T) {
	store := NewDocumentStore()
	const uri = "test://doc.hcl"
	store.Open(uri, sampleDoc)

	calls := 0
	analyze := func(content string) *AnalysisResult {
		calls++
		return Analyze("doc.hcl", content)
	}

	first := store.Result(uri, analyze)
	second := store.Result(uri, analyze)
	if first == nil || first != second {
		t.Fatalf("Result() returned %p then %p, want the same non-nil result", first, second)
	}
	if calls != 1 {
		t.Errorf("analyze called %d times, want 1", calls)
	}

	store.Update(uri, "layer \"a\" {}\n")
	third := store.Result(uri, analyze)
	if third == first {
		t.Error("Update did not drop the cached analysis")
	}
	if calls != 2 {
		t.Errorf("analyze called %d times, want 2", calls)
	}
}

func TestDocumentStore_ResultOfUnknownDocument(t *testing.T) {
	store := NewDocumentStore()
	got := store.Result("test://missing.hcl", func(string) *AnalysisResult {
		t.Fatal("analyze called for a document that is not open")
		return nil
	})
	if got != nil {
		t.Errorf("Result() = %+v, want nil", got)
	}
}
