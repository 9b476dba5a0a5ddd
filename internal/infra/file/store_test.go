package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingKeyKeepsDefault(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	doc := map[string]int{"seed": 1}
	found, err := store.Load(context.Background(), "users", &doc)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatal("missing key should report not found")
	}
	if doc["seed"] != 1 {
		t.Fatalf("default value must stay untouched, got %v", doc)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	in := map[string]string{"alice": "hi"}
	if err := store.Save(ctx, "users", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := map[string]string{}
	found, err := store.Load(ctx, "users", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found || out["alice"] != "hi" {
		t.Fatalf("round trip failed: found=%v out=%v", found, out)
	}
}

func TestLoadMalformedDocumentReportsError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var doc map[string]string
	if _, err := store.Load(context.Background(), "users", &doc); err == nil {
		t.Fatal("malformed content should surface an error for the caller to log")
	}
}

func TestSaveLeavesOnlyTheDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "users", map[string]int{"alice": 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "users", map[string]int{"alice": 2}); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "users.json" {
		t.Fatalf("expected only users.json, got %v", entries)
	}
}

func TestInterruptedRewriteKeepsPreviousDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "users", map[string]int{"alice": 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// A half-written temp file, as left by a crash mid-rewrite, must never
	// shadow the committed document.
	if err := os.WriteFile(filepath.Join(dir, "users-123456.tmp"), []byte(`{"alice"`), 0o644); err != nil {
		t.Fatalf("write partial: %v", err)
	}

	out := map[string]int{}
	found, err := store.Load(ctx, "users", &out)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !found || out["alice"] != 1 {
		t.Fatalf("previous document lost: found=%v out=%v", found, out)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "quiz-data")
	if _, err := NewStore(dir); err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
}
