package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSortsAndIndexes(t *testing.T) {
	cat, err := New([]Entry{
		{ID: 7, Image: "G"},
		{ID: 2, Image: "B"},
		{ID: 4, Image: "D"},
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ids := cat.IDs()
	expected := []int{2, 4, 7}
	if len(ids) != len(expected) {
		t.Fatalf("IDs() = %v, expected %v", ids, expected)
	}
	for i := range ids {
		if ids[i] != expected[i] {
			t.Errorf("IDs()[%d] = %d, expected %d", i, ids[i], expected[i])
		}
	}

	if img := cat.Image(4); img != "D" {
		t.Errorf("Image(4) = %q, expected %q", img, "D")
	}
	if img := cat.Image(99); img != "?" {
		t.Errorf("Image(99) = %q, expected %q", img, "?")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Entry{{ID: 1, Image: "A"}, {ID: 1, Image: "B"}})

	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if dup.ID != 1 {
		t.Errorf("DuplicateIDError.ID = %d, expected 1", dup.ID)
	}
}

func TestNewRejectsNegativeIDs(t *testing.T) {
	if _, err := New([]Entry{{ID: -1, Image: "A"}}); err == nil {
		t.Error("expected error for negative id")
	}
}

func TestEntriesIsACopy(t *testing.T) {
	cat, _ := New([]Entry{{ID: 1, Image: "A"}})
	entries := cat.Entries()
	entries[0].Image = "changed"

	if cat.Image(1) != "A" {
		t.Error("mutating Entries() result must not change the catalog")
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
cards:
  - id: 3
    image: "C"
    name: Crown
  - { id: 1, image: "A" }
`)
	cat, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", cat.Len())
	}
	e, ok := cat.Lookup(3)
	if !ok || e.Name != "Crown" {
		t.Errorf("Lookup(3) = %+v, %v", e, ok)
	}
}

func TestParseYAMLMissingImage(t *testing.T) {
	if _, err := ParseYAML([]byte("cards:\n  - id: 1\n")); err == nil {
		t.Error("expected error for card without image")
	}
}

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	// Largest supported grid is 8x8 which needs 32 distinct cards.
	if cat.Len() < 32 {
		t.Errorf("default catalog has %d cards, need at least 32", cat.Len())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	if err := os.WriteFile(path, []byte("cards:\n  - { id: 5, image: \"E\" }\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cat.Len() != 1 || cat.Image(5) != "E" {
		t.Errorf("Load() returned unexpected catalog: %+v", cat.Entries())
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom catalog")
	}
}
