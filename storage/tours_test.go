package storage

import (
	"testing"

	"github.com/HenryDP/UnaAventuraMasCR/models"
)

func tourNamed(id, title string) models.Tour {
	return models.Tour{ID: id, Title: title, Province: "Alajuela"}
}

func TestSaveAllToursReplacesCollection(t *testing.T) {
	newTestDB(t)

	first := []models.Tour{tourNamed("a", "A"), tourNamed("b", "B"), tourNamed("c", "C")}
	if err := SaveAllTours(first); err != nil {
		t.Fatalf("first saveAll: %v", err)
	}

	second := []models.Tour{tourNamed("d", "D"), tourNamed("e", "E")}
	if err := SaveAllTours(second); err != nil {
		t.Fatalf("second saveAll: %v", err)
	}

	got := GetAllTours()
	if len(got) != 2 {
		t.Fatalf("expected 2 tours after replace, got %d", len(got))
	}
	ids := map[string]bool{}
	for _, tour := range got {
		ids[tour.ID] = true
	}
	if !ids["d"] || !ids["e"] {
		t.Fatalf("expected tours d and e, got %v", ids)
	}
	if ids["a"] || ids["b"] || ids["c"] {
		t.Fatal("tours absent from the new set should be gone")
	}
}

func TestSaveAllToursEmptyClears(t *testing.T) {
	newTestDB(t)

	if err := SaveAllTours([]models.Tour{tourNamed("a", "A")}); err != nil {
		t.Fatalf("saveAll: %v", err)
	}
	if err := SaveAllTours(nil); err != nil {
		t.Fatalf("saveAll with empty set: %v", err)
	}
	if got := GetAllTours(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d tours", len(got))
	}
}

func TestGetAllToursUnavailableStorage(t *testing.T) {
	old := DB
	DB = nil
	defer func() { DB = old }()

	if got := GetAllTours(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice without storage, got %v", got)
	}
	if err := SaveAllTours([]models.Tour{tourNamed("a", "A")}); err != ErrStorageUnavailable {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}
