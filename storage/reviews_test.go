package storage

import (
	"testing"

	"github.com/HenryDP/UnaAventuraMasCR/models"
)

func TestAddReviewThenGetAll(t *testing.T) {
	newTestDB(t)

	review := models.Review{ID: "r1", UserName: "María", Rating: 5, Comment: "Pura vida", Date: "01 de enero de 2026"}
	if err := AddReview(review); err != nil {
		t.Fatalf("add: %v", err)
	}

	got := GetAllReviews()
	if len(got) != 1 || got[0].ID != "r1" || got[0].Rating != 5 {
		t.Fatalf("unexpected reviews: %+v", got)
	}
}

func TestAddReviewUpsertsByID(t *testing.T) {
	newTestDB(t)

	AddReview(models.Review{ID: "r1", UserName: "María", Rating: 4, Comment: "Bien"})
	AddReview(models.Review{ID: "r1", UserName: "María", Rating: 5, Comment: "Excelente"})

	got := GetAllReviews()
	if len(got) != 1 {
		t.Fatalf("expected a single record for the id, got %d", len(got))
	}
	if got[0].Rating != 5 || got[0].Comment != "Excelente" {
		t.Fatalf("expected full replacement, got %+v", got[0])
	}
}

func TestSaveAllReviewsReplaces(t *testing.T) {
	newTestDB(t)

	AddReview(models.Review{ID: "r1", UserName: "María", Rating: 5, Comment: "Pura vida"})
	err := SaveAllReviews([]models.Review{
		{ID: "r2", UserName: "Hans", Rating: 4, Comment: "Sehr gut"},
	})
	if err != nil {
		t.Fatalf("saveAll: %v", err)
	}

	got := GetAllReviews()
	if len(got) != 1 || got[0].ID != "r2" {
		t.Fatalf("expected only the new set to remain, got %+v", got)
	}
}
