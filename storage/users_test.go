package storage

import (
	"testing"

	"github.com/HenryDP/UnaAventuraMasCR/models"
)

func TestCreateAndFindUser(t *testing.T) {
	newTestDB(t)

	result := CreateUser(models.User{Email: "A@X.com", Password: "hash1", Name: "Ana"})
	if !result.Success {
		t.Fatalf("create failed: %s", result.Message)
	}

	user, found := FindUserByEmail("a@x.com")
	if !found {
		t.Fatal("expected user to be found by lowercased email")
	}
	if user.Name != "Ana" || user.Password != "hash1" {
		t.Fatalf("unexpected record: %+v", user)
	}

	if _, found := FindUserByEmail("nobody@x.com"); found {
		t.Fatal("absent user must be reported as not found, not as an error")
	}
}

func TestCreateUserLastWriteWins(t *testing.T) {
	newTestDB(t)

	CreateUser(models.User{Email: "a@x.com", Password: "hash1", Name: "Ana", Nationality: "CR"})
	result := CreateUser(models.User{Email: "a@x.com", Password: "hash2", Name: "Anna"})
	if !result.Success {
		t.Fatalf("duplicate create should overwrite, got: %s", result.Message)
	}

	user, _ := FindUserByEmail("a@x.com")
	if user.Name != "Anna" || user.Password != "hash2" {
		t.Fatalf("expected full overwrite of the prior record, got %+v", user)
	}
	if user.Nationality != "" {
		t.Fatal("upsert must replace all fields, not merge")
	}

	if got := GetAllUsers(); len(got) != 1 {
		t.Fatalf("expected a single record for the email key, got %d", len(got))
	}
}
