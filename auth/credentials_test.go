package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"house-price-predictor/utils"
)

func newTestStore(t *testing.T) *CredentialStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return NewCredentialStore(path, utils.NewLogger())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := newTestStore(t)

	if err := s.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	ok, err := s.Authenticate("alice", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if !ok {
		t.Error("correct password should authenticate")
	}

	ok, _ = s.Authenticate("alice", "wrong")
	if ok {
		t.Error("wrong password should not authenticate")
	}

	ok, _ = s.Authenticate("bob", "s3cret")
	if ok {
		t.Error("unknown user should not authenticate")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := newTestStore(t)

	if err := s.Register("alice", "first"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	err := s.Register("alice", "second")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The first account's password must be unchanged.
	ok, _ := s.Authenticate("alice", "first")
	if !ok {
		t.Error("original password should still authenticate after rejected re-registration")
	}
	ok, _ = s.Authenticate("alice", "second")
	if ok {
		t.Error("rejected registration must not overwrite the password")
	}
}

func TestUsersFileShape(t *testing.T) {
	s := newTestStore(t)

	if err := s.Register("alice", "s3cret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read users file: %v", err)
	}

	var doc map[string]map[string]struct {
		Password        string   `json:"password"`
		SavedProperties []string `json:"saved_properties"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("users file is not the expected document shape: %v", err)
	}

	entry, ok := doc["users"]["alice"]
	if !ok {
		t.Fatal("registered user missing from document")
	}
	// sha256("s3cret")
	if len(entry.Password) != 64 {
		t.Errorf("password should be a sha256 hex digest, got %q", entry.Password)
	}
	if entry.SavedProperties == nil {
		t.Error("saved_properties should be an empty list, not null")
	}
}

func TestAuthenticateMissingFile(t *testing.T) {
	s := NewCredentialStore(filepath.Join(t.TempDir(), "absent.json"), utils.NewLogger())

	ok, err := s.Authenticate("anyone", "anything")
	if err != nil {
		t.Fatalf("missing file should read as empty, got %v", err)
	}
	if ok {
		t.Error("no user can authenticate against an empty store")
	}
}
