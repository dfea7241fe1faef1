// Package auth implements username/password accounts persisted as a single
// JSON document. The whole document is read and rewritten on every mutation;
// concurrent writers from separate processes can race and lose an update,
// which matches the behaviour of the store it fronts.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"house-price-predictor/utils"
)

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already exists")

// userEntry is one account in the users file. SavedProperties is a legacy
// field kept for compatibility with older documents; saved comparisons now
// live in their own remote table.
type userEntry struct {
	Password        string   `json:"password"`
	SavedProperties []string `json:"saved_properties"`
}

type userFile struct {
	Users map[string]userEntry `json:"users"`
}

// CredentialStore registers and verifies accounts against the users file.
type CredentialStore struct {
	path   string
	logger *utils.Logger
}

// NewCredentialStore creates a store over the JSON file at path. The file
// does not need to exist yet.
func NewCredentialStore(path string, logger *utils.Logger) *CredentialStore {
	return &CredentialStore{path: path, logger: logger}
}

// Register creates a new account with a hashed password. Registering a
// username that already exists returns ErrUsernameTaken and leaves the
// existing account untouched.
func (s *CredentialStore) Register(username, password string) error {
	users, err := s.load()
	if err != nil {
		return err
	}

	if _, taken := users.Users[username]; taken {
		return ErrUsernameTaken
	}

	users.Users[username] = userEntry{
		Password:        hashPassword(password),
		SavedProperties: []string{},
	}

	if err := s.save(users); err != nil {
		return err
	}

	s.logger.Info("[auth] Registered user %q", username)
	return nil
}

// Authenticate reports whether the username exists and the password matches.
func (s *CredentialStore) Authenticate(username, password string) (bool, error) {
	users, err := s.load()
	if err != nil {
		return false, err
	}

	entry, ok := users.Users[username]
	if !ok {
		return false, nil
	}
	return entry.Password == hashPassword(password), nil
}

func (s *CredentialStore) load() (*userFile, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &userFile{Users: make(map[string]userEntry)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("auth: read users file %q: %w", s.path, err)
	}

	users := &userFile{}
	if err := json.Unmarshal(raw, users); err != nil {
		return nil, fmt.Errorf("auth: parse users file %q: %w", s.path, err)
	}
	if users.Users == nil {
		users.Users = make(map[string]userEntry)
	}
	return users, nil
}

// save rewrites the whole users file. No locking: last writer wins.
func (s *CredentialStore) save(users *userFile) error {
	raw, err := json.MarshalIndent(users, "", "    ")
	if err != nil {
		return fmt.Errorf("auth: encode users file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("auth: write users file %q: %w", s.path, err)
	}
	return nil
}

// hashPassword is a plain unsalted SHA-256 hex digest. Kept for
// compatibility with existing user documents; not suitable for production
// password storage.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
