package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/gazette/internal/model"
)

var (
	ErrAccountExists   = errors.New("account with that username or email already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// AccountStore is the in-memory mirror of the persisted account list. The
// accounts file is read once at startup and rewritten whole after every
// mutation. Serialization happens under the lock; the file write does not.
type AccountStore struct {
	mu       sync.Mutex
	accounts []model.Account
	path     string
}

// NewAccountStore loads the account list from path, creating an empty file
// if none exists.
func NewAccountStore(path string) (*AccountStore, error) {
	s := &AccountStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
			return nil, fmt.Errorf("create accounts file: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read accounts file: %w", err)
	}
	if err := json.Unmarshal(data, &s.accounts); err != nil {
		return nil, fmt.Errorf("decode accounts file: %w", err)
	}
	return s, nil
}

// save writes the full account list back to disk. Callers must not hold the
// lock.
func (s *AccountStore) save() error {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.accounts, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}
	return nil
}

// Lookup returns the account with the given username.
func (s *AccountStore) Lookup(username string) (model.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return model.Account{}, false
}

// Permission returns the permission of the account with the given username,
// or false if no such account exists.
func (s *AccountStore) Permission(username string) (model.Permission, bool) {
	a, ok := s.Lookup(username)
	if !ok {
		return "", false
	}
	return a.Permission, true
}

// Create registers a new account with the User permission. Username and
// email must each be unique across the directory.
func (s *AccountStore) Create(username, email, password string) (model.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := model.Account{
		Username:     username,
		Permission:   model.PermUser,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	for _, a := range s.accounts {
		if a.Username == username || a.Email == email {
			s.mu.Unlock()
			return model.Account{}, ErrAccountExists
		}
	}
	s.accounts = append(s.accounts, account)
	s.mu.Unlock()

	if err := s.save(); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

// Authenticate checks an email/password pair and returns the matching
// account.
func (s *AccountStore) Authenticate(email, password string) (model.Account, bool) {
	s.mu.Lock()
	var account model.Account
	found := false
	for _, a := range s.accounts {
		if a.Email == email {
			account = a
			found = true
			break
		}
	}
	s.mu.Unlock()

	// Compare outside the lock; bcrypt is deliberately slow.
	if !found {
		return model.Account{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return model.Account{}, false
	}
	return account, true
}

// SetPermission changes an account's permission and persists the directory.
func (s *AccountStore) SetPermission(username string, perm model.Permission) error {
	s.mu.Lock()
	found := false
	for i := range s.accounts {
		if s.accounts[i].Username == username {
			s.accounts[i].Permission = perm
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrAccountNotFound
	}
	return s.save()
}

// Delete removes an account and persists the directory.
func (s *AccountStore) Delete(username string) error {
	s.mu.Lock()
	kept := s.accounts[:0]
	found := false
	for _, a := range s.accounts {
		if a.Username == username {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	s.accounts = kept
	s.mu.Unlock()

	if !found {
		return ErrAccountNotFound
	}
	return s.save()
}

// All returns a snapshot of every account.
func (s *AccountStore) All() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}
