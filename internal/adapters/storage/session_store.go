package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"reloved-market-client/internal/config"
	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/outbound"
)

// Storage entry names, matching the keys the login flow persists
const (
	entryIsLoggedIn = "isLoggedIn"
	entryUserData   = "userData"
	entryUserToken  = "userToken"
)

// Store is a key-hashed local session store. Entry names are HMAC-hashed
// with the configured storage key so the on-disk layout reveals neither
// the prefix nor the entry names.
type Store struct {
	dir    string
	prefix string
	key    []byte
	logger zerolog.Logger
}

type StoreParams struct {
	Config *config.Config
	Logger zerolog.Logger
}

var _ outbound.SessionStore = (*Store)(nil)

// NewStore creates a new session store rooted at the configured directory
func NewStore(params StoreParams) (*Store, error) {
	cfg := params.Config.Storage
	if cfg.Key == "" {
		return nil, shared.ErrStorageKeyMissing
	}

	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &Store{
		dir:    cfg.Dir,
		prefix: cfg.Prefix,
		key:    []byte(cfg.Key),
		logger: params.Logger.With().Str("component", "session_store").Logger(),
	}, nil
}

// entryPath derives the on-disk path for a storage entry
func (s *Store) entryPath(name string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(s.prefix + "_" + name))
	return filepath.Join(s.dir, hex.EncodeToString(mac.Sum(nil))+".json")
}

// readEntry decodes one entry into out; a missing entry reports false
// without an error
func (s *Store) readEntry(name string, out interface{}) (bool, error) {
	raw, err := os.ReadFile(s.entryPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read storage entry %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode storage entry %s: %w", name, err)
	}

	return true, nil
}

func (s *Store) writeEntry(name string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode storage entry %s: %w", name, err)
	}

	if err := os.WriteFile(s.entryPath(name), raw, 0o600); err != nil {
		return fmt.Errorf("failed to write storage entry %s: %w", name, err)
	}

	return nil
}

func (s *Store) removeEntry(name string) error {
	err := os.Remove(s.entryPath(name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove storage entry %s: %w", name, err)
	}
	return nil
}

// ReadSession assembles the persisted session. Absent or unreadable
// entries fall back to the anonymous session field by field.
func (s *Store) ReadSession() (shared.Session, error) {
	session := shared.Anonymous()

	if _, err := s.readEntry(entryIsLoggedIn, &session.IsLoggedIn); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read login flag")
	}

	var profile shared.UserProfile
	found, err := s.readEntry(entryUserData, &profile)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read user profile")
	} else if found {
		session.User = &profile
	}

	if _, err := s.readEntry(entryUserToken, &session.Token); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read bearer token")
	}

	return session, nil
}

// WriteSession persists the session after a login/profile update
func (s *Store) WriteSession(session shared.Session) error {
	if err := s.writeEntry(entryIsLoggedIn, session.IsLoggedIn); err != nil {
		return err
	}

	if session.User != nil {
		if err := s.writeEntry(entryUserData, session.User); err != nil {
			return err
		}
	} else if err := s.removeEntry(entryUserData); err != nil {
		return err
	}

	return s.writeEntry(entryUserToken, session.Token)
}

// Clear removes every persisted session entry
func (s *Store) Clear() error {
	for _, name := range []string{entryIsLoggedIn, entryUserData, entryUserToken} {
		if err := s.removeEntry(name); err != nil {
			return err
		}
	}
	return nil
}
