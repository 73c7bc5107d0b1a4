package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// Status is the tri-state login state. It stays Unknown until Load has
// checked the persisted credentials once.
type Status int

const (
	StatusUnknown Status = iota
	StatusAnonymous
	StatusAuthenticated
)

// Role values carried in the platform's token claims.
type Role string

const (
	RoleMember       Role = "membro"
	RoleNutritionist Role = "nutricionista"
)

// User holds the identity claims of the logged-in user.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// IsNutritionist reports whether the user can publish articles.
func (u User) IsNutritionist() bool {
	return u.Role == RoleNutritionist
}

// credentials is the on-disk format. ProfilePicture overrides the token
// claim so an in-session picture update shows up without a new token.
type credentials struct {
	Token          string `json:"token"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// Store is the single source of truth for the auth session. It has one
// writer path (Login/Logout/SetProfilePicture) and is read concurrently by
// the API client's request hook.
type Store struct {
	mu     sync.RWMutex
	path   string
	status Status
	token  string
	user   *User
}

// NewStore creates a store persisting to path. Call Load before reading.
func NewStore(path string) *Store {
	return &Store{path: path, status: StatusUnknown}
}

// Load resolves the session from the persisted credentials. A missing file
// means anonymous. A malformed token fails closed: the file is cleared and
// the session is anonymous rather than erroring out.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.status = StatusAnonymous
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}
	var creds credentials
	if err := json.Unmarshal(raw, &creds); err != nil || creds.Token == "" {
		return s.clearLocked()
	}
	user, err := decodeToken(creds.Token, creds.ProfilePicture)
	if err != nil {
		return s.clearLocked()
	}
	s.token = creds.Token
	s.user = &user
	s.status = StatusAuthenticated
	return nil
}

// Login decodes and persists token, marking the session authenticated.
func (s *Store) Login(token string) (User, error) {
	user, err := decodeToken(token, "")
	if err != nil {
		return User{}, fmt.Errorf("failed to decode session token: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persistLocked(credentials{Token: token}); err != nil {
		return User{}, err
	}
	s.token = token
	s.user = &user
	s.status = StatusAuthenticated
	return user, nil
}

// Logout clears the persisted credentials and the in-memory identity. The
// file is removed before the in-memory state so no request issued afterwards
// can pick up the old token.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// SetProfilePicture persists an avatar override for the current session.
func (s *Store) SetProfilePicture(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusAuthenticated || s.user == nil {
		return errors.New("no active session")
	}
	if err := s.persistLocked(credentials{Token: s.token, ProfilePicture: url}); err != nil {
		return err
	}
	updated := *s.user
	updated.ProfilePicture = url
	s.user = &updated
	return nil
}

// Status returns the current login state.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Token returns the persisted bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Current returns the logged-in user, if any.
func (s *Store) Current() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status != StatusAuthenticated || s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Store) clearLocked() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}
	s.token = ""
	s.user = nil
	s.status = StatusAnonymous
	return nil
}

func (s *Store) persistLocked(creds credentials) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credentials dir: %w", err)
	}
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials: %w", err)
	}
	return nil
}

// decodeToken extracts identity claims without verifying the signature;
// verification happens server-side on every call.
func decodeToken(token, pictureOverride string) (User, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return User{}, err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, errors.New("unexpected claims type")
	}
	id := claimString(claims, "id")
	if id == "" {
		return User{}, errors.New("token has no user id claim")
	}
	user := User{
		ID:             id,
		Name:           claimString(claims, "nome"),
		Role:           Role(claimString(claims, "tipo")),
		ProfilePicture: claimString(claims, "fotoPerfil"),
	}
	if pictureOverride != "" {
		user.ProfilePicture = pictureOverride
	}
	return user, nil
}

func claimString(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
