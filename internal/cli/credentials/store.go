// Package credentials stores idmctl connection profiles: one per tenant
// host, with the login name, a sealed password, the deployment type and a
// cached session token.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// DefaultConfigDir is the idmctl directory under the user config home.
	DefaultConfigDir = "idmctl"
	// ConnectionsFileName is the name of the profiles file.
	ConnectionsFileName = "connections.json"
	// MasterKeyFileName holds the key that seals passwords and tokens.
	MasterKeyFileName = "masterkey"
	// FilePermissions for config files (read/write for owner only).
	FilePermissions = 0o600
	// DirPermissions for config directories.
	DirPermissions = 0o700

	// expirySkew treats tokens this close to expiry as already expired.
	expirySkew = 60 * time.Second
)

var (
	// ErrProfileNotFound indicates no profile matches the host.
	ErrProfileNotFound = errors.New("connection profile not found")
	// ErrAmbiguousHost indicates a partial host matches several profiles.
	ErrAmbiguousHost = errors.New("host matches more than one connection profile")
)

// Profile is a saved connection to one tenant.
type Profile struct {
	Host              string    `json:"host"`
	Username          string    `json:"username,omitempty"`
	EncryptedPassword string    `json:"encrypted_password,omitempty"`
	DeploymentType    string    `json:"deployment_type,omitempty"`
	DefaultRealm      string    `json:"default_realm,omitempty"`
	EncryptedToken    string    `json:"encrypted_token,omitempty"`
	TokenExpiresAt    time.Time `json:"token_expires_at,omitempty"`
}

// HasPassword reports whether a password is saved.
func (p *Profile) HasPassword() bool {
	return p.EncryptedPassword != ""
}

// IsTokenExpired returns true if there is no cached token or it expires
// within the skew window.
func (p *Profile) IsTokenExpired() bool {
	if p.EncryptedToken == "" || p.TokenExpiresAt.IsZero() {
		return true
	}
	return time.Now().Add(expirySkew).After(p.TokenExpiresAt)
}

type profiles struct {
	Connections map[string]*Profile `json:"connections"`
}

// Store manages profile storage and retrieval.
type Store struct {
	dir    string
	config *profiles
	key    *[keySize]byte
}

// NewStore opens the store in the user config directory.
func NewStore() (*Store, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(dir)
}

// NewStoreAt opens the store in dir. A missing profiles file yields an
// empty store.
func NewStoreAt(dir string) (*Store, error) {
	store := &Store{dir: dir}
	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot read %s: %w", store.Path(), err)
		}
		store.config = &profiles{Connections: make(map[string]*Profile)}
	}
	return store, nil
}

// ConfigDir returns $XDG_CONFIG_HOME/idmctl, falling back to
// ~/.config/idmctl.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, DefaultConfigDir), nil
}

// Path returns the path to the profiles file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, ConnectionsFileName)
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return err
	}
	s.config = &profiles{}
	if err := json.Unmarshal(data, s.config); err != nil {
		return err
	}
	if s.config.Connections == nil {
		s.config.Connections = make(map[string]*Profile)
	}
	return nil
}

func (s *Store) save() error {
	if err := os.MkdirAll(s.dir, DirPermissions); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path(), data, FilePermissions)
}

func normalizeHost(host string) string {
	return strings.TrimRight(strings.TrimSpace(host), "/")
}

// Find returns the profile for host. An exact match wins; otherwise a host
// fragment (e.g. "tenant-a") matches when exactly one profile contains it.
func (s *Store) Find(host string) (*Profile, error) {
	host = normalizeHost(host)
	if host == "" {
		return nil, ErrProfileNotFound
	}
	if p, ok := s.config.Connections[host]; ok {
		return p, nil
	}

	var match *Profile
	for key, p := range s.config.Connections {
		if !strings.Contains(key, host) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousHost, host)
		}
		match = p
	}
	if match == nil {
		return nil, ErrProfileNotFound
	}
	return match, nil
}

// List returns all profiles sorted by host.
func (s *Store) List() []*Profile {
	out := make([]*Profile, 0, len(s.config.Connections))
	for _, p := range s.config.Connections {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Host < out[j].Host })
	return out
}

// Save creates or replaces the profile for p.Host.
func (s *Store) Save(p *Profile) error {
	p.Host = normalizeHost(p.Host)
	if p.Host == "" {
		return errors.New("profile host is required")
	}
	s.config.Connections[p.Host] = p
	return s.save()
}

// Delete removes the profile for host.
func (s *Store) Delete(host string) error {
	p, err := s.Find(host)
	if err != nil {
		return err
	}
	delete(s.config.Connections, p.Host)
	return s.save()
}

// SetPassword seals password into p. The profile is not saved.
func (s *Store) SetPassword(p *Profile, password string) error {
	if password == "" {
		p.EncryptedPassword = ""
		return nil
	}
	sealed, err := s.seal(password)
	if err != nil {
		return err
	}
	p.EncryptedPassword = sealed
	return nil
}

// Password returns the unsealed password of p, or "" when none is saved.
func (s *Store) Password(p *Profile) (string, error) {
	if !p.HasPassword() {
		return "", nil
	}
	return s.open(p.EncryptedPassword)
}

// Token returns the cached session token for host when it is still valid
// and was issued to username.
func (s *Store) Token(host, username string) (string, bool) {
	p, err := s.Find(host)
	if err != nil || p.IsTokenExpired() || p.Username != username {
		return "", false
	}
	token, err := s.open(p.EncryptedToken)
	if err != nil {
		return "", false
	}
	return token, true
}

// UpdateToken caches token for host. A profile is created when none exists.
func (s *Store) UpdateToken(host, username, token string, expiresAt time.Time) error {
	p, err := s.Find(host)
	if errors.Is(err, ErrProfileNotFound) {
		p = &Profile{Host: normalizeHost(host), Username: username}
		err = nil
	}
	if err != nil {
		return err
	}
	sealed, err := s.seal(token)
	if err != nil {
		return err
	}
	p.EncryptedToken = sealed
	p.TokenExpiresAt = expiresAt
	return s.Save(p)
}

// ClearToken drops the cached token for host.
func (s *Store) ClearToken(host string) error {
	p, err := s.Find(host)
	if err != nil {
		return err
	}
	p.EncryptedToken = ""
	p.TokenExpiresAt = time.Time{}
	return s.save()
}
