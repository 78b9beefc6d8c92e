package credentials

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var errUnseal = errors.New("cannot decrypt saved secret (master key changed?)")

// masterKey loads the master key, creating it on first use.
func (s *Store) masterKey() (*[keySize]byte, error) {
	if s.key != nil {
		return s.key, nil
	}

	path := filepath.Join(s.dir, MasterKeyFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(data) != keySize {
			return nil, fmt.Errorf("master key %s has invalid length %d", path, len(data))
		}
	case os.IsNotExist(err):
		data = make([]byte, keySize)
		if _, err := io.ReadFull(rand.Reader, data); err != nil {
			return nil, fmt.Errorf("cannot generate master key: %w", err)
		}
		if err := os.MkdirAll(s.dir, DirPermissions); err != nil {
			return nil, fmt.Errorf("cannot create config directory: %w", err)
		}
		if err := os.WriteFile(path, data, FilePermissions); err != nil {
			return nil, fmt.Errorf("cannot write master key: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot read master key: %w", err)
	}

	var key [keySize]byte
	copy(key[:], data)
	s.key = &key
	return s.key, nil
}

// seal encrypts plain and returns base64(nonce || box).
func (s *Store) seal(plain string) (string, error) {
	key, err := s.masterKey()
	if err != nil {
		return "", err
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("cannot generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, key)
	return base64.StdEncoding.EncodeToString(box), nil
}

// open reverses seal.
func (s *Store) open(sealed string) (string, error) {
	key, err := s.masterKey()
	if err != nil {
		return "", err
	}
	box, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil || len(box) < nonceSize+secretbox.Overhead {
		return "", errUnseal
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, key)
	if !ok {
		return "", errUnseal
	}
	return string(plain), nil
}
