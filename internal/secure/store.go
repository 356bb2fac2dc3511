package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"sync"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/pbkdf2"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

const (
	storeVersion   = "1.0"
	keyDerivSalt   = "grojet-credential-store"
	keyDerivRounds = 100000
)

// Store is a string-keyed secret store backed by a single encrypted file.
// Values are sealed with AES-256-GCM using a key derived from the machine
// identity, so the file cannot be decrypted on another device.
type Store struct {
	lock sync.Mutex
	path string
	gcm  cipher.AEAD
}

type storeFile struct {
	Version   string                  `yaml:"version"`
	Timestamp time.Time               `yaml:"timestamp"`
	Secrets   map[string]sealedSecret `yaml:"secrets"`
}

type sealedSecret struct {
	Nonce      string `yaml:"nonce"`
	Ciphertext string `yaml:"ciphertext"`
}

// NewStore opens (or creates) the credential store at path. An empty path
// uses the default location under the user's config directory.
func NewStore(path string) (*Store, error) {

	if len(path) == 0 {
		defaultPath, err := defaultStorePath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return NewStoreWithKey(path, deriveMachineKey())
}

// NewStoreWithKey opens the credential store at path using the supplied
// 256-bit key instead of the machine-derived one.
func NewStoreWithKey(path string, key []byte) (*Store, error) {

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &Store{
		path: path,
		gcm:  gcm,
	}, nil
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	contents, err := s.read()
	if err != nil {
		return "", err
	}

	sealed, ok := contents.Secrets[key]
	if !ok {
		return "", ErrNotFound
	}

	return s.open(sealed)
}

// Set persists value under key, replacing any previous value.
func (s *Store) Set(key string, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	contents, err := s.read()
	if err != nil {
		return err
	}

	sealed, err := s.seal(value)
	if err != nil {
		return err
	}

	contents.Secrets[key] = sealed

	return s.write(contents)
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (s *Store) Delete(key string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	contents, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := contents.Secrets[key]; !ok {
		return nil
	}

	delete(contents.Secrets, key)

	return s.write(contents)
}

func (s *Store) seal(value string) (sealedSecret, error) {

	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		logrus.WithError(err).Errorln("Failed to generate nonce")
		return sealedSecret{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := s.gcm.Seal(nil, nonce, []byte(value), nil)

	return sealedSecret{
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

func (s *Store) open(sealed sealedSecret) (string, error) {

	nonce, err := base64.StdEncoding.DecodeString(sealed.Nonce)
	if err != nil {
		return "", fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(sealed.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	plaintext, err := s.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt secret: %w", err)
	}

	return string(plaintext), nil
}

func (s *Store) read() (*storeFile, error) {

	empty := &storeFile{
		Version:   storeVersion,
		Timestamp: time.Now().UTC(),
		Secrets:   make(map[string]sealedSecret),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return empty, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return empty, nil
	}

	var contents storeFile
	if err := yaml.Unmarshal(data, &contents); err != nil {
		// If YAML parsing fails, log the error and reinitialize
		logrus.WithError(err).Errorf("Failed to parse credential store %s, reinitializing", s.path)
		return empty, nil
	}

	if contents.Secrets == nil {
		contents.Secrets = make(map[string]sealedSecret)
	}

	return &contents, nil
}

func (s *Store) write(contents *storeFile) error {

	contents.Version = storeVersion
	contents.Timestamp = time.Now().UTC()

	data, err := yaml.Marshal(contents)
	if err != nil {
		return err
	}

	// Only allow read/write access to the owner
	return os.WriteFile(s.path, data, 0600)
}

// deriveMachineKey derives a 256-bit key from the machine's hardware ID.
// If the machine ID cannot be obtained the hostname is used instead, so the
// store still works on platforms without a stable machine identity.
func deriveMachineKey() []byte {

	id, err := machineid.ID()
	if err != nil {
		logrus.WithError(err).Warnln("Failed to read machine ID, falling back to hostname")
		id, err = os.Hostname()
		if err != nil {
			id = keyDerivSalt
		}
	}

	hash := sha256.Sum256([]byte(id))
	return pbkdf2.Key(hash[:], []byte(keyDerivSalt), keyDerivRounds, 32, sha256.New)
}

func defaultStorePath() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, ".config", "grojet", "credentials.yaml"), nil
}
