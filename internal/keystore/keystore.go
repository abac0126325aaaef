// Package keystore writes a found vanity key to disk.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/awnumar/memguard"

	"github.com/mahdiidarabi/vanitykey/pkg/keygen"
	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

var (
	// ErrNoMatch is returned when asked to persist a result without a key.
	ErrNoMatch = errors.New("search result has no matching key")

	// ErrKeyExists is returned when a key file exists and Force is not set.
	ErrKeyExists = errors.New("key file already exists")
)

const (
	privateKeyMode = 0o600
	publicKeyMode  = 0o644
	dirMode        = 0o700
)

// Options controls where and how keys are written.
type Options struct {
	Dir            string // Output directory (created if missing)
	PrivateKeyFile string // Defaults to the key type's DefaultFileName
	PublicKeyFile  string // Defaults to PrivateKeyFile + ".pub"
	Comment        string // OpenSSH private key comment
	Force          bool   // Overwrite existing files
}

// Paths is the resolved location of a saved keypair.
type Paths struct {
	PrivateKey string
	PublicKey  string
}

// Resolve fills in default file names for a key type.
func (o Options) Resolve(k keygen.KeyType) Paths {
	priv := o.PrivateKeyFile
	if priv == "" {
		priv = k.DefaultFileName()
	}
	pub := o.PublicKeyFile
	if pub == "" {
		pub = priv + ".pub"
	}
	if !filepath.IsAbs(priv) {
		priv = filepath.Join(o.Dir, priv)
	}
	if !filepath.IsAbs(pub) {
		pub = filepath.Join(o.Dir, pub)
	}
	return Paths{PrivateKey: priv, PublicKey: pub}
}

// Check reports ErrKeyExists when either key file is present and Force is not
// set. Callers run it before a search so a long search is not wasted.
func Check(opts Options, k keygen.KeyType) error {
	if opts.Force {
		return nil
	}
	paths := opts.Resolve(k)
	for _, p := range []string{paths.PrivateKey, paths.PublicKey} {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrKeyExists, p)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat %s: %w", p, err)
		}
	}
	return nil
}

// Save writes the private key with mode 0600 and the public text with mode
// 0644. The serialized private key is kept in locked memory until written and
// wiped afterwards. When the memlock limit is too small for memguard it is
// written from ordinary memory and zeroed.
func Save(opts Options, k keygen.KeyType, result *vanity.Result) (Paths, error) {
	return save(opts, k, result, secureMemoryAvailable())
}

func save(opts Options, k keygen.KeyType, result *vanity.Result, secure bool) (Paths, error) {
	if !result.Matched() {
		return Paths{}, ErrNoMatch
	}
	paths := opts.Resolve(k)
	if err := Check(opts, k); err != nil {
		return Paths{}, err
	}

	for _, p := range []string{paths.PrivateKey, paths.PublicKey} {
		if dir := filepath.Dir(p); dir != "" {
			if err := os.MkdirAll(dir, dirMode); err != nil {
				return Paths{}, fmt.Errorf("failed to create %s: %w", dir, err)
			}
		}
	}

	encoded, err := keygen.MarshalPrivateKey(k, result.Candidate.PrivateKey, opts.Comment)
	if err != nil {
		return Paths{}, err
	}
	if err := writePrivateKey(paths.PrivateKey, encoded, secure); err != nil {
		return Paths{}, err
	}

	pub := result.Candidate.PublicText
	if len(pub) == 0 || pub[len(pub)-1] != '\n' {
		pub = append(append([]byte(nil), pub...), '\n')
	}
	if err := writeFile(paths.PublicKey, pub, publicKeyMode); err != nil {
		// A lone private key would block every later run with ErrKeyExists.
		if rmErr := os.Remove(paths.PrivateKey); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return Paths{}, errors.Join(err, fmt.Errorf("failed to remove %s: %w", paths.PrivateKey, rmErr))
		}
		return Paths{}, err
	}
	return paths, nil
}

// writePrivateKey writes encoded and wipes it. With secure set the bytes are
// moved into locked memory first.
func writePrivateKey(path string, encoded []byte, secure bool) error {
	if !secure {
		defer wipe(encoded)
		return writeFile(path, encoded, privateKeyMode)
	}
	// NewBufferFromBytes wipes encoded.
	locked := memguard.NewBufferFromBytes(encoded)
	defer locked.Destroy()
	return writeFile(path, locked.Bytes(), privateKeyMode)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// writeFile writes data and enforces mode even when the file already existed.
func writeFile(path string, data []byte, mode os.FileMode) error {
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}
	return nil
}
