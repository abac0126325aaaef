package keygen

import (
	"crypto"
	"errors"
	"fmt"
	"strings"

	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

// KeyType identifies a key algorithm and its public text encoding.
type KeyType int

const (
	// Ed25519 keys encoded as OpenSSH authorized-key lines.
	Ed25519 KeyType = iota
	// ECDSAP256 keys encoded as OpenSSH authorized-key lines.
	ECDSAP256
	// Secp256k1 keys encoded as compressed hex.
	Secp256k1
)

// ErrUnknownKeyType is returned for unsupported key type names or values.
var ErrUnknownKeyType = errors.New("unknown key type")

// KeyTypes lists the supported key types in display order.
func KeyTypes() []KeyType {
	return []KeyType{Ed25519, ECDSAP256, Secp256k1}
}

// String returns the canonical name of the key type.
func (k KeyType) String() string {
	switch k {
	case Ed25519:
		return "ed25519"
	case ECDSAP256:
		return "ecdsa-p256"
	case Secp256k1:
		return "secp256k1"
	default:
		return "unknown"
	}
}

// DefaultFileName is the private key file name used when none is configured.
// The public key file appends ".pub".
func (k KeyType) DefaultFileName() string {
	switch k {
	case Ed25519:
		return "id_ed25519"
	case ECDSAP256:
		return "id_ecdsa"
	case Secp256k1:
		return "id_secp256k1"
	default:
		return "id_unknown"
	}
}

// ParseKeyType parses a key type name. Matching is case-insensitive and
// accepts a few common aliases.
func ParseKeyType(name string) (KeyType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ed25519", "ssh-ed25519":
		return Ed25519, nil
	case "ecdsa", "ecdsa-p256", "p256", "ecdsa-sha2-nistp256":
		return ECDSAP256, nil
	case "secp256k1", "k256":
		return Secp256k1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyType, name)
	}
}

// New returns the candidate generator for a key type. Generators are
// stateless and safe for use by every worker.
func New(k KeyType) (vanity.Generator, error) {
	switch k {
	case Ed25519:
		return ed25519Generator{}, nil
	case ECDSAP256:
		return ecdsaGenerator{}, nil
	case Secp256k1:
		return secp256k1Generator{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyType, int(k))
	}
}

// MarshalPrivateKey serializes a private key produced by the generator for k.
// SSH key types produce an OpenSSH PEM block, secp256k1 produces a hex line.
func MarshalPrivateKey(k KeyType, priv crypto.PrivateKey, comment string) ([]byte, error) {
	switch k {
	case Ed25519, ECDSAP256:
		return marshalOpenSSH(priv, comment)
	case Secp256k1:
		return marshalSecp256k1(priv)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKeyType, int(k))
	}
}
