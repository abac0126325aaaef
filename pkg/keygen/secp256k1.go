package keygen

import (
	"crypto"
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

type secp256k1Generator struct{}

// Generate creates a secp256k1 keypair. The public text is the hex encoded
// compressed point (66 characters).
func (secp256k1Generator) Generate() (vanity.Candidate, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return vanity.Candidate{}, fmt.Errorf("secp256k1 key generation failed: %w", err)
	}
	compressed := priv.PubKey().SerializeCompressed()
	text := make([]byte, hex.EncodedLen(len(compressed)))
	hex.Encode(text, compressed)
	return vanity.Candidate{
		PrivateKey: priv,
		PublicText: text,
	}, nil
}

func marshalSecp256k1(priv crypto.PrivateKey) ([]byte, error) {
	key, ok := priv.(*secp256k1.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("expected *secp256k1.PrivateKey, got %T", priv)
	}
	scalar := key.Serialize()
	out := make([]byte, hex.EncodedLen(len(scalar))+1)
	hex.Encode(out, scalar)
	out[len(out)-1] = '\n'
	return out, nil
}

// PublicKeyFromPrivate re-derives the compressed hex public key from a
// secp256k1 private key, used to verify saved keys.
func PublicKeyFromPrivate(privHex string) (string, error) {
	raw, err := hex.DecodeString(privHex)
	if err != nil {
		return "", fmt.Errorf("failed to decode private key: %w", err)
	}
	if len(raw) != secp256k1.PrivKeyBytesLen {
		return "", fmt.Errorf("private key must be %d bytes, got %d", secp256k1.PrivKeyBytesLen, len(raw))
	}
	priv := secp256k1.PrivKeyFromBytes(raw)
	return hex.EncodeToString(priv.PubKey().SerializeCompressed()), nil
}
