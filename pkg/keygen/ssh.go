package keygen

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/pem"
	"fmt"

	"golang.org/x/crypto/ssh"

	"github.com/mahdiidarabi/vanitykey/pkg/vanity"
)

type ed25519Generator struct{}

// Generate creates an Ed25519 keypair and its authorized-key line.
func (ed25519Generator) Generate() (vanity.Candidate, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return vanity.Candidate{}, fmt.Errorf("ed25519 key generation failed: %w", err)
	}
	sshPub, err := ssh.NewPublicKey(pub)
	if err != nil {
		return vanity.Candidate{}, fmt.Errorf("ssh public key encoding failed: %w", err)
	}
	return vanity.Candidate{
		PrivateKey: priv,
		PublicText: ssh.MarshalAuthorizedKey(sshPub),
	}, nil
}

type ecdsaGenerator struct{}

// Generate creates a NIST P-256 keypair and its authorized-key line.
func (ecdsaGenerator) Generate() (vanity.Candidate, error) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return vanity.Candidate{}, fmt.Errorf("ecdsa key generation failed: %w", err)
	}
	sshPub, err := ssh.NewPublicKey(&priv.PublicKey)
	if err != nil {
		return vanity.Candidate{}, fmt.Errorf("ssh public key encoding failed: %w", err)
	}
	return vanity.Candidate{
		PrivateKey: priv,
		PublicText: ssh.MarshalAuthorizedKey(sshPub),
	}, nil
}

func marshalOpenSSH(priv crypto.PrivateKey, comment string) ([]byte, error) {
	block, err := ssh.MarshalPrivateKey(priv, comment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return pem.EncodeToMemory(block), nil
}
