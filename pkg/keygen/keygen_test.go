package keygen

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/ssh"
)

func TestParseKeyType(t *testing.T) {
	tests := []struct {
		in   string
		want KeyType
	}{
		{"", Ed25519},
		{"ed25519", Ed25519},
		{"SSH-ED25519", Ed25519},
		{"ecdsa", ECDSAP256},
		{"ecdsa-p256", ECDSAP256},
		{"secp256k1", Secp256k1},
	}
	for _, tt := range tests {
		got, err := ParseKeyType(tt.in)
		if err != nil {
			t.Fatalf("ParseKeyType(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseKeyType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKeyType("rsa"); !errors.Is(err, ErrUnknownKeyType) {
		t.Errorf("expected ErrUnknownKeyType, got %v", err)
	}
}

func TestKeyType_RoundTripNames(t *testing.T) {
	for _, k := range KeyTypes() {
		parsed, err := ParseKeyType(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKeyType(%q) = %v, %v", k.String(), parsed, err)
		}
		if k.DefaultFileName() == "id_unknown" {
			t.Errorf("%s has no default file name", k)
		}
	}
}

func TestEd25519Generator(t *testing.T) {
	gen, err := New(Ed25519)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cand, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !bytes.HasPrefix(cand.PublicText, []byte("ssh-ed25519 AAAAC3NzaC1lZDI1NTE5")) {
		t.Errorf("unexpected public text %q", cand.PublicText)
	}
	priv, ok := cand.PrivateKey.(ed25519.PrivateKey)
	if !ok {
		t.Fatalf("PrivateKey is %T, want ed25519.PrivateKey", cand.PrivateKey)
	}

	parsed, _, _, _, err := ssh.ParseAuthorizedKey(cand.PublicText)
	if err != nil {
		t.Fatalf("public text is not an authorized key: %v", err)
	}
	want, err := ssh.NewPublicKey(priv.Public())
	if err != nil {
		t.Fatalf("NewPublicKey failed: %v", err)
	}
	if !bytes.Equal(parsed.Marshal(), want.Marshal()) {
		t.Error("public text does not belong to the private key")
	}
}

func TestECDSAGenerator(t *testing.T) {
	gen, err := New(ECDSAP256)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cand, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !bytes.HasPrefix(cand.PublicText, []byte("ecdsa-sha2-nistp256 ")) {
		t.Errorf("unexpected public text %q", cand.PublicText)
	}
	if _, ok := cand.PrivateKey.(*ecdsa.PrivateKey); !ok {
		t.Fatalf("PrivateKey is %T, want *ecdsa.PrivateKey", cand.PrivateKey)
	}
}

func TestSecp256k1Generator(t *testing.T) {
	gen, err := New(Secp256k1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cand, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(cand.PublicText) != 66 {
		t.Fatalf("public text length = %d, want 66", len(cand.PublicText))
	}
	if cand.PublicText[0] != '0' || (cand.PublicText[1] != '2' && cand.PublicText[1] != '3') {
		t.Errorf("public text %q is not a compressed point", cand.PublicText)
	}

	privBytes, err := MarshalPrivateKey(Secp256k1, cand.PrivateKey, "")
	if err != nil {
		t.Fatalf("MarshalPrivateKey failed: %v", err)
	}
	pub, err := PublicKeyFromPrivate(strings.TrimSpace(string(privBytes)))
	if err != nil {
		t.Fatalf("PublicKeyFromPrivate failed: %v", err)
	}
	if pub != string(cand.PublicText) {
		t.Errorf("derived public key %s, want %s", pub, cand.PublicText)
	}
}

func TestMarshalPrivateKey_OpenSSH(t *testing.T) {
	for _, k := range []KeyType{Ed25519, ECDSAP256} {
		gen, _ := New(k)
		cand, err := gen.Generate()
		if err != nil {
			t.Fatalf("%s: Generate failed: %v", k, err)
		}
		pemBytes, err := MarshalPrivateKey(k, cand.PrivateKey, "vanity@test")
		if err != nil {
			t.Fatalf("%s: MarshalPrivateKey failed: %v", k, err)
		}
		if !bytes.Contains(pemBytes, []byte("BEGIN OPENSSH PRIVATE KEY")) {
			t.Errorf("%s: not an OpenSSH PEM block", k)
		}

		signer, err := ssh.ParsePrivateKey(pemBytes)
		if err != nil {
			t.Fatalf("%s: ParsePrivateKey failed: %v", k, err)
		}
		if !bytes.Equal(ssh.MarshalAuthorizedKey(signer.PublicKey()), cand.PublicText) {
			t.Errorf("%s: saved private key does not match public text", k)
		}
	}
}

func TestMarshalPrivateKey_WrongType(t *testing.T) {
	if _, err := MarshalPrivateKey(Secp256k1, "not a key", ""); err == nil {
		t.Error("expected error for wrong private key type")
	}
	if _, err := MarshalPrivateKey(KeyType(99), nil, ""); !errors.Is(err, ErrUnknownKeyType) {
		t.Errorf("expected ErrUnknownKeyType, got %v", err)
	}
}

func TestPublicKeyFromPrivate_Invalid(t *testing.T) {
	if _, err := PublicKeyFromPrivate("zz"); err == nil {
		t.Error("expected hex error")
	}
	short := hex.EncodeToString(make([]byte, secp256k1.PrivKeyBytesLen-1))
	if _, err := PublicKeyFromPrivate(short); err == nil {
		t.Error("expected length error")
	}
}

func TestValidatePattern(t *testing.T) {
	tests := []struct {
		k          KeyType
		pattern    string
		ignoreCase bool
		ok         bool
	}{
		{Ed25519, "AAAA", false, true},
		{Ed25519, "a+b/", false, true},
		{Ed25519, "ssh-ed", false, true},
		{Ed25519, "hello!", false, false},
		{Ed25519, "_", true, false},
		{Secp256k1, "beef", false, true},
		{Secp256k1, "BEEF", false, false},
		{Secp256k1, "BEEF", true, true},
		{Secp256k1, "xyz", true, false},
	}
	for _, tt := range tests {
		err := ValidatePattern(tt.k, tt.pattern, tt.ignoreCase)
		if tt.ok && err != nil {
			t.Errorf("ValidatePattern(%s, %q) unexpected error: %v", tt.k, tt.pattern, err)
		}
		if !tt.ok && !errors.Is(err, ErrImpossiblePattern) {
			t.Errorf("ValidatePattern(%s, %q) = %v, want ErrImpossiblePattern", tt.k, tt.pattern, err)
		}
	}
}

func TestDifficulty(t *testing.T) {
	exact := Difficulty(Ed25519, "abcd", false)
	folded := Difficulty(Ed25519, "abcd", true)
	if !(folded < exact) {
		t.Errorf("ignore-case difficulty %f should be below exact %f", folded, exact)
	}
	if math.Abs(exact-16*folded) > 1e-6*exact {
		t.Errorf("four letters folded should be 16x easier: exact=%f folded=%f", exact, folded)
	}

	longer := Difficulty(Secp256k1, "beefbeef", false)
	shorter := Difficulty(Secp256k1, "beef", false)
	if !(longer > shorter) {
		t.Errorf("longer pattern should be harder: %f <= %f", longer, shorter)
	}

	if !math.IsInf(Difficulty(Secp256k1, "zz", false), 1) {
		t.Error("impossible pattern should be +Inf")
	}
	if Difficulty(Ed25519, "", false) != 1 {
		t.Error("empty pattern should be 1")
	}
}

func TestDifficulty_NeverBelowOne(t *testing.T) {
	for _, pattern := range []string{"-", "= ", "a"} {
		if got := Difficulty(Ed25519, pattern, true); got != 1 {
			t.Errorf("Difficulty(%q) = %f, want 1", pattern, got)
		}
	}
}
