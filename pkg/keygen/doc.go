// Package keygen provides the candidate generators used by the vanity search
// engine, one per supported key type, together with the matching private key
// serialization.
//
// Supported key types:
//
//   - ed25519: OpenSSH authorized-key line, e.g. "ssh-ed25519 AAAAC3Nz... \n"
//   - ecdsa-p256: OpenSSH authorized-key line, "ecdsa-sha2-nistp256 AAAAE2Vj..."
//   - secp256k1: lower-case hex of the 33-byte compressed public key
//
// The public text tested by the engine is exactly what gets written to the
// public key file, so a pattern can also match the key type prefix.
//
// Basic Usage:
//
//	gen, err := keygen.New(keygen.Ed25519)
//	if err != nil {
//		log.Fatal(err)
//	}
//	cand, err := gen.Generate()
//	pemBytes, err := keygen.MarshalPrivateKey(keygen.Ed25519, cand.PrivateKey, "me@host")
package keygen
