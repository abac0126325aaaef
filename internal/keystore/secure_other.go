//go:build !unix

package keystore

// checkMlockLimit has no memlock rlimit to consult outside Unix.
func checkMlockLimit() (bool, int64) {
	return true, -1
}
