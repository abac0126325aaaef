package keystore

import (
	"log/slog"
	"sync"
)

// minMlockLimitKB is the memlock limit memguard needs for its own key
// material plus one guarded page for the private key.
const minMlockLimitKB = 64

var (
	secureInitOnce  sync.Once
	mlockSufficient bool
	mlockLimitKB    int64
)

// secureMemoryAvailable checks the memlock limit once. memguard panics when
// mlock fails, so callers fall back to ordinary memory when this is false.
func secureMemoryAvailable() bool {
	secureInitOnce.Do(func() {
		mlockSufficient, mlockLimitKB = checkMlockLimit()
		if !mlockSufficient {
			slog.Warn("mlock limit too low, private key will not be held in locked memory",
				"mlock_limit_kb", mlockLimitKB,
				"required_kb", minMlockLimitKB,
			)
		}
	})
	return mlockSufficient
}
