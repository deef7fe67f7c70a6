package config

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Snapshot returns a stable hash of the configuration. Callers should hash a
// loaded (normalized and defaulted) config so equivalent spellings agree.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
