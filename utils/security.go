package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// HashClientKey turns a client address into an opaque rate-limit key so raw
// IPs never reach redis. The salt scopes keys per route.
func HashClientKey(salt, ip string) string {
	sum := blake2b.Sum256([]byte(salt + "|" + ip))
	return hex.EncodeToString(sum[:16])
}
