package util

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// HashKey creates an MD5 hash from the given parts, used to fingerprint a
// loaded dataset (source paths and row counts) for published snapshots.
func HashKey(parts ...string) string {
	builder := strings.Builder{}
	for i, p := range parts {
		if i > 0 {
			builder.WriteString("|")
		}
		builder.WriteString(strings.TrimSpace(strings.ToLower(p)))
	}
	return hashString(builder.String())
}

func hashString(input string) string {
	sum := md5.Sum([]byte(input))
	return hex.EncodeToString(sum[:])
}
