// Package shared provides helpers for handling secrets in memory.
package shared

// WipeByteArray overwrites b with zeros so a secret read from the terminal
// does not linger in memory. A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
