// Package common holds small helpers shared across the RentIQ client layers.
package common

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to remove passwords from memory once they have been sent to the server.
// A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
