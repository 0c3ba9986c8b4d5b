package box

import "fmt"

// MessageSizeError represents an error when a message handed to Seal or Open
// exceeds MaxMessageLen. Messages this large would need a keystream block
// index above 2^16-1.
type MessageSizeError int

// Error returns a formatted error message describing the oversized message.
func (e MessageSizeError) Error() string {
	return fmt.Sprintf("box: message size %d exceeds maximum of %d bytes", int(e), MaxMessageLen)
}

// AuthenticationError represents an error when Open's computed Poly1305 tag
// does not match the tag supplied with the ciphertext. This indicates the
// ciphertext or tag was corrupted or tampered with.
type AuthenticationError struct{}

// Error returns a formatted error message describing the authentication
// failure.
func (e AuthenticationError) Error() string {
	return "box: message authentication failed"
}
