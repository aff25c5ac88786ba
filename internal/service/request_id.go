package service

import (
	"crypto/rand"
	"fmt"
)

// RequestIDSource issues booking request identifiers. The booking service
// takes it as a collaborator so a durable allocator can replace the random
// one without touching submission logic.
type RequestIDSource interface {
	// Next issues a new request identifier
	Next() (string, error)
}

// requestIDAlphabet matches the original confirmation numbers: uppercase
// base-36 tokens.
const requestIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RequestIDLength is the length of issued booking request identifiers
const RequestIDLength = 7

// RandomRequestIDSource issues random 7-character uppercase alphanumeric
// tokens. Collisions are not guarded against; acceptable for in-memory demo
// data, a durable store must allocate unique identifiers instead.
type RandomRequestIDSource struct{}

// NewRandomRequestIDSource creates a new random request ID source
func NewRandomRequestIDSource() *RandomRequestIDSource {
	return &RandomRequestIDSource{}
}

// Next issues a new request identifier
func (s *RandomRequestIDSource) Next() (string, error) {
	buf := make([]byte, RequestIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	token := make([]byte, RequestIDLength)
	for i, b := range buf {
		token[i] = requestIDAlphabet[int(b)%len(requestIDAlphabet)]
	}
	return string(token), nil
}
