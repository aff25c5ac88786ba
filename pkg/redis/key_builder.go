package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// KeyAdminSession builds the key holding one admin session
func (kb *KeyBuilder) KeyAdminSession(sessionID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyAdminSession, sessionID))
}

// KeyCatalogAll builds the key caching the public activity list
func (kb *KeyBuilder) KeyCatalogAll() string {
	return kb.BuildKey(KeyCatalogAll)
}
