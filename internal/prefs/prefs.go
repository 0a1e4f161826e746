// Package prefs is the local key-value storage for the session token and
// per-project preferences.
package prefs

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// TokenKey is where the session token is kept.
const TokenKey = "auth_token"

// ReferenceLocaleKey is where a project's reference locale choice is kept.
func ReferenceLocaleKey(projectID string) string {
	return "project:" + projectID + ":referenceLocale"
}

// Store is a string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Memory is a process-local Store.
type Memory struct {
	cache *cache.Cache
}

// NewMemory creates an empty Memory store. Entries never expire.
func NewMemory() *Memory {
	return &Memory{cache: cache.New(cache.NoExpiration, 0)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := m.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.cache.Set(key, value, cache.NoExpiration)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}
