package repository

import "time"

// MockCache records calls for tests.
type MockCache struct {
	Store    map[string]string
	GetCalls int
	SetCalls int
}

func NewMockCache() *MockCache {
	return &MockCache{
		Store: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.GetCalls++
	val, ok := m.Store[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string, ttl time.Duration) error {
	m.SetCalls++
	m.Store[key] = value
	return nil
}
