package store

import (
	"sync"

	"github.com/iaigorluiz-svg/nutriai-api/models"
)

// Memory is the in-memory ProfileStore. Concurrent writes to the same key
// are last-write-wins; data lives for the process lifetime only.
type Memory struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

func NewMemory() *Memory {
	return &Memory{profiles: make(map[string]models.UserProfile)}
}

func (m *Memory) Get(userID string) (*models.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *Memory) Put(profile models.UserProfile) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, exists := m.profiles[profile.UserID]
	m.profiles[profile.UserID] = profile
	return !exists, nil
}
