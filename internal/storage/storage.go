// Package storage keeps farm photos in object storage.
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// ImageStore uploads and deletes objects by path.
type ImageStore interface {
	// Put writes data at key (overwriting) and returns a retrievable URL.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Delete removes key. A missing object is not an error.
	Delete(ctx context.Context, key string) error
}

// FarmImageKey is the single photo path of a farm.
func FarmImageKey(userID, farmID uuid.UUID) string {
	return fmt.Sprintf("farms/%s/%s/profile.jpg", userID, farmID)
}

// Memory is an in-process ImageStore for development runs without a bucket.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte
}

// NewMemory returns an empty store.
func NewMemory() *Memory { return &Memory{objects: map[string][]byte{}} }

func (m *Memory) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return "memory://" + key, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Has reports whether key is stored.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}
