package repository

import (
	"context"
	"sync"

	"github.com/actuallystonmai/content-catalog/internal/domain"
)

type Memory struct {
	mu       sync.RWMutex
	contents map[int64]*domain.Content
}

func NewMemory() *Memory {
	return &Memory{contents: make(map[int64]*domain.Content)}
}

func (m *Memory) Add(ctx context.Context, content *domain.Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := *content
	m.contents[content.ID()] = &c
	return nil
}

func (m *Memory) Find(ctx context.Context, id int64) (*domain.Content, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.contents[id]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	c := *stored
	return &c, nil
}

func (m *Memory) Update(ctx context.Context, id int64, content *domain.Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.contents[id]; !ok {
		return domain.ErrContentNotFound
	}
	c := *content
	m.contents[id] = &c
	return nil
}

func (m *Memory) Remove(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.contents, id)
	return nil
}

// Len reports the number of stored contents. Only tests call it.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.contents)
}
