package repository

import (
	"context"
	"slices"
	"sync"

	consumption "frontdesk/internal/domains/consumption/model"
	stay "frontdesk/internal/domains/stay/model"
)

type memoryStore struct {
	mu           sync.RWMutex
	stays        []stay.StayRecord
	consumptions []consumption.Consumption
}

// NewMemory returns a process local Store seeded with copies of the given sets.
func NewMemory(stays []stay.StayRecord, consumptions []consumption.Consumption) Store {
	return &memoryStore{
		stays:        numberStays(stays),
		consumptions: numberConsumptions(consumptions),
	}
}

func (m *memoryStore) ReadStays(_ context.Context) ([]stay.StayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.stays), nil
}

func (m *memoryStore) ReplaceStays(_ context.Context, stays []stay.StayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stays = numberStays(stays)

	return nil
}

func (m *memoryStore) ReadConsumptions(_ context.Context) ([]consumption.Consumption, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.consumptions), nil
}

func (m *memoryStore) ReplaceConsumptions(_ context.Context, consumptions []consumption.Consumption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.consumptions = numberConsumptions(consumptions)

	return nil
}

func (m *memoryStore) ReplaceAll(_ context.Context, stays []stay.StayRecord, consumptions []consumption.Consumption) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stays = numberStays(stays)
	m.consumptions = numberConsumptions(consumptions)

	return nil
}
