// Package sessions keeps wizard drafts in process memory. A draft is owned
// by exactly one wizard session and never outlives the process; losing
// in-progress drafts on restart is the documented behavior.
package sessions

import (
	"context"
	"errors"
	"sync"

	"comunidad_dashboard/internal/domain/entities"
	"comunidad_dashboard/internal/usecase/interfaces"
)

var ErrStoreCerrado = errors.New("session store closed")

type MemoryStore struct {
	mu       sync.RWMutex
	sesiones map[string]entities.SesionBorrador
	cerrado  bool
}

var _ interfaces.ISesionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sesiones: make(map[string]entities.SesionBorrador)}
}

func (s *MemoryStore) Save(_ context.Context, sesion entities.SesionBorrador) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cerrado {
		return ErrStoreCerrado
	}
	s.sesiones[sesion.ID] = sesion
	return nil
}

// Get returns the zero-value session when the ID is unknown.
func (s *MemoryStore) Get(_ context.Context, sesionID string) (entities.SesionBorrador, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cerrado {
		return entities.SesionBorrador{}, ErrStoreCerrado
	}
	return s.sesiones[sesionID], nil
}

func (s *MemoryStore) Delete(_ context.Context, sesionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cerrado {
		return ErrStoreCerrado
	}
	delete(s.sesiones, sesionID)
	return nil
}

// Close discards every session and rejects further use.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cerrado = true
	s.sesiones = nil
}
