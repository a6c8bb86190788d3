package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/quill-server/internal/model"
)

// memUserStore is a UserStore with the same uniqueness guarantee as the
// users table. When gate is set, every GetByEmail blocks until gate is
// released so concurrent callers all pass the lookup before any insert.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
	gate  *sync.WaitGroup
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]model.User)}
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	u, ok := s.users[email]
	s.mu.Unlock()

	if s.gate != nil {
		s.gate.Done()
		s.gate.Wait()
	}

	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return model.User{}, model.ErrConflict
	}
	s.users[user.Email] = user
	return user, nil
}

func (s *memUserStore) TouchCredentialEvent(_ context.Context, id uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, u := range s.users {
		if u.ID == id {
			u.LastCredentialAt = &at
			s.users[email] = u
			return nil
		}
	}
	return model.ErrNotFound
}

func (s *memUserStore) rename(email, displayName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[email]
	u.DisplayName = displayName
	s.users[email] = u
}
