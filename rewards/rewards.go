// Package rewards is the loyalty mock-up. It has no backend and no
// persistence: rewards live in process memory and disappear on
// restart.
package rewards

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/menuly/restaurant-admin/models"
)

var (
	ErrNotFound      = errors.New("reward not found")
	ErrInvalidPoints = errors.New("points must be a positive number")
)

// Store holds the in-memory reward list.
type Store struct {
	mu      sync.RWMutex
	rewards map[string]models.Reward
}

func NewStore() *Store {
	return &Store{rewards: make(map[string]models.Reward)}
}

// Create adds a reward and returns it with a generated id.
func (s *Store) Create(title string, points int, from, to time.Time) (models.Reward, error) {
	if points <= 0 {
		return models.Reward{}, ErrInvalidPoints
	}
	r := models.Reward{
		ID:       uuid.NewString(),
		Title:    title,
		Points:   points,
		FromDate: from,
		ToDate:   to,
		Active:   true,
	}
	s.mu.Lock()
	s.rewards[r.ID] = r
	s.mu.Unlock()
	return r, nil
}

// List returns rewards ordered by point threshold.
func (s *Store) List() []models.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reward, 0, len(s.rewards))
	for _, r := range s.rewards {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Points < out[j].Points })
	return out
}

// Update replaces a reward's editable fields.
func (s *Store) Update(id string, title string, points int, active bool) (models.Reward, error) {
	if points <= 0 {
		return models.Reward{}, ErrInvalidPoints
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rewards[id]
	if !ok {
		return models.Reward{}, ErrNotFound
	}
	r.Title = title
	r.Points = points
	r.Active = active
	s.rewards[id] = r
	return r, nil
}

// Claim marks a reward claimed.
func (s *Store) Claim(id string) (models.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rewards[id]
	if !ok {
		return models.Reward{}, ErrNotFound
	}
	r.Claimed = true
	s.rewards[id] = r
	return r, nil
}

// Delete removes a reward.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rewards[id]; !ok {
		return ErrNotFound
	}
	delete(s.rewards, id)
	return nil
}
