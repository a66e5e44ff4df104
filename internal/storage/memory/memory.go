// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package memory provides a mutex-guarded in-memory storage.Store.
//
// Each Store owns its maps and ID sequences, so tests construct one isolated
// instance per case. All operations take a single lock for their whole
// duration and are therefore atomic with respect to each other.
package memory

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
)

// Sequence hands out entity identities.
type Sequence interface {
	Next() int64
}

// AtomicSequence is a lock-free counter starting after its initial value.
type AtomicSequence struct {
	n atomic.Int64
}

// NewAtomicSequence returns a sequence whose first Next() is start+1.
func NewAtomicSequence(start int64) *AtomicSequence {
	s := &AtomicSequence{}
	s.n.Store(start)
	return s
}

// Next returns the next identity.
func (s *AtomicSequence) Next() int64 {
	return s.n.Add(1)
}

// Option configures a Store.
type Option func(*Store)

// WithFilmSequence overrides the film id generator.
func WithFilmSequence(seq Sequence) Option {
	return func(s *Store) { s.filmSeq = seq }
}

// WithUserSequence overrides the user id generator.
func WithUserSequence(seq Sequence) Option {
	return func(s *Store) { s.userSeq = seq }
}

// WithClock overrides the time source used for friendship timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store implements storage.Store in process memory.
type Store struct {
	mu sync.RWMutex

	genres map[int]models.Genre
	mpa    map[int]models.MpaRating

	films map[int64]models.Film
	users map[int64]models.User

	// likes is keyed by film id, then user id.
	likes map[int64]map[int64]struct{}
	// friends is keyed by requester id, then recipient id.
	friends map[int64]map[int64]models.Friendship

	filmSeq Sequence
	userSeq Sequence
	now     func() time.Time
	closed  bool
}

var _ storage.Store = (*Store)(nil)

// New returns an empty Store with the default catalogs seeded.
func New(opts ...Option) *Store {
	s := &Store{
		genres:  make(map[int]models.Genre),
		mpa:     make(map[int]models.MpaRating),
		films:   make(map[int64]models.Film),
		users:   make(map[int64]models.User),
		likes:   make(map[int64]map[int64]struct{}),
		friends: make(map[int64]map[int64]models.Friendship),
		filmSeq: NewAtomicSequence(0),
		userSeq: NewAtomicSequence(0),
		now:     time.Now,
	}
	for _, g := range models.DefaultGenres() {
		s.genres[g.ID] = g
	}
	for _, m := range models.DefaultMpaRatings() {
		s.mpa[m.ID] = m
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping reports ErrClosed once the store has been closed.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return storage.ErrClosed
	}
	return ctx.Err()
}

// Close marks the store closed. Data is kept so late readers do not panic.
func (s *Store) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

// ========================================
// Catalogs
// ========================================

func (s *Store) ListGenres(_ context.Context) ([]models.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Genre, 0, len(s.genres))
	for _, g := range s.genres {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b models.Genre) int { return a.ID - b.ID })
	return out, nil
}

func (s *Store) GetGenre(_ context.Context, id int) (*models.Genre, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.genres[id]
	if !ok {
		return nil, models.NotFound(models.EntityGenre, int64(id))
	}
	return &g, nil
}

func (s *Store) ListMpa(_ context.Context) ([]models.MpaRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MpaRating, 0, len(s.mpa))
	for _, m := range s.mpa {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b models.MpaRating) int { return a.ID - b.ID })
	return out, nil
}

func (s *Store) GetMpa(_ context.Context, id int) (*models.MpaRating, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.mpa[id]
	if !ok {
		return nil, models.NotFound(models.EntityMpa, int64(id))
	}
	return &m, nil
}
