// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package memory

import (
	"context"
	"slices"

	"github.com/tomtom215/marquee/internal/models"
)

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b models.User) int { return cmpID(a.ID, b.ID) })
	return out, nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.NotFound(models.EntityUser, id)
	}
	return &u, nil
}

func (s *Store) GetUsers(_ context.Context, ids []int64) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(ids))
	for _, id := range models.NormalizeIDs(ids) {
		if u, ok := s.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *Store) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.userSeq.Next()
	s.users[u.ID] = *u
	return nil
}

func (s *Store) UpdateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return models.NotFound(models.EntityUser, u.ID)
	}
	s.users[u.ID] = *u
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return models.NotFound(models.EntityUser, id)
	}
	delete(s.users, id)

	for _, likers := range s.likes {
		delete(likers, id)
	}

	// Outgoing edges go away with the user; incoming edges lose their
	// reciprocation target and are dropped too.
	delete(s.friends, id)
	for requester, out := range s.friends {
		delete(out, id)
		if len(out) == 0 {
			delete(s.friends, requester)
		}
	}
	return nil
}
