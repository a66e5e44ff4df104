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

// ========================================
// Likes
// ========================================

func (s *Store) AddLike(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFilmAndUser(filmID, userID); err != nil {
		return err
	}
	likers, ok := s.likes[filmID]
	if !ok {
		likers = make(map[int64]struct{})
		s.likes[filmID] = likers
	}
	likers[userID] = struct{}{}
	return nil
}

func (s *Store) RemoveLike(_ context.Context, filmID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFilmAndUser(filmID, userID); err != nil {
		return err
	}
	delete(s.likes[filmID], userID)
	return nil
}

func (s *Store) requireFilmAndUser(filmID, userID int64) error {
	if _, ok := s.films[filmID]; !ok {
		return models.NotFound(models.EntityFilm, filmID)
	}
	if _, ok := s.users[userID]; !ok {
		return models.NotFound(models.EntityUser, userID)
	}
	return nil
}

// ========================================
// Friendships
// ========================================

func (s *Store) requireUsers(ids ...int64) error {
	for _, id := range ids {
		if _, ok := s.users[id]; !ok {
			return models.NotFound(models.EntityUser, id)
		}
	}
	return nil
}

func (s *Store) AddFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUsers(userID, friendID); err != nil {
		return err
	}
	if _, exists := s.friends[userID][friendID]; exists {
		return nil
	}

	now := s.now().UTC()
	edge := models.Friendship{
		RequesterID: userID,
		RecipientID: friendID,
		Status:      models.FriendshipPending,
		CreatedAt:   now,
	}

	if reverse, ok := s.friends[friendID][userID]; ok {
		edge.Confirm(now)
		if reverse.Status != models.FriendshipConfirmed {
			reverse.Confirm(now)
			s.friends[friendID][userID] = reverse
		}
	}

	out, ok := s.friends[userID]
	if !ok {
		out = make(map[int64]models.Friendship)
		s.friends[userID] = out
	}
	out[friendID] = edge
	return nil
}

func (s *Store) RemoveFriend(_ context.Context, userID, friendID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireUsers(userID, friendID); err != nil {
		return err
	}
	if _, exists := s.friends[userID][friendID]; !exists {
		return nil
	}
	delete(s.friends[userID], friendID)
	return nil
}

func (s *Store) FriendIDs(_ context.Context, userID int64) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireUsers(userID); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(s.friends[userID]))
	for id := range s.friends[userID] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *Store) Friendships(_ context.Context, userID int64) ([]models.Friendship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.requireUsers(userID); err != nil {
		return nil, err
	}
	out := make([]models.Friendship, 0, len(s.friends[userID]))
	for _, edge := range s.friends[userID] {
		if edge.ConfirmedAt != nil {
			at := *edge.ConfirmedAt
			edge.ConfirmedAt = &at
		}
		out = append(out, edge)
	}
	slices.SortFunc(out, func(a, b models.Friendship) int { return cmpID(a.RecipientID, b.RecipientID) })
	return out, nil
}
