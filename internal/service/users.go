// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"context"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
	"github.com/tomtom215/marquee/internal/validation"
)

// UserService implements user operations and the friendship ledger views.
type UserService struct {
	store storage.Store
}

// NewUserService creates a UserService.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// List returns every user ordered by id.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Get returns one user or models.ErrNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// Create validates and persists a new user. A blank name becomes the login.
func (s *UserService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if err := validation.ValidateUser(u); err != nil {
		return nil, reject(ctx, models.EntityUser, err)
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, reject(ctx, models.EntityUser, err)
	}

	metrics.RecordEntityOperation(models.EntityUser, "create")
	logging.CtxDebug(ctx).Int64("user_id", u.ID).Str("login", u.Login).Msg("User created")
	return u, nil
}

// Update validates and replaces an existing user.
func (s *UserService) Update(ctx context.Context, u *models.User) (*models.User, error) {
	if err := validation.ValidateUser(u); err != nil {
		return nil, reject(ctx, models.EntityUser, err)
	}
	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, reject(ctx, models.EntityUser, err)
	}

	metrics.RecordEntityOperation(models.EntityUser, "update")
	logging.CtxDebug(ctx).Int64("user_id", u.ID).Msg("User updated")
	return u, nil
}

// Delete removes a user together with their likes and friendships.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return reject(ctx, models.EntityUser, err)
	}

	metrics.RecordEntityOperation(models.EntityUser, "delete")
	logging.CtxDebug(ctx).Int64("user_id", id).Msg("User deleted")
	return nil
}

// AddFriend records that userID follows friendID.
func (s *UserService) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return reject(ctx, "friend", models.InvalidOperation("a user cannot add themselves as a friend"))
	}
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return reject(ctx, "friend", err)
	}
	if err := s.store.AddFriend(ctx, userID, friendID); err != nil {
		return reject(ctx, "friend", err)
	}

	metrics.RecordLedgerMutation("friend", "add")
	logging.CtxDebug(ctx).Int64("user_id", userID).Int64("friend_id", friendID).Msg("Friend added")
	return nil
}

// RemoveFriend deletes the userID -> friendID edge if present.
func (s *UserService) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if err := s.requireUsers(ctx, userID, friendID); err != nil {
		return reject(ctx, "friend", err)
	}
	if err := s.store.RemoveFriend(ctx, userID, friendID); err != nil {
		return reject(ctx, "friend", err)
	}

	metrics.RecordLedgerMutation("friend", "remove")
	logging.CtxDebug(ctx).Int64("user_id", userID).Int64("friend_id", friendID).Msg("Friend removed")
	return nil
}

// Friends returns the users userID has added, ordered by id.
func (s *UserService) Friends(ctx context.Context, userID int64) ([]models.User, error) {
	ids, err := s.store.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.store.GetUsers(ctx, ids)
}

// CommonFriends returns the users both userID and otherID have added.
func (s *UserService) CommonFriends(ctx context.Context, userID, otherID int64) ([]models.User, error) {
	a, err := s.store.FriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	b, err := s.store.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}
	return s.store.GetUsers(ctx, IntersectIDs(a, b))
}

// Friendships returns userID's outgoing edges with their status.
func (s *UserService) Friendships(ctx context.Context, userID int64) ([]models.Friendship, error) {
	return s.store.Friendships(ctx, userID)
}

func (s *UserService) requireUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := s.store.GetUser(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
