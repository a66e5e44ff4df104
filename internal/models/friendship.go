// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package models

import "time"

// FriendshipStatus is the reciprocation state of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipPending marks an edge the recipient has not reciprocated.
	FriendshipPending FriendshipStatus = "pending"

	// FriendshipConfirmed marks an edge that was reciprocated. It stays
	// confirmed until the edge itself is removed.
	FriendshipConfirmed FriendshipStatus = "confirmed"
)

// Friendship is a directed edge: RequesterID follows RecipientID.
type Friendship struct {
	RequesterID int64            `json:"requesterId"`
	RecipientID int64            `json:"recipientId"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created"`
	ConfirmedAt *time.Time       `json:"confirmed,omitempty"`
}

// Confirm marks the edge as reciprocated at the given time.
func (f *Friendship) Confirm(at time.Time) {
	f.Status = FriendshipConfirmed
	f.ConfirmedAt = &at
}
