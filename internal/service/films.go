// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
	"github.com/tomtom215/marquee/internal/validation"
)

// FilmService implements film operations, likes and popularity ranking.
type FilmService struct {
	store storage.Store
}

// NewFilmService creates a FilmService.
func NewFilmService(store storage.Store) *FilmService {
	return &FilmService{store: store}
}

// List returns every film with catalog names resolved, ordered by id.
func (s *FilmService) List(ctx context.Context) ([]models.FilmDetails, error) {
	films, err := s.store.ListFilms(ctx)
	if err != nil {
		return nil, err
	}
	return s.detailsAll(ctx, films)
}

// Get returns one film or models.ErrNotFound.
func (s *FilmService) Get(ctx context.Context, id int64) (*models.FilmDetails, error) {
	f, err := s.store.GetFilm(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, *f)
}

// Create validates and persists a new film. f.ID is assigned by storage.
func (s *FilmService) Create(ctx context.Context, f *models.Film) (*models.FilmDetails, error) {
	if err := s.checkWrite(ctx, f); err != nil {
		return nil, reject(ctx, models.EntityFilm, err)
	}
	if err := s.store.CreateFilm(ctx, f); err != nil {
		return nil, reject(ctx, models.EntityFilm, err)
	}

	metrics.RecordEntityOperation(models.EntityFilm, "create")
	logging.CtxDebug(ctx).Int64("film_id", f.ID).Str("name", f.Name).Msg("Film created")
	return s.Get(ctx, f.ID)
}

// Update replaces an existing film's fields and genre set.
func (s *FilmService) Update(ctx context.Context, f *models.Film) (*models.FilmDetails, error) {
	if err := s.checkWrite(ctx, f); err != nil {
		return nil, reject(ctx, models.EntityFilm, err)
	}
	if err := s.store.UpdateFilm(ctx, f); err != nil {
		return nil, reject(ctx, models.EntityFilm, err)
	}

	metrics.RecordEntityOperation(models.EntityFilm, "update")
	logging.CtxDebug(ctx).Int64("film_id", f.ID).Msg("Film updated")
	return s.Get(ctx, f.ID)
}

// Delete removes a film and every like on it.
func (s *FilmService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteFilm(ctx, id); err != nil {
		return reject(ctx, models.EntityFilm, err)
	}

	metrics.RecordEntityOperation(models.EntityFilm, "delete")
	logging.CtxDebug(ctx).Int64("film_id", id).Msg("Film deleted")
	return nil
}

// Like records that userID likes filmID. Repeating it is a no-op.
func (s *FilmService) Like(ctx context.Context, filmID, userID int64) error {
	if err := s.requireEndpoints(ctx, filmID, userID); err != nil {
		return reject(ctx, "like", err)
	}
	if err := s.store.AddLike(ctx, filmID, userID); err != nil {
		return reject(ctx, "like", err)
	}

	metrics.RecordLedgerMutation("like", "add")
	logging.CtxDebug(ctx).Int64("film_id", filmID).Int64("user_id", userID).Msg("Like added")
	return nil
}

// Unlike removes a like. Removing an absent like is a no-op.
func (s *FilmService) Unlike(ctx context.Context, filmID, userID int64) error {
	if err := s.requireEndpoints(ctx, filmID, userID); err != nil {
		return reject(ctx, "like", err)
	}
	if err := s.store.RemoveLike(ctx, filmID, userID); err != nil {
		return reject(ctx, "like", err)
	}

	metrics.RecordLedgerMutation("like", "remove")
	logging.CtxDebug(ctx).Int64("film_id", filmID).Int64("user_id", userID).Msg("Like removed")
	return nil
}

// Popular returns at most count films ranked by like count.
func (s *FilmService) Popular(ctx context.Context, count int) ([]models.FilmDetails, error) {
	if count <= 0 {
		return nil, models.Validation("count", fmt.Sprintf("count must be positive, got %d", count))
	}

	films, err := s.store.ListFilms(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ranked := RankPopular(films, count)
	metrics.RecordPopularRanking(time.Since(start), len(films))

	return s.detailsAll(ctx, ranked)
}

// checkWrite runs the field rules then the catalog reference checks.
func (s *FilmService) checkWrite(ctx context.Context, f *models.Film) error {
	if err := validation.ValidateFilm(f); err != nil {
		return err
	}
	return s.checkReferences(ctx, f)
}

// checkReferences fails with models.ErrNotFound on the first unknown MPA
// rating or genre.
func (s *FilmService) checkReferences(ctx context.Context, f *models.Film) error {
	if f.MpaID != nil {
		if _, err := s.store.GetMpa(ctx, *f.MpaID); err != nil {
			return err
		}
	}
	for _, id := range models.NormalizeGenreIDs(f.GenreIDs) {
		if _, err := s.store.GetGenre(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *FilmService) requireEndpoints(ctx context.Context, filmID, userID int64) error {
	if _, err := s.store.GetFilm(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.store.GetUser(ctx, userID); err != nil {
		return err
	}
	return nil
}

func (s *FilmService) details(ctx context.Context, f models.Film) (*models.FilmDetails, error) {
	idx, err := loadCatalogIndex(ctx, s.store)
	if err != nil {
		return nil, err
	}
	d := idx.details(f)
	return &d, nil
}

func (s *FilmService) detailsAll(ctx context.Context, films []models.Film) ([]models.FilmDetails, error) {
	idx, err := loadCatalogIndex(ctx, s.store)
	if err != nil {
		return nil, err
	}
	out := make([]models.FilmDetails, 0, len(films))
	for _, f := range films {
		out = append(out, idx.details(f))
	}
	return out, nil
}
