// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"context"
	"errors"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
)

// reject records a refused write and passes the error through.
func reject(ctx context.Context, entity string, err error) error {
	metrics.RecordRejectedWrite(entity, err)

	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrInvalidOperation):
		logging.CtxInfo(ctx).Str("entity", entity).Str("reason", err.Error()).Msg("Write rejected")
	default:
		logging.CtxErr(ctx, err).Str("entity", entity).Msg("Write failed")
	}
	return err
}

// catalogIndex resolves catalog ids to names for read-side views.
type catalogIndex struct {
	genres map[int]models.Genre
	mpa    map[int]models.MpaRating
}

func loadCatalogIndex(ctx context.Context, catalog storage.CatalogStore) (*catalogIndex, error) {
	genres, err := catalog.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	mpa, err := catalog.ListMpa(ctx)
	if err != nil {
		return nil, err
	}

	idx := &catalogIndex{
		genres: make(map[int]models.Genre, len(genres)),
		mpa:    make(map[int]models.MpaRating, len(mpa)),
	}
	for _, g := range genres {
		idx.genres[g.ID] = g
	}
	for _, m := range mpa {
		idx.mpa[m.ID] = m
	}
	return idx, nil
}

// details builds the read view. Genres come out in ascending id order
// because the film's GenreIDs are stored sorted.
func (idx *catalogIndex) details(f models.Film) models.FilmDetails {
	f.Normalize()
	d := models.FilmDetails{
		Film:   f,
		Genres: make([]models.Genre, 0, len(f.GenreIDs)),
	}
	if f.MpaID != nil {
		if m, ok := idx.mpa[*f.MpaID]; ok {
			d.Mpa = &m
		} else {
			d.Mpa = &models.MpaRating{ID: *f.MpaID}
		}
	}
	for _, id := range f.GenreIDs {
		g, ok := idx.genres[id]
		if !ok {
			g = models.Genre{ID: id}
		}
		d.Genres = append(d.Genres, g)
	}
	return d
}
