// Marquee - Film Catalog and Social Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package service

import (
	"context"

	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/storage"
)

// CatalogService serves the genre and MPA reference catalogs.
type CatalogService struct {
	catalog storage.CatalogStore
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(catalog storage.CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListGenres returns all genres ordered by id.
func (s *CatalogService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return s.catalog.ListGenres(ctx)
}

// GetGenre returns one genre or models.ErrNotFound.
func (s *CatalogService) GetGenre(ctx context.Context, id int) (*models.Genre, error) {
	return s.catalog.GetGenre(ctx, id)
}

// ListMpa returns all MPA ratings ordered by id.
func (s *CatalogService) ListMpa(ctx context.Context) ([]models.MpaRating, error) {
	return s.catalog.ListMpa(ctx)
}

// GetMpa returns one MPA rating or models.ErrNotFound.
func (s *CatalogService) GetMpa(ctx context.Context, id int) (*models.MpaRating, error) {
	return s.catalog.GetMpa(ctx, id)
}
