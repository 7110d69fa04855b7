package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

var artworkColumns = []string{
	"id", "title", "artist", "description", "price", "image_url",
	"medium", "dimensions", "year", "status", "created_at",
}

// artworkRepository is the SQL-backed implementation of [ArtworkRepository].
type artworkRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewArtworkRepository constructs an [ArtworkRepository] backed by the
// provided database connection and logger.
func NewArtworkRepository(db *DB, logger *logger.Logger) ArtworkRepository {
	logger.Debug().Msg("creating artwork repository")
	return &artworkRepository{
		db:     db,
		logger: logger,
	}
}

func scanArtwork(row interface{ Scan(...any) error }) (models.Artwork, error) {
	var a models.Artwork
	err := row.Scan(&a.ID, &a.Title, &a.Artist, &a.Description, &a.Price,
		&a.ImageURL, &a.Medium, &a.Dimensions, &a.Year, &a.Status, &a.CreatedAt)
	return a, err
}

// ListArtworks returns every catalogue entry, newest first.
func (r *artworkRepository) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.builder.
		Select(artworkColumns...).
		From("artworks").
		OrderBy("created_at DESC").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		log.Err(err).Msg("error listing artworks")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	artworks := make([]models.Artwork, 0)
	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			log.Err(err).Msg("error scanning artwork row")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		artworks = append(artworks, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return artworks, nil
}

// GetArtworkByID returns one catalogue entry or [ErrArtworkNotFound].
func (r *artworkRepository) GetArtworkByID(ctx context.Context, id int64) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	a, err := scanArtwork(r.db.builder.
		Select(artworkColumns...).
		From("artworks").
		Where("id = ?", id).
		RunWith(r.db.DB).
		QueryRowContext(ctx))

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Artwork{}, ErrArtworkNotFound
	case err != nil:
		log.Err(err).Int64("id", id).Msg("error finding artwork")
		return models.Artwork{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return a, nil
}

// CreateArtwork inserts a new catalogue entry and returns it with
// server-assigned fields populated.
func (r *artworkRepository) CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	row := r.db.builder.
		Insert("artworks").
		Columns("title", "artist", "description", "price", "image_url",
			"medium", "dimensions", "year", "status").
		Values(artwork.Title, artwork.Artist, artwork.Description, artwork.Price,
			artwork.ImageURL, artwork.Medium, artwork.Dimensions, artwork.Year, artwork.Status).
		Suffix("RETURNING id, created_at").
		RunWith(r.db.DB).
		QueryRowContext(ctx)

	if err := row.Scan(&artwork.ID, &artwork.CreatedAt); err != nil {
		log.Err(err).Str("title", artwork.Title).Msg("error creating artwork")
		return models.Artwork{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return artwork, nil
}

// UpdateArtwork overwrites every mutable column of the identified entry.
// An id matching no record maps to [ErrArtworkNotFound].
func (r *artworkRepository) UpdateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.builder.
		Update("artworks").
		Set("title", artwork.Title).
		Set("artist", artwork.Artist).
		Set("description", artwork.Description).
		Set("price", artwork.Price).
		Set("image_url", artwork.ImageURL).
		Set("medium", artwork.Medium).
		Set("dimensions", artwork.Dimensions).
		Set("year", artwork.Year).
		Set("status", artwork.Status).
		Where("id = ?", artwork.ID).
		RunWith(r.db.DB).
		ExecContext(ctx)
	if err != nil {
		log.Err(err).Int64("id", artwork.ID).Msg("error updating artwork")
		return models.Artwork{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Artwork{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Artwork{}, ErrArtworkNotFound
	}

	return r.GetArtworkByID(ctx, artwork.ID)
}

// DeleteArtwork removes the identified entry or returns
// [ErrArtworkNotFound].
func (r *artworkRepository) DeleteArtwork(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.builder.
		Delete("artworks").
		Where("id = ?", id).
		RunWith(r.db.DB).
		ExecContext(ctx)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting artwork")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrArtworkNotFound
	}

	return nil
}
