package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// artworkService is the concrete implementation of ArtworkService.
type artworkService struct {
	artworkRepository store.ArtworkRepository
	uploads           UploadService
	logger            *logger.Logger
}

// NewArtworkService constructs an ArtworkService wired to the given
// repository. Image payloads found in submitted forms are persisted
// through uploads before the record is stored.
func NewArtworkService(artworkRepository store.ArtworkRepository, uploads UploadService, logger *logger.Logger) ArtworkService {
	return &artworkService{
		artworkRepository: artworkRepository,
		uploads:           uploads,
		logger:            logger,
	}
}

func (s *artworkService) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	artworks, err := s.artworkRepository.ListArtworks(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("artwork listing failed")
		return nil, fmt.Errorf("artwork listing failed: %w", err)
	}

	return artworks, nil
}

func (s *artworkService) GetArtwork(ctx context.Context, id int64) (models.Artwork, error) {
	artwork, err := s.artworkRepository.GetArtworkByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("artwork lookup failed")
		return models.Artwork{}, fmt.Errorf("artwork lookup failed: %w", err)
	}

	return artwork, nil
}

// CreateArtwork persists a new catalogue entry from the submitted form.
//
// Requires title, artist, and price. An uploaded file or a base64 data
// URI in imageUrl is stored first and its public URL recorded on the
// artwork. Status defaults to "available".
func (s *artworkService) CreateArtwork(ctx context.Context, f *form.Form) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	if missing := f.Missing("title", "artist", "price"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("artwork form is incomplete")
		return models.Artwork{}, NewValidationError(missing)
	}

	if err := s.resolveImage(ctx, f); err != nil {
		return models.Artwork{}, err
	}

	price, err := parseFloatField(f, "price")
	if err != nil {
		return models.Artwork{}, err
	}
	year, err := parseIntField(f, "year")
	if err != nil {
		return models.Artwork{}, err
	}

	status := f.Get("status")
	if status == "" {
		status = models.ArtworkStatusAvailable
	}

	created, err := s.artworkRepository.CreateArtwork(ctx, models.Artwork{
		Title:       f.Get("title"),
		Artist:      f.Get("artist"),
		Description: f.Get("description"),
		Price:       price,
		ImageURL:    f.Get("imageUrl"),
		Medium:      f.Get("medium"),
		Dimensions:  f.Get("dimensions"),
		Year:        year,
		Status:      status,
	})
	if err != nil {
		log.Err(err).Str("title", f.Get("title")).Msg("artwork creation failed")
		return models.Artwork{}, fmt.Errorf("artwork creation failed: %w", err)
	}

	return created, nil
}

// UpdateArtwork overlays the submitted fields onto the stored record and
// persists the result. Fields absent from the form keep their stored
// values.
func (s *artworkService) UpdateArtwork(ctx context.Context, id int64, f *form.Form) (models.Artwork, error) {
	log := logger.FromContext(ctx)

	artwork, err := s.artworkRepository.GetArtworkByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("artwork lookup failed")
		return models.Artwork{}, fmt.Errorf("artwork lookup failed: %w", err)
	}

	if err := s.resolveImage(ctx, f); err != nil {
		return models.Artwork{}, err
	}

	setString(f, "title", &artwork.Title)
	setString(f, "artist", &artwork.Artist)
	setString(f, "description", &artwork.Description)
	setString(f, "imageUrl", &artwork.ImageURL)
	setString(f, "medium", &artwork.Medium)
	setString(f, "dimensions", &artwork.Dimensions)
	setString(f, "status", &artwork.Status)
	if err := setFloat(f, "price", &artwork.Price); err != nil {
		return models.Artwork{}, err
	}
	if err := setInt(f, "year", &artwork.Year); err != nil {
		return models.Artwork{}, err
	}

	updated, err := s.artworkRepository.UpdateArtwork(ctx, artwork)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("artwork update failed")
		return models.Artwork{}, fmt.Errorf("artwork update failed: %w", err)
	}

	return updated, nil
}

func (s *artworkService) DeleteArtwork(ctx context.Context, id int64) error {
	if err := s.artworkRepository.DeleteArtwork(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("artwork deletion failed")
		return fmt.Errorf("artwork deletion failed: %w", err)
	}

	return nil
}

// resolveImage persists an image payload found in the form and rewrites
// the imageUrl field to the stored public URL. An uploaded file wins over
// a data URI; the in-memory file buffer is dropped once written.
func (s *artworkService) resolveImage(ctx context.Context, f *form.Form) error {
	switch {
	case f.File != nil:
		url, err := s.uploads.SaveUpload(ctx, f.File.Filename, f.File.Data)
		if err != nil {
			return err
		}
		f.Values["imageUrl"] = url
		f.File = nil
	case strings.HasPrefix(f.Get("imageUrl"), "data:"):
		url, err := s.uploads.SaveDataURI(ctx, f.Get("imageUrl"))
		if err != nil {
			return err
		}
		f.Values["imageUrl"] = url
	}

	return nil
}

// parseFloatField parses the named field as a float64, returning 0 when
// the field is absent or empty.
func parseFloatField(f *form.Form, name string) (float64, error) {
	raw := f.Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, name)
	}

	return v, nil
}

// parseIntField parses the named field as an int, returning 0 when the
// field is absent or empty.
func parseIntField(f *form.Form, name string) (int, error) {
	raw := f.Get(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, name)
	}

	return v, nil
}

// setString overwrites dst when the named field is present in the form.
func setString(f *form.Form, name string, dst *string) {
	if v, ok := f.Values[name]; ok {
		*dst = v
	}
}

// setFloat overwrites dst when the named field is present and non-empty.
func setFloat(f *form.Form, name string, dst *float64) error {
	if v, ok := f.Values[name]; ok && v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidNumber, name)
		}
		*dst = parsed
	}

	return nil
}

// setInt overwrites dst when the named field is present and non-empty.
func setInt(f *form.Form, name string, dst *int) error {
	if v, ok := f.Values[name]; ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidNumber, name)
		}
		*dst = parsed
	}

	return nil
}
