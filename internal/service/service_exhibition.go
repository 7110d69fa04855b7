package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// exhibitionService is the concrete implementation of ExhibitionService.
type exhibitionService struct {
	exhibitionRepository store.ExhibitionRepository
	uploads              UploadService
	logger               *logger.Logger
}

// NewExhibitionService constructs an ExhibitionService wired to the given
// repository.
func NewExhibitionService(exhibitionRepository store.ExhibitionRepository, uploads UploadService, logger *logger.Logger) ExhibitionService {
	return &exhibitionService{
		exhibitionRepository: exhibitionRepository,
		uploads:              uploads,
		logger:               logger,
	}
}

func (s *exhibitionService) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	exhibitions, err := s.exhibitionRepository.ListExhibitions(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("exhibition listing failed")
		return nil, fmt.Errorf("exhibition listing failed: %w", err)
	}

	return exhibitions, nil
}

func (s *exhibitionService) GetExhibition(ctx context.Context, id int64) (models.Exhibition, error) {
	exhibition, err := s.exhibitionRepository.GetExhibitionByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("exhibition lookup failed")
		return models.Exhibition{}, fmt.Errorf("exhibition lookup failed: %w", err)
	}

	return exhibition, nil
}

// CreateExhibition persists a new exhibition from the submitted form.
//
// Requires title, location, startDate, and endDate. AvailableSlots starts
// equal to totalSlots unless supplied explicitly; status defaults to
// "upcoming".
func (s *exhibitionService) CreateExhibition(ctx context.Context, f *form.Form) (models.Exhibition, error) {
	log := logger.FromContext(ctx)

	if missing := f.Missing("title", "location", "startDate", "endDate"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("exhibition form is incomplete")
		return models.Exhibition{}, NewValidationError(missing)
	}

	if err := s.resolveImage(ctx, f); err != nil {
		return models.Exhibition{}, err
	}

	ticketPrice, err := parseFloatField(f, "ticketPrice")
	if err != nil {
		return models.Exhibition{}, err
	}
	totalSlots, err := parseIntField(f, "totalSlots")
	if err != nil {
		return models.Exhibition{}, err
	}
	availableSlots := totalSlots
	if f.Get("availableSlots") != "" {
		if availableSlots, err = parseIntField(f, "availableSlots"); err != nil {
			return models.Exhibition{}, err
		}
	}

	status := f.Get("status")
	if status == "" {
		status = models.ExhibitionStatusUpcoming
	}

	created, err := s.exhibitionRepository.CreateExhibition(ctx, models.Exhibition{
		Title:          f.Get("title"),
		Description:    f.Get("description"),
		Location:       f.Get("location"),
		StartDate:      f.Get("startDate"),
		EndDate:        f.Get("endDate"),
		TicketPrice:    ticketPrice,
		TotalSlots:     totalSlots,
		AvailableSlots: availableSlots,
		ImageURL:       f.Get("imageUrl"),
		Status:         status,
	})
	if err != nil {
		log.Err(err).Str("title", f.Get("title")).Msg("exhibition creation failed")
		return models.Exhibition{}, fmt.Errorf("exhibition creation failed: %w", err)
	}

	return created, nil
}

// UpdateExhibition overlays the submitted fields onto the stored record
// and persists the result. Fields absent from the form keep their stored
// values.
func (s *exhibitionService) UpdateExhibition(ctx context.Context, id int64, f *form.Form) (models.Exhibition, error) {
	log := logger.FromContext(ctx)

	exhibition, err := s.exhibitionRepository.GetExhibitionByID(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("exhibition lookup failed")
		return models.Exhibition{}, fmt.Errorf("exhibition lookup failed: %w", err)
	}

	if err := s.resolveImage(ctx, f); err != nil {
		return models.Exhibition{}, err
	}

	setString(f, "title", &exhibition.Title)
	setString(f, "description", &exhibition.Description)
	setString(f, "location", &exhibition.Location)
	setString(f, "startDate", &exhibition.StartDate)
	setString(f, "endDate", &exhibition.EndDate)
	setString(f, "imageUrl", &exhibition.ImageURL)
	setString(f, "status", &exhibition.Status)
	if err := setFloat(f, "ticketPrice", &exhibition.TicketPrice); err != nil {
		return models.Exhibition{}, err
	}
	if err := setInt(f, "totalSlots", &exhibition.TotalSlots); err != nil {
		return models.Exhibition{}, err
	}
	if err := setInt(f, "availableSlots", &exhibition.AvailableSlots); err != nil {
		return models.Exhibition{}, err
	}

	updated, err := s.exhibitionRepository.UpdateExhibition(ctx, exhibition)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("exhibition update failed")
		return models.Exhibition{}, fmt.Errorf("exhibition update failed: %w", err)
	}

	return updated, nil
}

func (s *exhibitionService) DeleteExhibition(ctx context.Context, id int64) error {
	if err := s.exhibitionRepository.DeleteExhibition(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("exhibition deletion failed")
		return fmt.Errorf("exhibition deletion failed: %w", err)
	}

	return nil
}

func (s *exhibitionService) resolveImage(ctx context.Context, f *form.Form) error {
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
