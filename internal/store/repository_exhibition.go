package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

var exhibitionColumns = []string{
	"id", "title", "description", "location", "start_date", "end_date",
	"ticket_price", "total_slots", "available_slots", "image_url", "status", "created_at",
}

// exhibitionRepository is the SQL-backed implementation of
// [ExhibitionRepository].
type exhibitionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewExhibitionRepository constructs an [ExhibitionRepository] backed by the
// provided database connection and logger.
func NewExhibitionRepository(db *DB, logger *logger.Logger) ExhibitionRepository {
	logger.Debug().Msg("creating exhibition repository")
	return &exhibitionRepository{
		db:     db,
		logger: logger,
	}
}

func scanExhibition(row interface{ Scan(...any) error }) (models.Exhibition, error) {
	var e models.Exhibition
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartDate,
		&e.EndDate, &e.TicketPrice, &e.TotalSlots, &e.AvailableSlots,
		&e.ImageURL, &e.Status, &e.CreatedAt)
	return e, err
}

// ListExhibitions returns every exhibition, soonest start date first.
func (r *exhibitionRepository) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.builder.
		Select(exhibitionColumns...).
		From("exhibitions").
		OrderBy("start_date ASC").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		log.Err(err).Msg("error listing exhibitions")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	exhibitions := make([]models.Exhibition, 0)
	for rows.Next() {
		e, err := scanExhibition(rows)
		if err != nil {
			log.Err(err).Msg("error scanning exhibition row")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		exhibitions = append(exhibitions, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exhibitions, nil
}

// GetExhibitionByID returns one exhibition or [ErrExhibitionNotFound].
func (r *exhibitionRepository) GetExhibitionByID(ctx context.Context, id int64) (models.Exhibition, error) {
	log := logger.FromContext(ctx)

	e, err := scanExhibition(r.db.builder.
		Select(exhibitionColumns...).
		From("exhibitions").
		Where("id = ?", id).
		RunWith(r.db.DB).
		QueryRowContext(ctx))

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Exhibition{}, ErrExhibitionNotFound
	case err != nil:
		log.Err(err).Int64("id", id).Msg("error finding exhibition")
		return models.Exhibition{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return e, nil
}

// CreateExhibition inserts a new exhibition and returns it with
// server-assigned fields populated.
func (r *exhibitionRepository) CreateExhibition(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error) {
	log := logger.FromContext(ctx)

	row := r.db.builder.
		Insert("exhibitions").
		Columns("title", "description", "location", "start_date", "end_date",
			"ticket_price", "total_slots", "available_slots", "image_url", "status").
		Values(exhibition.Title, exhibition.Description, exhibition.Location,
			exhibition.StartDate, exhibition.EndDate, exhibition.TicketPrice,
			exhibition.TotalSlots, exhibition.AvailableSlots, exhibition.ImageURL,
			exhibition.Status).
		Suffix("RETURNING id, created_at").
		RunWith(r.db.DB).
		QueryRowContext(ctx)

	if err := row.Scan(&exhibition.ID, &exhibition.CreatedAt); err != nil {
		log.Err(err).Str("title", exhibition.Title).Msg("error creating exhibition")
		return models.Exhibition{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exhibition, nil
}

// UpdateExhibition overwrites every mutable column of the identified
// exhibition. An id matching no record maps to [ErrExhibitionNotFound].
func (r *exhibitionRepository) UpdateExhibition(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.builder.
		Update("exhibitions").
		Set("title", exhibition.Title).
		Set("description", exhibition.Description).
		Set("location", exhibition.Location).
		Set("start_date", exhibition.StartDate).
		Set("end_date", exhibition.EndDate).
		Set("ticket_price", exhibition.TicketPrice).
		Set("total_slots", exhibition.TotalSlots).
		Set("available_slots", exhibition.AvailableSlots).
		Set("image_url", exhibition.ImageURL).
		Set("status", exhibition.Status).
		Where("id = ?", exhibition.ID).
		RunWith(r.db.DB).
		ExecContext(ctx)
	if err != nil {
		log.Err(err).Int64("id", exhibition.ID).Msg("error updating exhibition")
		return models.Exhibition{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Exhibition{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return models.Exhibition{}, ErrExhibitionNotFound
	}

	return r.GetExhibitionByID(ctx, exhibition.ID)
}

// DeleteExhibition removes the identified exhibition or returns
// [ErrExhibitionNotFound].
func (r *exhibitionRepository) DeleteExhibition(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.builder.
		Delete("exhibitions").
		Where("id = ?", id).
		RunWith(r.db.DB).
		ExecContext(ctx)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting exhibition")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrExhibitionNotFound
	}

	return nil
}
