package store

import (
	"context"
	"fmt"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// messageRepository is the SQL-backed implementation of
// [MessageRepository].
type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMessage persists a contact-form submission and returns it with
// server-assigned fields populated.
func (r *messageRepository) CreateMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	row := r.db.builder.
		Insert("contact_messages").
		Columns("name", "email", "message", "status").
		Values(message.Name, message.Email, message.Message, message.Status).
		Suffix("RETURNING id, created_at").
		RunWith(r.db.DB).
		QueryRowContext(ctx)

	if err := row.Scan(&message.ID, &message.CreatedAt); err != nil {
		log.Err(err).Str("email", message.Email).Msg("error creating contact message")
		return models.ContactMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return message, nil
}

// ListMessages returns every contact message, newest first.
func (r *messageRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.builder.
		Select("id", "name", "email", "message", "status", "created_at").
		From("contact_messages").
		OrderBy("created_at DESC").
		RunWith(r.db.DB).
		QueryContext(ctx)
	if err != nil {
		log.Err(err).Msg("error listing contact messages")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	messages := make([]models.ContactMessage, 0)
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.CreatedAt); err != nil {
			log.Err(err).Msg("error scanning contact message row")
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return messages, nil
}

// UpdateMessageStatus sets the status of one message. An id matching no
// record maps to [ErrMessageNotFound].
func (r *messageRepository) UpdateMessageStatus(ctx context.Context, id int64, status string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.builder.
		Update("contact_messages").
		Set("status", status).
		Where("id = ?", id).
		RunWith(r.db.DB).
		ExecContext(ctx)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating message status")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}
