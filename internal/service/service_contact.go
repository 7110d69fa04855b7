package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// contactService is the concrete implementation of ContactService.
type contactService struct {
	messageRepository store.MessageRepository
	logger            *logger.Logger
}

// NewContactService constructs a ContactService wired to the given
// MessageRepository.
func NewContactService(messageRepository store.MessageRepository, logger *logger.Logger) ContactService {
	return &contactService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// SubmitMessage stores a message from the public contact form.
//
// Requires name, email, and message. New messages start in the "new"
// status.
func (s *contactService) SubmitMessage(ctx context.Context, f *form.Form) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	if missing := f.Missing("name", "email", "message"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("contact form is incomplete")
		return models.ContactMessage{}, NewValidationError(missing)
	}

	created, err := s.messageRepository.CreateMessage(ctx, models.ContactMessage{
		Name:    f.Get("name"),
		Email:   f.Get("email"),
		Message: f.Get("message"),
		Status:  models.MessageStatusNew,
	})
	if err != nil {
		log.Err(err).Str("email", f.Get("email")).Msg("contact message creation failed")
		return models.ContactMessage{}, fmt.Errorf("contact message creation failed: %w", err)
	}

	return created, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	messages, err := s.messageRepository.ListMessages(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("message listing failed")
		return nil, fmt.Errorf("message listing failed: %w", err)
	}

	return messages, nil
}

// UpdateMessageStatus moves a message to a new status.
//
// Requires message_id and status form fields; status must be one of new,
// read, or replied.
func (s *contactService) UpdateMessageStatus(ctx context.Context, f *form.Form) error {
	log := logger.FromContext(ctx)

	if missing := f.Missing("message_id", "status"); len(missing) > 0 {
		log.Error().Strs("missing", missing).Msg("status update form is incomplete")
		return NewValidationError(missing)
	}

	id, err := strconv.ParseInt(f.Get("message_id"), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: message_id", ErrInvalidNumber)
	}

	status := f.Get("status")
	switch status {
	case models.MessageStatusNew, models.MessageStatusRead, models.MessageStatusReplied:
	default:
		log.Error().Str("status", status).Msg("unknown message status")
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	if err := s.messageRepository.UpdateMessageStatus(ctx, id, status); err != nil {
		log.Err(err).Int64("id", id).Str("status", status).Msg("message status update failed")
		return fmt.Errorf("message status update failed: %w", err)
	}

	return nil
}
