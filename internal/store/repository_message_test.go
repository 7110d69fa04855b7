package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

func TestCreateMessage(t *testing.T) {
	testDB, mock, db := newTestDB(t)
	defer db.Close()

	message := models.ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "When does the new exhibition open?",
		Status:  models.MessageStatusNew,
	}

	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs(message.Name, message.Email, message.Message, message.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))

	repo := NewMessageRepository(testDB, logger.Nop())
	created, err := repo.CreateMessage(context.Background(), message)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected ID=3, got %d", created.ID)
	}
}

func TestListMessages(t *testing.T) {
	testDB, mock, db := newTestDB(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "name", "email", "message", "status", "created_at"}).
		AddRow(1, "A", "a@example.com", "hello", models.MessageStatusNew, time.Now()).
		AddRow(2, "B", "b@example.com", "hi", models.MessageStatusRead, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM contact_messages").WillReturnRows(rows)

	repo := NewMessageRepository(testDB, logger.Nop())
	messages, err := repo.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
}

func TestUpdateMessageStatus_NotFound(t *testing.T) {
	testDB, mock, db := newTestDB(t)
	defer db.Close()

	mock.ExpectExec("UPDATE contact_messages").
		WithArgs(models.MessageStatusRead, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewMessageRepository(testDB, logger.Nop())
	err := repo.UpdateMessageStatus(context.Background(), 9, models.MessageStatusRead)
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
