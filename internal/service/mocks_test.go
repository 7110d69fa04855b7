package service

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// Hand-rolled function-field mocks for the store interfaces. A nil
// function field means "not expected to be called" and returns zero
// values.

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

type mockArtworkRepository struct {
	listFn   func(ctx context.Context) ([]models.Artwork, error)
	getFn    func(ctx context.Context, id int64) (models.Artwork, error)
	createFn func(ctx context.Context, artwork models.Artwork) (models.Artwork, error)
	updateFn func(ctx context.Context, artwork models.Artwork) (models.Artwork, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockArtworkRepository) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockArtworkRepository) GetArtworkByID(ctx context.Context, id int64) (models.Artwork, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Artwork{}, nil
}

func (m *mockArtworkRepository) CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	if m.createFn != nil {
		return m.createFn(ctx, artwork)
	}
	return artwork, nil
}

func (m *mockArtworkRepository) UpdateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, artwork)
	}
	return artwork, nil
}

func (m *mockArtworkRepository) DeleteArtwork(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockMessageRepository struct {
	createFn       func(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	listFn         func(ctx context.Context) ([]models.ContactMessage, error)
	updateStatusFn func(ctx context.Context, id int64, status string) error
}

func (m *mockMessageRepository) CreateMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error) {
	if m.createFn != nil {
		return m.createFn(ctx, message)
	}
	return message, nil
}

func (m *mockMessageRepository) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockMessageRepository) UpdateMessageStatus(ctx context.Context, id int64, status string) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

type mockUploadService struct {
	saveUploadFn  func(ctx context.Context, filename string, data []byte) (string, error)
	saveDataURIFn func(ctx context.Context, uri string) (string, error)
}

func (m *mockUploadService) SaveUpload(ctx context.Context, filename string, data []byte) (string, error) {
	if m.saveUploadFn != nil {
		return m.saveUploadFn(ctx, filename, data)
	}
	return "/static/uploads/mock.jpg", nil
}

func (m *mockUploadService) SaveDataURI(ctx context.Context, uri string) (string, error) {
	if m.saveDataURIFn != nil {
		return m.saveDataURIFn(ctx, uri)
	}
	return "/static/uploads/mock.jpg", nil
}

type mockPaymentGateway struct {
	stkPushFn func(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error)
}

func (m *mockPaymentGateway) InitiateSTKPush(ctx context.Context, req models.PaymentRequest) (models.PaymentResponse, error) {
	if m.stkPushFn != nil {
		return m.stkPushFn(ctx, req)
	}
	return models.PaymentResponse{}, nil
}
