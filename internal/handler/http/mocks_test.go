package http

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// Hand-rolled function-field mocks for the service interfaces. A nil
// function field returns zero values.

type mockAuthService struct {
	registerFn    func(ctx context.Context, f *form.Form) (models.User, error)
	loginFn       func(ctx context.Context, f *form.Form) (models.User, error)
	adminLoginFn  func(ctx context.Context, f *form.Form) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, raw string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, f *form.Form) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, f)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, f *form.Form) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, f)
	}
	return models.User{}, nil
}

func (m *mockAuthService) AdminLogin(ctx context.Context, f *form.Form) (models.User, error) {
	if m.adminLoginFn != nil {
		return m.adminLoginFn(ctx, f)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "stub-token", UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, raw string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, raw)
	}
	return models.Token{SignedString: raw}, nil
}

type mockArtworkService struct {
	listFn   func(ctx context.Context) ([]models.Artwork, error)
	getFn    func(ctx context.Context, id int64) (models.Artwork, error)
	createFn func(ctx context.Context, f *form.Form) (models.Artwork, error)
	updateFn func(ctx context.Context, id int64, f *form.Form) (models.Artwork, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockArtworkService) ListArtworks(ctx context.Context) ([]models.Artwork, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockArtworkService) GetArtwork(ctx context.Context, id int64) (models.Artwork, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Artwork{}, nil
}

func (m *mockArtworkService) CreateArtwork(ctx context.Context, f *form.Form) (models.Artwork, error) {
	if m.createFn != nil {
		return m.createFn(ctx, f)
	}
	return models.Artwork{}, nil
}

func (m *mockArtworkService) UpdateArtwork(ctx context.Context, id int64, f *form.Form) (models.Artwork, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, f)
	}
	return models.Artwork{}, nil
}

func (m *mockArtworkService) DeleteArtwork(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockExhibitionService struct {
	listFn   func(ctx context.Context) ([]models.Exhibition, error)
	getFn    func(ctx context.Context, id int64) (models.Exhibition, error)
	createFn func(ctx context.Context, f *form.Form) (models.Exhibition, error)
	updateFn func(ctx context.Context, id int64, f *form.Form) (models.Exhibition, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockExhibitionService) ListExhibitions(ctx context.Context) ([]models.Exhibition, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockExhibitionService) GetExhibition(ctx context.Context, id int64) (models.Exhibition, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Exhibition{}, nil
}

func (m *mockExhibitionService) CreateExhibition(ctx context.Context, f *form.Form) (models.Exhibition, error) {
	if m.createFn != nil {
		return m.createFn(ctx, f)
	}
	return models.Exhibition{}, nil
}

func (m *mockExhibitionService) UpdateExhibition(ctx context.Context, id int64, f *form.Form) (models.Exhibition, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, f)
	}
	return models.Exhibition{}, nil
}

func (m *mockExhibitionService) DeleteExhibition(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockContactService struct {
	submitFn       func(ctx context.Context, f *form.Form) (models.ContactMessage, error)
	listFn         func(ctx context.Context) ([]models.ContactMessage, error)
	updateStatusFn func(ctx context.Context, f *form.Form) error
}

func (m *mockContactService) SubmitMessage(ctx context.Context, f *form.Form) (models.ContactMessage, error) {
	if m.submitFn != nil {
		return m.submitFn(ctx, f)
	}
	return models.ContactMessage{}, nil
}

func (m *mockContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockContactService) UpdateMessageStatus(ctx context.Context, f *form.Form) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, f)
	}
	return nil
}

type mockPaymentService struct {
	initiateFn func(ctx context.Context, f *form.Form) (models.PaymentResponse, error)
}

func (m *mockPaymentService) InitiatePayment(ctx context.Context, f *form.Form) (models.PaymentResponse, error) {
	if m.initiateFn != nil {
		return m.initiateFn(ctx, f)
	}
	return models.PaymentResponse{}, nil
}
