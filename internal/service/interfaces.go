package service

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-72/internal/form"
	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// AuthService covers account registration, credential checks, and the
// token lifecycle.
type AuthService interface {
	Register(ctx context.Context, f *form.Form) (models.User, error)
	Login(ctx context.Context, f *form.Form) (models.User, error)
	AdminLogin(ctx context.Context, f *form.Form) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, raw string) (models.Token, error)
}

// ArtworkService is the catalogue CRUD surface consumed by the HTTP layer.
type ArtworkService interface {
	ListArtworks(ctx context.Context) ([]models.Artwork, error)
	GetArtwork(ctx context.Context, id int64) (models.Artwork, error)
	CreateArtwork(ctx context.Context, f *form.Form) (models.Artwork, error)
	UpdateArtwork(ctx context.Context, id int64, f *form.Form) (models.Artwork, error)
	DeleteArtwork(ctx context.Context, id int64) error
}

// ExhibitionService is the exhibitions CRUD surface consumed by the HTTP
// layer.
type ExhibitionService interface {
	ListExhibitions(ctx context.Context) ([]models.Exhibition, error)
	GetExhibition(ctx context.Context, id int64) (models.Exhibition, error)
	CreateExhibition(ctx context.Context, f *form.Form) (models.Exhibition, error)
	UpdateExhibition(ctx context.Context, id int64, f *form.Form) (models.Exhibition, error)
	DeleteExhibition(ctx context.Context, id int64) error
}

// ContactService handles the public contact form and the admin message
// inbox.
type ContactService interface {
	SubmitMessage(ctx context.Context, f *form.Form) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, f *form.Form) error
}

// UploadService persists image payloads to the static uploads directory
// and returns their public URL.
type UploadService interface {
	SaveUpload(ctx context.Context, filename string, data []byte) (string, error)
	SaveDataURI(ctx context.Context, uri string) (string, error)
}

// PaymentService starts mobile-money payments for authenticated users.
type PaymentService interface {
	InitiatePayment(ctx context.Context, f *form.Form) (models.PaymentResponse, error)
}
