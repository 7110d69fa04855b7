package store

import (
	"context"

	"github.com/Alianda23/art-exhibit-hub-72/models"
)

// UserRepository persists and looks up account records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ArtworkRepository is the CRUD surface over the artworks table.
type ArtworkRepository interface {
	ListArtworks(ctx context.Context) ([]models.Artwork, error)
	GetArtworkByID(ctx context.Context, id int64) (models.Artwork, error)
	CreateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error)
	UpdateArtwork(ctx context.Context, artwork models.Artwork) (models.Artwork, error)
	DeleteArtwork(ctx context.Context, id int64) error
}

// ExhibitionRepository is the CRUD surface over the exhibitions table.
type ExhibitionRepository interface {
	ListExhibitions(ctx context.Context) ([]models.Exhibition, error)
	GetExhibitionByID(ctx context.Context, id int64) (models.Exhibition, error)
	CreateExhibition(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error)
	UpdateExhibition(ctx context.Context, exhibition models.Exhibition) (models.Exhibition, error)
	DeleteExhibition(ctx context.Context, id int64) error
}

// MessageRepository persists contact-form messages.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.ContactMessage) (models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id int64, status string) error
}
