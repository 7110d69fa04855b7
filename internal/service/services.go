// Package service implements the gallery API business logic on top of the
// store repositories: account auth and tokens, catalogue CRUD, contact
// messages, image uploads, and outbound payments.
package service

import (
	"github.com/Alianda23/art-exhibit-hub-72/internal/adapter"
	"github.com/Alianda23/art-exhibit-hub-72/internal/config"
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
	"github.com/Alianda23/art-exhibit-hub-72/internal/store"
	"github.com/Alianda23/art-exhibit-hub-72/internal/token"
)

type Services struct {
	AuthService       AuthService
	ArtworkService    ArtworkService
	ExhibitionService ExhibitionService
	ContactService    ContactService
	UploadService     UploadService
	PaymentService    PaymentService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, gateway adapter.PaymentGateway, logger *logger.Logger) *Services {
	codec := token.NewCodec(cfg.App.TokenSignKey, cfg.App.TokenIssuer)
	uploads := NewUploadService(cfg.Storage.Files, logger)

	return &Services{
		AuthService:       NewAuthService(storages.Users, codec, cfg.App, logger),
		ArtworkService:    NewArtworkService(storages.Artworks, uploads, logger),
		ExhibitionService: NewExhibitionService(storages.Exhibitions, uploads, logger),
		ContactService:    NewContactService(storages.Messages, logger),
		UploadService:     uploads,
		PaymentService:    NewPaymentService(gateway, logger),
	}
}
