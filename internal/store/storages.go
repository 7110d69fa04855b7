package store

import (
	"github.com/Alianda23/art-exhibit-hub-72/internal/logger"
)

// Storages bundles every repository behind one constructor so the service
// layer receives a single dependency.
type Storages struct {
	Users       UserRepository
	Artworks    ArtworkRepository
	Exhibitions ExhibitionRepository
	Messages    MessageRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Users:       NewUserRepository(db, logger),
		Artworks:    NewArtworkRepository(db, logger),
		Exhibitions: NewExhibitionRepository(db, logger),
		Messages:    NewMessageRepository(db, logger),
	}
}
