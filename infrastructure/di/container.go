package di

import (
	"mynotes-backend/application/notes"
	"mynotes-backend/application/ports"
	"mynotes-backend/infrastructure/config"
	"mynotes-backend/interfaces/http/rest"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	NoteRepo    ports.NoteRepository
	BlobStore   ports.BlobStore
	NoteService *notes.Service
	Router      *rest.Router
}
