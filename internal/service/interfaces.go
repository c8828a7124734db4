package service

import (
	"context"

	"github.com/MKhiriev/press-pay/models"
)

// AuthService registers and authenticates users and issues session tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntryService manages clothes entries on behalf of an authenticated caller.
// Every method enforces that the caller is one of the two parties of the
// entries it touches.
type EntryService interface {
	CreateEntry(ctx context.Context, caller models.Identity, request models.CreateEntryRequest) (models.ClothesEntry, error)
	ListEntries(ctx context.Context, caller models.Identity) ([]models.ClothesEntry, error)
	UpdateEntry(ctx context.Context, caller models.Identity, id int64, request models.UpdateEntryRequest) (models.ClothesEntry, error)
	DeleteEntry(ctx context.Context, caller models.Identity, id int64) error
}

// AppInfoService reports static facts about the running server.
type AppInfoService interface {
	GetServiceName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
