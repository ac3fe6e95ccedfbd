package user

import (
	"context"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Repository interface {
	// FindByUsername returns httperr NotFound when no user has that exact
	// username.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
