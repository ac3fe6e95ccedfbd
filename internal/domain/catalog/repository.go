package catalog

import (
	"context"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Repository interface {
	ListActive(ctx context.Context) ([]models.Service, error)
}
