package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type ListActiveServices struct {
	repo domain.Repository
}

func NewListActiveServices(repo domain.Repository) *ListActiveServices {
	return &ListActiveServices{repo: repo}
}

func (uc *ListActiveServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListActive(ctx)
}
