package setting

import (
	"context"

	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type Repository interface {
	List(ctx context.Context) ([]models.Setting, error)

	// Upsert inserts key or overwrites its value and updated_at.
	Upsert(ctx context.Context, key, value string) error

	// UpsertMany writes all pairs in one transaction.
	UpsertMany(ctx context.Context, values map[string]string) error
}
