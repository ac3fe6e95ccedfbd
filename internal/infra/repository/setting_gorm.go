package repository

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/studio-booking/internal/domain/setting"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

type SettingGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSettingGormRepository(db *gorm.DB) *SettingGormRepository {
	return &SettingGormRepository{db: db, now: time.Now}
}

var upsertSetting = clause.OnConflict{
	Columns:   []clause.Column{{Name: "key"}},
	DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
}

func (r *SettingGormRepository) List(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	if err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingGormRepository) Upsert(ctx context.Context, key, value string) error {
	s := models.Setting{Key: key, Value: value, UpdatedAt: r.now()}
	return r.db.WithContext(ctx).Clauses(upsertSetting).Create(&s).Error
}

func (r *SettingGormRepository) UpsertMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := r.now()
	rows := make([]models.Setting, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, models.Setting{Key: k, Value: values[k], UpdatedAt: now})
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(upsertSetting).Create(&rows).Error
	})
}

var _ setting.Repository = (*SettingGormRepository)(nil)
