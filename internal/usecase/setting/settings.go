package setting

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	domain "github.com/BruksfildServices01/studio-booking/internal/domain/setting"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
)

// ======================================================
// LIST
// ======================================================

type ListSettings struct {
	repo domain.Repository
}

func NewListSettings(repo domain.Repository) *ListSettings {
	return &ListSettings{repo: repo}
}

// Execute returns all settings as a key to value map.
func (uc *ListSettings) Execute(ctx context.Context) (map[string]string, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

// ======================================================
// UPSERT
// ======================================================

type UpsertSettings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpsertSettings(repo domain.Repository, audit *audit.Dispatcher) *UpsertSettings {
	return &UpsertSettings{repo: repo, audit: audit}
}

// One writes a single key.
func (uc *UpsertSettings) One(ctx context.Context, adminID uint, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return httperr.ErrBusiness("missing_key")
	}

	if err := uc.repo.Upsert(ctx, key, value); err != nil {
		return err
	}

	uc.dispatch(adminID, []string{key})
	return nil
}

// Many writes every pair or none of them.
func (uc *UpsertSettings) Many(ctx context.Context, adminID uint, values map[string]string) error {
	clean := make(map[string]string, len(values))
	keys := make([]string, 0, len(values))
	for k, v := range values {
		k = strings.TrimSpace(k)
		if k == "" {
			return httperr.ErrBusiness("missing_key")
		}
		clean[k] = v
		keys = append(keys, k)
	}

	if err := uc.repo.UpsertMany(ctx, clean); err != nil {
		return err
	}

	if len(keys) > 0 {
		sort.Strings(keys)
		uc.dispatch(adminID, keys)
	}
	return nil
}

func (uc *UpsertSettings) dispatch(adminID uint, keys []string) {
	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   audit.ActionSettingUpdated,
		Entity:   "setting",
		Metadata: map[string]any{"keys": keys},
	})
}
