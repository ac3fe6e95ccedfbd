package setting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	infraRepo "github.com/BruksfildServices01/studio-booking/internal/infra/repository"
	"github.com/BruksfildServices01/studio-booking/internal/testutil"
)

func newUseCases(t *testing.T) (*ListSettings, *UpsertSettings) {
	t.Helper()
	repo := infraRepo.NewSettingGormRepository(testutil.NewDB(t, testutil.Config(t)))
	return NewListSettings(repo), NewUpsertSettings(repo, nil)
}

func TestUpsertOneRequiresKey(t *testing.T) {
	list, upsert := newUseCases(t)
	ctx := context.Background()

	for _, key := range []string{"", "  "} {
		err := upsert.One(ctx, 1, key, "x")
		assert.True(t, httperr.IsBusiness(err, "missing_key"), "key %q", key)
	}

	require.NoError(t, upsert.One(ctx, 1, " business_name ", "Studio"))

	got, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"business_name": "Studio"}, got)
}

func TestUpsertManyIsAllOrNothing(t *testing.T) {
	list, upsert := newUseCases(t)
	ctx := context.Background()

	require.NoError(t, upsert.One(ctx, 1, "business_name", "before"))

	err := upsert.Many(ctx, 1, map[string]string{
		"":              "x",
		"business_name": "after",
	})
	assert.True(t, httperr.IsBusiness(err, "missing_key"))
	assert.Equal(t, 400, httperr.Status(err))

	got, err := list.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"business_name": "before"}, got)

	require.NoError(t, upsert.Many(ctx, 1, map[string]string{
		"business_name": "after",
		"contact_phone": "050",
	}))

	got, err = list.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"business_name": "after", "contact_phone": "050"}, got)
}
