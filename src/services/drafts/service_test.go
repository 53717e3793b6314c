package drafts

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	DB "Backend-ECW-B2S/src/database"
	"Backend-ECW-B2S/src/models"
)

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	DB.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr
}

func snapshot() models.Submission {
	return models.Submission{
		Directorate:   "Aden",
		VolunteerName: "Huda",
		Activities: []models.Activity{
			{ActivityType: "Session", ActivityDate: "2025-08-20", GirlsResident: 3},
		},
	}
}

func TestSaveAndGet(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	sub := snapshot()
	key, err := Save(ctx, &sub)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "draft_"))
	assert.Equal(t, key, sub.DraftID)
	assert.NotEmpty(t, sub.SavedAt)

	loaded, err := Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Aden", loaded.Directorate)
	assert.Equal(t, key, loaded.DraftID)
	require.Len(t, loaded.Activities, 1)
	assert.Equal(t, models.Count(3), loaded.Activities[0].GirlsResident)
}

func TestSaveWithBoundKeyOverwrites(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	sub := snapshot()
	key, err := Save(ctx, &sub)
	require.NoError(t, err)

	sub.Directorate = "Taiz"
	again, err := Save(ctx, &sub)
	require.NoError(t, err)

	// same key, one stored draft, newest content wins
	assert.Equal(t, key, again)
	assert.Len(t, mr.Keys(), 1)

	loaded, err := Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Taiz", loaded.Directorate)
}

func TestSaveWithoutBoundKeyGetsFreshKey(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	first := snapshot()
	k1, err := Save(ctx, &first)
	require.NoError(t, err)

	// a new snapshot in the same millisecond still gets its own key
	second := snapshot()
	k2, err := Save(ctx, &second)
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)
}

func TestGetMissing(t *testing.T) {
	setupRedis(t)

	_, err := Get(context.Background(), "draft_0")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestList(t *testing.T) {
	setupRedis(t)
	ctx := context.Background()

	for range [3]struct{}{} {
		sub := snapshot()
		_, err := Save(ctx, &sub)
		require.NoError(t, err)
	}

	list, err := List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	// oldest first; the key embeds the save time
	assert.Less(t, list[0].Key, list[1].Key)
	assert.Less(t, list[1].Key, list[2].Key)
	assert.Equal(t, "Aden", list[0].Submission.Directorate)
}

func TestListEmpty(t *testing.T) {
	setupRedis(t)

	list, err := List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDelete(t *testing.T) {
	mr := setupRedis(t)
	ctx := context.Background()

	keep := snapshot()
	_, err := Save(ctx, &keep)
	require.NoError(t, err)

	gone := snapshot()
	key, err := Save(ctx, &gone)
	require.NoError(t, err)

	require.NoError(t, Delete(ctx, key))
	assert.Len(t, mr.Keys(), 1)

	assert.ErrorIs(t, Delete(ctx, key), ErrDraftNotFound)
}
