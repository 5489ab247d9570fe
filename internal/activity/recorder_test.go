package activity

import (
	"context"
	"errors"
	"testing"

	"ripple/internal/models"
	"ripple/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupActivityDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Activity{}); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func TestRecordAppends(t *testing.T) {
	db := setupActivityDB(t)
	repo := repository.NewActivityRepository(db)
	rec := NewRecorder(repo)

	rec.Record(context.Background(), models.ActivitySignup, Ref(1), nil, nil, "alice signed up")
	rec.Record(context.Background(), models.ActivityFollow, Ref(1), Ref(2), nil, "alice followed bob")

	latest, err := repo.Latest(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	// Newest first.
	assert.Equal(t, models.ActivityFollow, latest[0].Type)
	assert.Equal(t, models.ActivitySignup, latest[1].Type)
	require.NotNil(t, latest[0].TargetUserID)
	assert.Equal(t, uint(2), *latest[0].TargetUserID)
}

type failingActivityRepo struct{}

func (failingActivityRepo) Create(context.Context, *models.Activity) error {
	return errors.New("store unavailable")
}

func (failingActivityRepo) Latest(context.Context, int) ([]models.Activity, error) {
	return nil, nil
}

func TestRecordSwallowsFailures(t *testing.T) {
	rec := NewRecorder(failingActivityRepo{})

	// Must not panic or surface the error in any way.
	rec.Record(context.Background(), models.ActivityPost, Ref(1), nil, Ref(3), "bob made a post")
}

func TestLatestLimit(t *testing.T) {
	db := setupActivityDB(t)
	repo := repository.NewActivityRepository(db)
	rec := NewRecorder(repo)

	for i := 0; i < 60; i++ {
		rec.Record(context.Background(), models.ActivityPost, Ref(1), nil, nil, "post")
	}

	latest, err := repo.Latest(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, latest, 50)
}
