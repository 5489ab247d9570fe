package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Post{}, &models.Like{},
		&models.Follow{}, &models.UserBlock{}, &models.Activity{},
	))
	return db
}

func mustRegister(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, repo.Register(context.Background(), user))
	return user
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	return appErr.Code
}

func TestRegisterOwnerElection(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)

	first := mustRegister(t, repo, "alice")
	assert.Equal(t, models.RoleOwner, first.Role)

	second := mustRegister(t, repo, "bob")
	assert.Equal(t, models.RoleUser, second.Role)
}

func TestRegisterDuplicate(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)
	mustRegister(t, repo, "alice")

	err := repo.Register(context.Background(), &models.User{
		Username: "alice",
		Email:    "other@example.com",
		Password: "hashed",
	})
	require.Error(t, err)
	assert.Equal(t, "ALREADY_EXISTS", appErrCode(t, err))
}

func TestGetByEmailMissingIsNil(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFollowEdges(t *testing.T) {
	db := setupRepoDB(t)
	users := NewUserRepository(db)
	social := NewSocialRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, users, "alice")
	bob := mustRegister(t, users, "bob")

	require.NoError(t, social.Follow(ctx, alice.ID, bob.ID))

	// One row, two views.
	following, err := social.FollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{bob.ID}, following)

	followers, err := social.FollowerIDs(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{alice.ID}, followers)

	err = social.Follow(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.Equal(t, "ALREADY_EXISTS", appErrCode(t, err))

	// Unfollow twice: both are fine.
	require.NoError(t, social.Unfollow(ctx, alice.ID, bob.ID))
	require.NoError(t, social.Unfollow(ctx, alice.ID, bob.ID))

	following, err = social.FollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestPostListFiltersBlockedAuthors(t *testing.T) {
	db := setupRepoDB(t)
	users := NewUserRepository(db)
	social := NewSocialRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, users, "alice")
	bob := mustRegister(t, users, "bob")
	carol := mustRegister(t, users, "carol")

	require.NoError(t, posts.Create(ctx, &models.Post{Content: "from bob", AuthorID: bob.ID}))
	require.NoError(t, posts.Create(ctx, &models.Post{Content: "from carol", AuthorID: carol.ID}))
	require.NoError(t, social.Block(ctx, alice.ID, bob.ID))

	visible, err := posts.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, carol.ID, visible[0].AuthorID)

	// The block is unilateral: bob still sees everything.
	visible, err = posts.List(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

func TestLikesCount(t *testing.T) {
	db := setupRepoDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, users, "alice")
	bob := mustRegister(t, users, "bob")

	post := &models.Post{Content: "likeable", AuthorID: alice.ID}
	require.NoError(t, posts.Create(ctx, post))

	require.NoError(t, posts.Like(ctx, bob.ID, post.ID))

	err := posts.Like(ctx, bob.ID, post.ID)
	require.Error(t, err)
	assert.Equal(t, "ALREADY_EXISTS", appErrCode(t, err))

	got, err := posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
	assert.Equal(t, "alice", got.Author.Username)

	require.NoError(t, posts.Unlike(ctx, bob.ID, post.ID))
	require.NoError(t, posts.Unlike(ctx, bob.ID, post.ID))

	got, err = posts.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)
}

func TestUserDeleteCascade(t *testing.T) {
	db := setupRepoDB(t)
	users := NewUserRepository(db)
	social := NewSocialRepository(db)
	posts := NewPostRepository(db)
	activities := NewActivityRepository(db)
	ctx := context.Background()

	alice := mustRegister(t, users, "alice")
	bob := mustRegister(t, users, "bob")

	post := &models.Post{Content: "doomed", AuthorID: bob.ID}
	require.NoError(t, posts.Create(ctx, post))
	require.NoError(t, posts.Like(ctx, alice.ID, post.ID))
	require.NoError(t, social.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, social.Block(ctx, bob.ID, alice.ID))
	require.NoError(t, activities.Create(ctx, &models.Activity{
		Type: models.ActivityPost, ActorID: &bob.ID, Message: "bob made a post",
	}))

	require.NoError(t, users.Delete(ctx, bob.ID))

	_, err := users.GetByID(ctx, bob.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", appErrCode(t, err))

	for model, desc := range map[any]string{
		&models.Post{}:      "posts",
		&models.Like{}:      "likes",
		&models.Follow{}:    "follows",
		&models.UserBlock{}: "blocks",
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "expected no %s to survive the cascade", desc)
	}

	// The audit trail survives, dangling actor reference and all.
	latest, err := activities.Latest(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, latest, 1)
}
