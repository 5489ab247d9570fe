package seed

import (
	"fmt"
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo data: users, a follow/block mesh,
// posts, likes, and the matching activity trail.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll wipes every seeded table. Order matters: children before parents.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	for _, model := range []any{
		&models.Activity{},
		&models.Like{},
		&models.Follow{},
		&models.UserBlock{},
		&models.Post{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
	}
	return nil
}

// SeedUsers creates n accounts. The first becomes the owner and the second
// an admin, so every role is represented in a fresh demo database.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	log.Printf("Seeding %d users...", n)
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		role := models.RoleUser
		switch i {
		case 0:
			role = models.RoleOwner
		case 1:
			role = models.RoleAdmin
		}
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Role = role
		})
		if err != nil {
			return nil, err
		}
		if err := s.factory.CreateActivity(models.ActivitySignup, &user.ID, nil, nil,
			fmt.Sprintf("%s signed up", user.Username), user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// SeedSocialMesh wires random follow edges (and a few blocks) between the
// given users. Self-edges and duplicates are skipped, mirroring what the
// API itself would refuse.
func (s *Seeder) SeedSocialMesh(users []*models.User) error {
	log.Println("Seeding social graph...")
	for _, follower := range users {
		n := s.factory.rng.Intn(len(users))
		for i := 0; i < n; i++ {
			followee := users[s.factory.rng.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			edge := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := s.db.Where(&edge).FirstOrCreate(&edge).Error; err != nil {
				return err
			}
		}
		// Roughly one in five users blocks somebody.
		if s.factory.rng.Intn(5) == 0 {
			blocked := users[s.factory.rng.Intn(len(users))]
			if blocked.ID != follower.ID {
				edge := models.UserBlock{BlockerID: follower.ID, BlockedID: blocked.ID}
				if err := s.db.Where(&edge).FirstOrCreate(&edge).Error; err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// SeedEngagement creates numPosts posts spread across the users, then
// sprinkles likes over them.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) error {
	log.Printf("Seeding %d posts...", numPosts)
	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		posts = append(posts, s.factory.BuildPost(author))
	}
	if err := s.factory.CreatePostsBatch(posts); err != nil {
		return err
	}

	authorByID := make(map[uint]*models.User, len(users))
	for _, u := range users {
		authorByID[u.ID] = u
	}

	log.Println("Seeding likes...")
	for _, post := range posts {
		author := authorByID[post.AuthorID]
		if err := s.factory.CreateActivity(models.ActivityPost, &post.AuthorID, nil, &post.ID,
			fmt.Sprintf("%s made a post", author.Username), post.CreatedAt); err != nil {
			return err
		}

		n := 0
		if half := len(users) / 2; half > 0 {
			n = s.factory.rng.Intn(half)
		}
		for i := 0; i < n; i++ {
			liker := users[s.factory.rng.Intn(len(users))]
			like := models.Like{UserID: liker.ID, PostID: post.ID}
			res := s.db.Where(&like).FirstOrCreate(&like)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				continue
			}
			if err := s.factory.CreateActivity(models.ActivityLike, &liker.ID, nil, &post.ID,
				fmt.Sprintf("%s liked %s's post", liker.Username, author.Username), post.CreatedAt); err != nil {
				return err
			}
		}
	}
	return nil
}
