// Package posts provides database operations for blog posts.
package posts

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dimko/miniblog/internal/entities"
)

// ErrNotFound is returned when no post matches the lookup.
var ErrNotFound = errors.New("post not found")

// Repository handles all post database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new posts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a post owned by the given user.
func (r *Repository) Create(body string, userID uint) (*entities.Post, error) {
	post := &entities.Post{
		Body:   body,
		UserID: userID,
	}

	if err := r.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// GetByID retrieves a single post.
func (r *Repository) GetByID(id uint) (*entities.Post, error) {
	var post entities.Post
	err := r.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// List returns posts newest-first with limit/skip pagination.
func (r *Repository) List(limit, skip int) ([]entities.Post, error) {
	posts := []entities.Post{}
	err := r.db.Order("id desc").Limit(limit).Offset(skip).Find(&posts).Error
	return posts, err
}

// DeleteAll removes every post. Used by the dev reset endpoint only.
func (r *Repository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Post{}).Error
}
