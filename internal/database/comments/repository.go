// Package comments provides database operations for post comments.
package comments

import (
	"gorm.io/gorm"

	"github.com/dimko/miniblog/internal/entities"
)

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a comment linked to a post and its author.
func (r *Repository) Create(body string, postID, userID uint) (*entities.Comment, error) {
	comment := &entities.Comment{
		Body:   body,
		PostID: postID,
		UserID: userID,
	}

	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

// ListByPost returns all comments on a post in insertion order.
func (r *Repository) ListByPost(postID uint) ([]entities.Comment, error) {
	comments := []entities.Comment{}
	err := r.db.Where("post_id = ?", postID).Order("id").Find(&comments).Error
	return comments, err
}

// DeleteAll removes every comment. Used by the dev reset endpoint only.
func (r *Repository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Comment{}).Error
}
