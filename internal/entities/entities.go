package entities

import "time"

// User stores account credentials. Usernames are assumed unique at the
// application level; the schema deliberately carries no unique index, so
// duplicate registrations are possible and lookups return the first match.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"index;size:30" json:"username"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Post is a text payload linked to the authenticated user who created it.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text" json:"body"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Comment is a text payload linked to a post and the commenting user.
// The author is hidden from API responses, matching the public comment shape.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text" json:"body"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"-"`
}
