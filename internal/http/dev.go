package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimko/miniblog/internal/database/comments"
	"github.com/dimko/miniblog/internal/database/posts"
)

// DevController exposes maintainer-only maintenance endpoints.
type DevController struct {
	posts    *posts.Repository
	comments *comments.Repository
}

// NewDevController creates a new dev maintenance controller.
func NewDevController(postsRepo *posts.Repository, commentsRepo *comments.Repository) *DevController {
	return &DevController{posts: postsRepo, comments: commentsRepo}
}

// Reset clears comments then posts. Returns 204 No Content.
// Comments go first so no comment ever references a deleted post.
func (dc *DevController) Reset(c *gin.Context) {
	if err := dc.comments.DeleteAll(); err != nil {
		respondInternalError(c, err, "reset comments")
		return
	}
	if err := dc.posts.DeleteAll(); err != nil {
		respondInternalError(c, err, "reset posts")
		return
	}
	c.Status(http.StatusNoContent)
}
