package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimko/miniblog/internal/auth"
	"github.com/dimko/miniblog/internal/database/comments"
	"github.com/dimko/miniblog/internal/database/posts"
)

// CommentRequest is the JSON payload for creating a comment.
type CommentRequest struct {
	Body   string `json:"body" binding:"required"`
	PostID uint   `json:"post_id" binding:"required"`
}

// CommentsController handles comment creation and reads.
type CommentsController struct {
	posts    *posts.Repository
	comments *comments.Repository
}

// NewCommentsController creates a new comments controller.
func NewCommentsController(postsRepo *posts.Repository, commentsRepo *comments.Repository) *CommentsController {
	return &CommentsController{posts: postsRepo, comments: commentsRepo}
}

// Create adds a comment to an existing post (404 when the post is missing).
func (cc *CommentsController) Create(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body and post_id are required")
		return
	}

	if _, err := cc.posts.GetByID(req.PostID); err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			respondNotFound(c, "Post")
			return
		}
		respondInternalError(c, err, "check post")
		return
	}

	user := auth.CurrentUser(c)

	comment, err := cc.comments.Create(req.Body, req.PostID, user.ID)
	if err != nil {
		respondInternalError(c, err, "create comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// ListForPost returns the comments on a specific post.
func (cc *CommentsController) ListForPost(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	list, err := cc.comments.ListByPost(id)
	if err != nil {
		respondInternalError(c, err, "list comments")
		return
	}

	c.JSON(http.StatusOK, list)
}
