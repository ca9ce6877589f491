package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimko/miniblog/internal/auth"
	"github.com/dimko/miniblog/internal/database/comments"
	"github.com/dimko/miniblog/internal/database/posts"
	"github.com/dimko/miniblog/internal/entities"
)

// PostRequest is the JSON payload for creating a post.
type PostRequest struct {
	Body string `json:"body" binding:"required"`
}

// PostWithComments is the nested read model for a single post.
type PostWithComments struct {
	entities.Post
	Comments []entities.Comment `json:"comments"`
}

// PostsController handles post creation and reads.
type PostsController struct {
	posts    *posts.Repository
	comments *comments.Repository
}

// NewPostsController creates a new posts controller.
func NewPostsController(postsRepo *posts.Repository, commentsRepo *comments.Repository) *PostsController {
	return &PostsController{posts: postsRepo, comments: commentsRepo}
}

// Create adds a post for the authenticated user and returns it.
func (pc *PostsController) Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "body is required")
		return
	}

	user := auth.CurrentUser(c)

	post, err := pc.posts.Create(req.Body, user.ID)
	if err != nil {
		respondInternalError(c, err, "create post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// List returns posts newest-first with limit/skip pagination.
func (pc *PostsController) List(c *gin.Context) {
	limit, skip := parsePagination(c)

	list, err := pc.posts.List(limit, skip)
	if err != nil {
		respondInternalError(c, err, "list posts")
		return
	}

	c.JSON(http.StatusOK, list)
}

// Get returns a single post together with its comments.
func (pc *PostsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := pc.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, posts.ErrNotFound) {
			respondNotFound(c, "Post")
			return
		}
		respondInternalError(c, err, "get post")
		return
	}

	postComments, err := pc.comments.ListByPost(post.ID)
	if err != nil {
		respondInternalError(c, err, "list comments")
		return
	}

	c.JSON(http.StatusOK, PostWithComments{Post: *post, Comments: postComments})
}
