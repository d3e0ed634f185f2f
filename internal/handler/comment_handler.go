package handler

import (
	"net/http"

	"tangle/internal/middleware"
	"tangle/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type CommentReq struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}
	q, ok := pageQuery(c, 20)
	if !ok {
		return
	}

	comments, pagination, err := h.svc.ListByPost(postID, q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments, "pagination": pagination})
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var req CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	comment, err := h.svc.Create(middleware.CurrentUser(c), postID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment created successfully", "comment": comment})
}

func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	comment, err := h.svc.Update(middleware.CurrentUser(c), id, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully", "comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
