package handler

import (
	"net/http"
	"strconv"

	"tangle/internal/middleware"
	"tangle/internal/repository/mysql"
	"tangle/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc        *service.PostService
	moderation *service.ModerationService
}

func NewPostHandler(svc *service.PostService, moderation *service.ModerationService) *PostHandler {
	return &PostHandler{svc: svc, moderation: moderation}
}

type PostReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=HELP_REQUEST HELP_OFFER BUY_SELL BUSINESS SERVICE JOB_GIG EVENT ANNOUNCEMENT LOST_FOUND VOLUNTEER"`
	Type        string   `json:"type" binding:"required,oneof=REQUEST OFFER ANNOUNCEMENT"`
	ContactInfo string   `json:"contactInfo"`
	Price       *float64 `json:"price"`
	Location    string   `json:"location"`
	Images      []string `json:"images"`
}

type ReportReq struct {
	Reason string `json:"reason" binding:"required"`
	Type   string `json:"type"`
}

func (r PostReq) params() service.PostParams {
	return service.PostParams{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Type:        r.Type,
		ContactInfo: r.ContactInfo,
		Price:       r.Price,
		Location:    r.Location,
		Images:      r.Images,
	}
}

func (h *PostHandler) List(c *gin.Context) {
	q, ok := pageQuery(c, 10)
	if !ok {
		return
	}

	filter := mysql.PostFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if v := c.Query("communityId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid communityId"})
			return
		}
		filter.CommunityID = id
	}

	posts, pagination, err := h.svc.List(filter, q)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "pagination": pagination})
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *PostHandler) MyPosts(c *gin.Context) {
	q, ok := pageQuery(c, 10)
	if !ok {
		return
	}

	posts, pagination, err := h.svc.MyPosts(middleware.CurrentUser(c), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "pagination": pagination})
}

func (h *PostHandler) Create(c *gin.Context) {
	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	post, err := h.svc.Create(middleware.CurrentUser(c), req.params())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Post created successfully", "post": post})
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	post, err := h.svc.Update(middleware.CurrentUser(c), id, req.params())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post updated successfully", "post": post})
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *PostHandler) Report(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	err := h.moderation.ReportPost(c.Request.Context(), middleware.CurrentUser(c), id, req.Reason, req.Type)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post reported successfully"})
}
