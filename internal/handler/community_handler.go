package handler

import (
	"net/http"

	"tangle/internal/middleware"
	"tangle/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

type CreateCommunityReq struct {
	Name          string `json:"name" binding:"required"`
	CommunityCode string `json:"communityCode" binding:"required"`
	Location      string `json:"location" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Pincode       string `json:"pincode" binding:"required"`
	Description   string `json:"description"`
}

type UpdateCommunityReq struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Description string `json:"description"`
}

func (h *CommunityHandler) List(c *gin.Context) {
	q, ok := pageQuery(c, 10)
	if !ok {
		return
	}

	list, pagination, err := h.svc.List(c.Query("search"), q)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"communities": list, "pagination": pagination})
}

func (h *CommunityHandler) Search(c *gin.Context) {
	list, err := h.svc.Search(c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"communities": list})
}

func (h *CommunityHandler) GetByCode(c *gin.Context) {
	community, err := h.svc.GetByCode(c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	community, err := h.svc.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CreateCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	community, err := h.svc.Create(middleware.CurrentUser(c), service.CommunityParams{
		Name:          req.Name,
		CommunityCode: req.CommunityCode,
		Location:      req.Location,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Description:   req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Community created successfully", "community": community})
}

func (h *CommunityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	community, err := h.svc.Update(middleware.CurrentUser(c), id, service.CommunityParams{
		Name:        req.Name,
		Location:    req.Location,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Description: req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Community updated successfully", "community": community})
}

func (h *CommunityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(middleware.CurrentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Community deleted successfully"})
}
