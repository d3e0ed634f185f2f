package handler

import (
	"net/http"

	"tangle/internal/middleware"
	"tangle/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.UserService
}

func NewAuthHandler(svc *service.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterReq struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	Password      string `json:"password" binding:"required,min=6"`
	Address       string `json:"address" binding:"required"`
	Locality      string `json:"locality" binding:"required"`
	Pincode       string `json:"pincode" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=RESIDENT BUSINESS_OWNER SERVICE_PROVIDER ADMIN"`
	CommunityCode string `json:"communityCode" binding:"required"`
}

type LoginReq struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UpdateProfileReq struct {
	FullName       string `json:"fullName" binding:"required"`
	Address        string `json:"address"`
	Locality       string `json:"locality"`
	Pincode        string `json:"pincode"`
	ProfilePicture string `json:"profilePicture"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	pair, user, err := h.svc.Register(c.Request.Context(), service.RegisterParams{
		FullName:      req.FullName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Password:      req.Password,
		Address:       req.Address,
		Locality:      req.Locality,
		Pincode:       req.Pincode,
		Role:          req.Role,
		CommunityCode: req.CommunityCode,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "User registered successfully",
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user":         user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	pair, user, err := h.svc.Login(c.Request.Context(), req.EmailOrPhone, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"token":        pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"user":         user,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": pair.AccessToken, "refreshToken": pair.RefreshToken})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if err := h.svc.Logout(c.Request.Context(), actor.ID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	user, err := h.svc.Profile(actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFail(c, err)
		return
	}

	actor := middleware.CurrentUser(c)
	user, err := h.svc.UpdateProfile(actor.ID, service.UpdateProfileParams{
		FullName:       req.FullName,
		Address:        req.Address,
		Locality:       req.Locality,
		Pincode:        req.Pincode,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": user})
}

func (h *AuthHandler) Stats(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	stats, err := h.svc.Stats(actor.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
