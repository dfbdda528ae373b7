package handler

import (
	"net/http"
	"strconv"
	"strings"

	"cardhub/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/v1/auth/register. The password is hashed
// here so the persistence layer only ever sees the hash.
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Emails are stored lowercased so Bob@x.com and bob@x.com are one account
	ok, err := h.userService.Register(c.Request.Context(), req.Username, strings.ToLower(req.Email), string(hash))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, model.ErrorResponse{Error: "email or username already taken", Code: "USER_EXISTS"})
		return
	}

	c.JSON(http.StatusCreated, model.RegisterResponse{Status: "registered"})
}

// GetUser handles GET /api/v1/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid user id", Code: "INVALID_USER_ID"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}

// UpdateUsername handles PUT /api/v1/users/:id/username
func (h *Handler) UpdateUsername(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid user id", Code: "INVALID_USER_ID"})
		return
	}

	var req model.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	if err := h.userService.UpdateUsername(c.Request.Context(), id, req.Username); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// UpdateTelegramHandle handles PUT /api/v1/users/:id/telegram
func (h *Handler) UpdateTelegramHandle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid user id", Code: "INVALID_USER_ID"})
		return
	}

	var req model.UpdateTelegramHandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	if err := h.userService.UpdateTelegramHandle(c.Request.Context(), id, req.TelegramUsername); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// VerifyTelegram handles POST /api/v1/telegram/verify
func (h *Handler) VerifyTelegram(c *gin.Context) {
	var req model.VerifyTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	if err := h.userService.VerifyTelegram(c.Request.Context(), req.ChatID, req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

// IsTelegramVerified handles GET /api/v1/telegram/:handle/verified
func (h *Handler) IsTelegramVerified(c *gin.Context) {
	verified, err := h.userService.IsTelegramVerified(c.Request.Context(), c.Param("handle"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": verified})
}
