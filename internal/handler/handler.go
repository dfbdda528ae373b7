package handler

import (
	"errors"
	"net/http"

	"cardhub/internal/catalog"
	"cardhub/internal/model"
	"cardhub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	cardService service.CardService
	userService service.UserService
	scryfall    *catalog.Client
	logger      zerolog.Logger
}

func NewHandler(cardService service.CardService, userService service.UserService, scryfall *catalog.Client, logger zerolog.Logger) *Handler {
	return &Handler{
		cardService: cardService,
		userService: userService,
		scryfall:    scryfall,
		logger:      logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestID(),
		AccessLog(h.logger),
		gin.Recovery(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", h.Register)

	cards := v1.Group("/cards")
	cards.GET("/:id", h.GetCard)
	cards.GET("/search", h.SearchCards)
	cards.GET("/search-inventory", h.SearchCardsWithInventory)
	cards.POST("/import", h.ImportCards)
	cards.GET("/scryfall-search", h.ScryfallSearch)

	users := v1.Group("/users")
	users.GET("/:id", h.GetUser)
	users.PUT("/:id/username", h.UpdateUsername)
	users.PUT("/:id/telegram", h.UpdateTelegramHandle)

	telegram := v1.Group("/telegram")
	telegram.POST("/verify", h.VerifyTelegram)
	telegram.GET("/:handle/verified", h.IsTelegramVerified)

	return router
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrCardNotFound):
		status = http.StatusNotFound
		code = "CARD_NOT_FOUND"
	case errors.Is(err, model.ErrDuplicateUser):
		status = http.StatusConflict
		code = "USER_EXISTS"
	case errors.Is(err, model.ErrSourceRead):
		status = http.StatusBadRequest
		code = "SOURCE_UNREADABLE"
	case errors.Is(err, model.ErrConnection):
		status = http.StatusServiceUnavailable
		code = "DATABASE_UNAVAILABLE"
	}

	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}

	resp.Code = code
	c.JSON(status, resp)
}
