package handler

import (
	"net/http"
	"strconv"

	"cardhub/internal/model"

	"github.com/gin-gonic/gin"
)

// GetCard handles GET /api/v1/cards/:id
func (h *Handler) GetCard(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid card id", Code: "INVALID_CARD_ID"})
		return
	}

	card, err := h.cardService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// SearchCards handles GET /api/v1/cards/search?name=
func (h *Handler) SearchCards(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "name query parameter is required", Code: "MISSING_NAME"})
		return
	}

	count, cards, err := h.cardService.Search(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if cards == nil {
		cards = []model.Card{}
	}
	c.JSON(http.StatusOK, model.CardSearchResponse{Count: count, Cards: cards})
}

// SearchCardsWithInventory handles GET /api/v1/cards/search-inventory?name=
func (h *Handler) SearchCardsWithInventory(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "name query parameter is required", Code: "MISSING_NAME"})
		return
	}

	count, cards, err := h.cardService.SearchWithInventory(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if cards == nil {
		cards = []model.CardWithInventory{}
	}
	c.JSON(http.StatusOK, model.InventorySearchResponse{Count: count, Cards: cards})
}

// ImportCards handles POST /api/v1/cards/import
func (h *Handler) ImportCards(c *gin.Context) {
	var req model.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "INVALID_REQUEST"})
		return
	}

	report, err := h.cardService.ImportFromFile(c.Request.Context(), req.FilePath)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ScryfallSearch handles GET /api/v1/cards/scryfall-search?name= and
// proxies the query to the upstream catalog.
func (h *Handler) ScryfallSearch(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "name query parameter is required", Code: "MISSING_NAME"})
		return
	}

	result, err := h.scryfall.SearchCard(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
