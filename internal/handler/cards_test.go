package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardhub/internal/model"
	"cardhub/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandler_SearchCards_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/cards/search", h.SearchCards)

	mockCardSvc.On("Search", mock.Anything, "fire").Return(1, []model.Card{
		{ID: 1, Name: "Firebolt", Color: model.ColorRed, SetCode: "ody"},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/cards/search?name=fire", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.CardSearchResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Count)
	assert.Len(t, resp.Cards, 1)
	assert.Equal(t, "Firebolt", resp.Cards[0].Name)
}

func TestHandler_GetCard_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/cards/:id", h.GetCard)

	mockCardSvc.On("GetByID", mock.Anything, int64(7)).Return(&model.Card{
		ID: 7, Name: "Firebolt", Color: model.ColorRed, SetCode: "ody",
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/cards/7", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var card model.Card
	_ = json.Unmarshal(w.Body.Bytes(), &card)
	assert.Equal(t, int64(7), card.ID)
	assert.Equal(t, "Firebolt", card.Name)
}

func TestHandler_GetCard_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/cards/:id", h.GetCard)

	mockCardSvc.On("GetByID", mock.Anything, int64(99)).Return(nil, model.ErrCardNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/cards/99", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "CARD_NOT_FOUND", resp.Code)
}

func TestHandler_GetCard_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/cards/:id", h.GetCard)

	req, _ := http.NewRequest(http.MethodGet, "/cards/firebolt", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchCards_MissingName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/cards/search", h.SearchCards)

	req, _ := http.NewRequest(http.MethodGet, "/cards/search", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SearchCardsWithInventory_ZeroStockStillListed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/cards/search-inventory", h.SearchCardsWithInventory)

	mockCardSvc.On("SearchWithInventory", mock.Anything, "fire").Return(1, []model.CardWithInventory{
		{Card: model.Card{ID: 1, Name: "Firebolt"}, TotalQuantity: 0, MinPrice: nil, AvailableQualities: nil},
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/cards/search-inventory?name=fire", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.InventorySearchResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, int64(0), resp.Cards[0].TotalQuantity)
	assert.Nil(t, resp.Cards[0].MinPrice)
	assert.Empty(t, resp.Cards[0].AvailableQualities)
}

func TestHandler_ImportCards_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/cards/import", h.ImportCards)

	mockCardSvc.On("ImportFromFile", mock.Anything, "/data/default-cards.json").Return(&model.ImportReport{
		Total: 2, Imported: 1, Failed: 1,
	}, nil)

	body, _ := json.Marshal(model.ImportRequest{FilePath: "/data/default-cards.json"})
	req, _ := http.NewRequest(http.MethodPost, "/cards/import", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var report model.ImportReport
	_ = json.Unmarshal(w.Body.Bytes(), &report)
	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 1, report.Failed)
}

func TestHandler_ImportCards_UnreadableSource(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/cards/import", h.ImportCards)

	mockCardSvc.On("ImportFromFile", mock.Anything, "/data/missing.json").Return(nil, model.ErrSourceRead)

	body, _ := json.Marshal(model.ImportRequest{FilePath: "/data/missing.json"})
	req, _ := http.NewRequest(http.MethodPost, "/cards/import", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp model.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "SOURCE_UNREADABLE", resp.Code)
}
