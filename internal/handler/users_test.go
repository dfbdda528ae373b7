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
	"golang.org/x/crypto/bcrypt"
)

func TestHandler_Register_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/auth/register", h.Register)

	mockUserSvc.On("Register", mock.Anything, "bob", "bob@x.com", mock.MatchedBy(func(hash string) bool {
		// the persistence layer must only ever see a bcrypt hash
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2hunter2")) == nil
	})).Return(true, nil)

	body, _ := json.Marshal(model.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "hunter2hunter2"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Register_LowercasesEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/auth/register", h.Register)

	// Bob@X.com and bob@x.com must land on the same row
	mockUserSvc.On("Register", mock.Anything, "bob", "bob@x.com", mock.Anything).Return(true, nil)

	body, _ := json.Marshal(model.RegisterRequest{Username: "bob", Email: "Bob@X.com", Password: "hunter2hunter2"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Register_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/auth/register", h.Register)

	mockUserSvc.On("Register", mock.Anything, "bob", "bob@x.com", mock.Anything).Return(false, nil)

	body, _ := json.Marshal(model.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "hunter2hunter2"})
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/auth/register", h.Register)

	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"username": "bob"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUser_ProfileHidesHash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/users/:id", h.GetUser)

	mockUserSvc.On("GetByID", mock.Anything, int64(4)).Return(&model.User{
		ID:           4,
		Email:        "bob@x.com",
		PasswordHash: "$2a$10$supersecret",
		Username:     "bob",
		Role:         model.RoleUser,
	}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/users/4", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "supersecret")
	assert.Contains(t, w.Body.String(), `"username":"bob"`)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/users/:id", h.GetUser)

	mockUserSvc.On("GetByID", mock.Anything, int64(99)).Return(nil, model.ErrUserNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/users/99", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp model.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "USER_NOT_FOUND", resp.Code)
}

func TestHandler_VerifyTelegram(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.POST("/telegram/verify", h.VerifyTelegram)

	mockUserSvc.On("VerifyTelegram", mock.Anything, int64(99887766), int64(4)).Return(nil)

	body, _ := json.Marshal(model.VerifyTelegramRequest{ChatID: 99887766, UserID: 4})
	req, _ := http.NewRequest(http.MethodPost, "/telegram/verify", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_IsTelegramVerified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockCardSvc := mocks.NewCardService(t)
	mockUserSvc := mocks.NewUserService(t)
	h := NewHandler(mockCardSvc, mockUserSvc, nil, zerolog.Nop())

	router := gin.New()
	router.GET("/telegram/:handle/verified", h.IsTelegramVerified)

	mockUserSvc.On("IsTelegramVerified", mock.Anything, "bob_tg").Return(false, nil)

	req, _ := http.NewRequest(http.MethodGet, "/telegram/bob_tg/verified", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":false`)
}
