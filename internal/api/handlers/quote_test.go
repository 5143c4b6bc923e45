package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadportaal/internal/api/middleware"
	"leadportaal/internal/models"
	"leadportaal/internal/repository"
	"leadportaal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQuoteRepository struct {
	repository.QuoteRepository
	createFunc func(ctx context.Context, quote *models.Quote) (*models.Quote, error)
}

func (m *mockQuoteRepository) Create(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, quote)
	}
	quote.ID = "q-1"
	return quote, nil
}

type mockActivityRepository struct {
	repository.ActivityRepository
}

func (m *mockActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return nil
}

func submissionRouter(repo repository.QuoteRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	activityService := service.NewActivityService(&mockActivityRepository{})
	quoteService := service.NewQuoteService(repo, activityService)
	handler := NewQuoteHandler(quoteService)
	validation := middleware.NewValidationMiddleware()

	router := gin.New()
	router.POST("/api/v1/quotes", validation.ValidateSubmitQuoteRequest(), handler.Submit)
	return router
}

func validSubmitBody() string {
	return `{
		"websiteType": "webshop",
		"features": ["Analytics"],
		"budget": "< €5000",
		"timeline": "1-2 maanden",
		"companyName": "Bakkerij Jansen",
		"contactPerson": "Piet Jansen",
		"email": "piet@jansen.nl",
		"phone": "0612345678"
	}`
}

func TestQuoteHandler_Submit(t *testing.T) {
	router := submissionRouter(&mockQuoteRepository{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(validSubmitBody()))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusCreated, resp.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "q-1", body.Data.ID)
}

func TestQuoteHandler_SubmitMissingFields(t *testing.T) {
	router := submissionRouter(&mockQuoteRepository{})

	body := `{"websiteType": "webshop"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestQuoteHandler_SubmitUnknownWebsiteType(t *testing.T) {
	router := submissionRouter(&mockQuoteRepository{})

	body := strings.Replace(validSubmitBody(), "webshop", "blog", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestQuoteHandler_SubmitDuplicate(t *testing.T) {
	repo := &mockQuoteRepository{
		createFunc: func(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
			return nil, repository.ErrDuplicateEmail
		},
	}
	router := submissionRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(validSubmitBody()))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusConflict, resp.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "Dit emailadres is al geregistreerd", body.Error.Message)
}

func TestQuoteHandler_SubmitMissingTable(t *testing.T) {
	repo := &mockQuoteRepository{
		createFunc: func(ctx context.Context, quote *models.Quote) (*models.Quote, error) {
			return nil, repository.ErrMissingTable
		},
	}
	router := submissionRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(validSubmitBody()))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
