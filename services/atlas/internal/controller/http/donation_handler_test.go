package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas/pkg/logger"
	"atlas/pkg/validation"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuote_Bulk(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/donations/quote", withUser("u1", handler.Quote))

	mockUseCase.On("QuoteBulk", 25).Return(&entity.Quote{Memberships: 25, UnitPrice: 8.99, Discount: 10}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/donations/quote?type=bulk&amount=25", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var quote entity.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 10, quote.Discount)
	mockUseCase.AssertExpectations(t)
}

func TestQuote_RejectsUnknownType(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/donations/quote", withUser("u1", handler.Quote))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/donations/quote?type=gift&amount=3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "QuoteSpecific", mock.Anything)
}

func TestQuote_OutOfRange(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/donations/quote", withUser("u1", handler.Quote))

	mockUseCase.On("QuoteSpecific", 60).Return(nil, validation.Failure("amount", usecase.MsgInvalidCustom))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/donations/quote?type=specific&amount=60", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, usecase.MsgInvalidCustom, response.Error)
}

func TestDonateToUser_MissingRecipient(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/donations/user", withUser("donor", handler.DonateToUser))

	mockUseCase.On("DonateToUser", mock.Anything, "donor", mock.Anything).
		Return(nil, validation.Failure("recipientId", usecase.MsgSelectRecipient))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/donations/user", bytes.NewBufferString(`{"amount":3}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, usecase.MsgSelectRecipient, response.Details["recipientId"])
}

func TestSearchUsers(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/donations/users", withUser("u1", handler.SearchUsers))

	mockUseCase.On("Search", mock.Anything, "mar").Return([]entity.Recipient{{ID: "1", Name: "María González"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/donations/users?q=mar", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var users []entity.Recipient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 1)
}

func TestDonateBulk_AmountOnly(t *testing.T) {
	mockUseCase := new(MockDonationUseCase)
	handler := NewDonationHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/donations/bulk", withUser("u1", handler.DonateBulk))

	mockUseCase.On("DonateBulk", mock.Anything, "u1", 20).
		Return(&usecase.DonationResult{Message: "ok"}, nil)

	body, _ := json.Marshal(BulkDonationRequest{Amount: 20})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/donations/bulk", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockUseCase.AssertExpectations(t)
}
