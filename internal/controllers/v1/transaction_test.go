package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	v1 "github.com/neuralcash/backend/internal/controllers/v1"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transactionResponse struct {
	Status string             `json:"status"`
	Data   models.Transaction `json:"data"`
}

type transactionListResponse struct {
	Status string               `json:"status"`
	Data   []models.Transaction `json:"data"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (suite *TestSuiteStandard) TestTransactionsRequireAuth() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	// A non-bearer Authorization header is rejected as well
	recorder = test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions", nil, map[string]string{"Authorization": "Basic dXNlcjpwYXNz"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions", nil, map[string]string{"Authorization": "Bearer garbage"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestCreateTransaction() {
	userID := uuid.New()

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/transactions/add", map[string]any{
		"amount":           14.03,
		"description":      "Coffee at the corner shop",
		"transaction_date": "2024-01-15",
		"payment_method":   "cash",
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response transactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "success", response.Status)
	assert.Equal(suite.T(), userID, response.Data.UserID)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.03)))
	assert.Equal(suite.T(), "Coffee At The Corner Shop", response.Data.Merchant)
	assert.Equal(suite.T(), models.StatusApproved, response.Data.Status)
	assert.False(suite.T(), response.Data.IsPersonal)

	// Without a matching keyword the transaction stays uncategorized
	assert.True(suite.T(), response.Data.AICategorized)
	assert.Nil(suite.T(), response.Data.CategoryID)
	assert.Equal(suite.T(), 0.5, response.Data.Confidence)
}

func (suite *TestSuiteStandard) TestCreateTransactionCategorized() {
	userID := uuid.New()
	category := suite.createTestCategory(userID, "transport", "uber", "metro")

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/transactions/add", map[string]any{
		"amount":           230,
		"description":      "UBER *TRIP 4711",
		"transaction_date": "2024-01-15",
		"payment_method":   "upi",
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response transactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data.CategoryID)
	assert.Equal(suite.T(), category.ID, *response.Data.CategoryID)
	assert.Equal(suite.T(), 0.82, response.Data.Confidence)
	assert.True(suite.T(), response.Data.AICategorized)
}

func (suite *TestSuiteStandard) TestCreateTransactionValidation() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/transactions/add", map[string]any{
		"amount":         -3,
		"payment_method": "cheque",
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response errorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "error", response.Status)

	// All violations are reported at once
	assert.Contains(suite.T(), response.Message, "amount must be larger than zero")
	assert.Contains(suite.T(), response.Message, "description is required")
	assert.Contains(suite.T(), response.Message, "transaction_date is required")
	assert.Contains(suite.T(), response.Message, "payment_method must be one of")
}

func (suite *TestSuiteStandard) TestGetTransactionsPagination() {
	userID := uuid.New()
	for i := 1; i <= 3; i++ {
		suite.createTestTransaction(models.Transaction{
			UserID:      userID,
			Description: fmt.Sprintf("Transaction %d", i),
		})
	}

	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions?limit=2", nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response transactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 2)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions?limit=2&offset=2", nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestGetTransactionsScopedToUser() {
	userID := uuid.New()
	suite.createTestTransaction(models.Transaction{UserID: userID, Description: "Mine"})
	suite.createTestTransaction(models.Transaction{UserID: uuid.New(), Description: "Someone else's"})

	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions", nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response transactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Mine", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestGetTransactionsDateFilter() {
	userID := uuid.New()
	for day, description := range map[int]string{
		10: "Early lunch",
		15: "Middle lunch",
		20: "Late lunch",
	} {
		suite.createTestTransaction(models.Transaction{
			UserID:      userID,
			Description: description,
			Date:        time.Date(2024, 2, day, 18, 30, 0, 0, time.UTC),
		})
	}

	var response transactionListResponse

	// Both boundaries are inclusive, a transaction later in the day still counts
	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions?start_date=2024-02-15&end_date=2024-02-15", nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Middle lunch", response.Data[0].Description)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions?start_date=2024-02-11", nil, test.AuthHeader(suite.T(), userID))
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions?end_date=2024-02-19", nil, test.AuthHeader(suite.T(), userID))
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidDate() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions?start_date=someday", nil, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestApproveTransaction() {
	userID := uuid.New()
	transaction := suite.createTestTransaction(models.Transaction{
		UserID: userID,
		Status: models.StatusPending,
	})

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/transactions/%s/approve", transaction.ID), map[string]any{
		"action": "rejected",
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response transactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), models.StatusRejected, response.Data.Status)
}

func (suite *TestSuiteStandard) TestApproveTransactionInvalidAction() {
	userID := uuid.New()
	transaction := suite.createTestTransaction(models.Transaction{UserID: userID})

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/transactions/%s/approve", transaction.ID), map[string]any{
		"action": "maybe",
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestApproveTransactionNotFound() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/transactions/%s/approve", uuid.New()), map[string]any{
		"action": "approved",
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestApproveTransactionWrongUser() {
	transaction := suite.createTestTransaction(models.Transaction{UserID: uuid.New()})

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/transactions/%s/approve", transaction.ID), map[string]any{
		"action": "approved",
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecategorizeTransaction() {
	userID := uuid.New()
	transaction := suite.createTestTransaction(models.Transaction{
		UserID:      userID,
		Description: "UBER *TRIP",
	})
	category := suite.createTestCategory(userID, "transport")

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/transactions/%s/recategorize", transaction.ID), map[string]any{
		"category_id":        category.ID,
		"predicted_category": "uncategorized",
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var dbTransaction models.Transaction
	err := models.DB.First(&dbTransaction, "id = ?", transaction.ID).Error
	require.Nil(suite.T(), err)
	require.NotNil(suite.T(), dbTransaction.CategoryID)
	assert.Equal(suite.T(), category.ID, *dbTransaction.CategoryID)
}

func (suite *TestSuiteStandard) TestRecategorizeTransactionUnknownCategory() {
	userID := uuid.New()
	transaction := suite.createTestTransaction(models.Transaction{UserID: userID})

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/transactions/%s/recategorize", transaction.ID), map[string]any{
		"category_id": uuid.New(),
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	userID := uuid.New()
	transaction := suite.createTestTransaction(models.Transaction{UserID: userID})

	recorder := test.Request(test.Controller(), suite.T(), http.MethodDelete, fmt.Sprintf("/api/v1/transactions/%s", transaction.ID), nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Deleted transactions disappear from the list
	recorder = test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/transactions", nil, test.AuthHeader(suite.T(), userID))
	var response transactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data)

	// Deleting again fails because the row is already gone
	recorder = test.Request(test.Controller(), suite.T(), http.MethodDelete, fmt.Sprintf("/api/v1/transactions/%s", transaction.ID), nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBulkImportTransactions() {
	userID := uuid.New()
	suite.createTestCategory(userID, "food", "lunch")

	file := strings.Join([]string{
		"amount,description,transaction_date,payment_method",
		"12.50,Team lunch,2024-01-15,cash",
		"-3,Refund,2024-01-16,cash",
		"899,Headphones,2024-01-17,credit_card",
	}, "\n")

	body, headers := test.MultipartFile(suite.T(), "file", "transactions.csv", []byte(file))
	headers["Authorization"] = "Bearer " + test.Token(suite.T(), userID)

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/transactions/bulk-import", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Status string                `json:"status"`
		Data   v1.BulkImportResponse `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), 2, response.Data.Imported)
	require.Len(suite.T(), response.Data.Results, 3)

	// The first row matches the food keyword
	require.NotNil(suite.T(), response.Data.Results[0].Data)
	assert.NotNil(suite.T(), response.Data.Results[0].Data.CategoryID)

	// The invalid row reports its error, valid rows are still imported
	require.NotNil(suite.T(), response.Data.Results[1].Error)
	assert.Contains(suite.T(), *response.Data.Results[1].Error, "amount must be larger than zero")
	assert.Nil(suite.T(), response.Data.Results[1].Data)

	require.NotNil(suite.T(), response.Data.Results[2].Data)
}

func (suite *TestSuiteStandard) TestBulkImportNoFile() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/transactions/bulk-import", nil, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
