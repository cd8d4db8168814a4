package v1_test

import (
	"fmt"
	"net/http"

	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savingsGoalResponse struct {
	Status string             `json:"status"`
	Data   models.SavingsGoal `json:"data"`
}

func (suite *TestSuiteStandard) TestCreateSavingsGoal() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/savings/goals", map[string]any{
		"name":          "Emergency fund",
		"target_amount": 50000,
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response savingsGoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Emergency fund", response.Data.Name)
	assert.True(suite.T(), response.Data.TargetAmount.Equal(decimal.NewFromInt(50000)))
	assert.True(suite.T(), response.Data.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestCreateSavingsGoalNegativeTarget() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/savings/goals", map[string]any{
		"name":          "Impossible",
		"target_amount": -1,
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContributeSavingsGoal() {
	userID := uuid.New()

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/savings/goals", map[string]any{
		"name":          "Vacation",
		"target_amount": 30000,
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var created savingsGoalResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodPost, fmt.Sprintf("/api/v1/savings/goals/%s/contribute", created.Data.ID), map[string]any{
		"amount": 1500,
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response savingsGoalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromInt(1500)), "current amount is %s", response.Data.CurrentAmount)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodPost, fmt.Sprintf("/api/v1/savings/goals/%s/contribute", created.Data.ID), map[string]any{
		"amount": 500,
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.Equal(decimal.NewFromInt(2000)), "current amount is %s", response.Data.CurrentAmount)
}

func (suite *TestSuiteStandard) TestContributeSavingsGoalNegativeAmount() {
	userID := uuid.New()

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/savings/goals", map[string]any{
		"name":          "Vacation",
		"target_amount": 30000,
	}, test.AuthHeader(suite.T(), userID))

	var created savingsGoalResponse
	test.DecodeResponse(suite.T(), &recorder, &created)

	recorder = test.Request(test.Controller(), suite.T(), http.MethodPost, fmt.Sprintf("/api/v1/savings/goals/%s/contribute", created.Data.ID), map[string]any{
		"amount": -100,
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response errorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), response.Message, "must be larger than zero")
}

func (suite *TestSuiteStandard) TestContributeSavingsGoalNotFound() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, fmt.Sprintf("/api/v1/savings/goals/%s/contribute", uuid.New()), map[string]any{
		"amount": 100,
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetSavingsGoalsScopedToUser() {
	userID := uuid.New()

	_ = test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/savings/goals", map[string]any{
		"name":          "Mine",
		"target_amount": 1000,
	}, test.AuthHeader(suite.T(), userID))
	_ = test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/savings/goals", map[string]any{
		"name":          "Someone else's",
		"target_amount": 1000,
	}, test.AuthHeader(suite.T(), uuid.New()))

	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/savings/goals", nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Status string               `json:"status"`
		Data   []models.SavingsGoal `json:"data"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Mine", response.Data[0].Name)
}
