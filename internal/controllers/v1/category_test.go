package v1_test

import (
	"fmt"
	"net/http"

	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryResponse struct {
	Status string          `json:"status"`
	Data   models.Category `json:"data"`
}

type categoryListResponse struct {
	Status string            `json:"status"`
	Data   []models.Category `json:"data"`
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/categories", map[string]any{
		"name":     "Groceries",
		"keywords": []string{"supermarket", "bakery"},
		"note":     "Everyday food shopping",
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response categoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Groceries", response.Data.Name)
	assert.Equal(suite.T(), []string{"supermarket", "bakery"}, response.Data.Keywords)
}

func (suite *TestSuiteStandard) TestCreateCategoryRequiresName() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/categories", map[string]any{
		"keywords": []string{"supermarket"},
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicateName() {
	userID := uuid.New()
	suite.createTestCategory(userID, "Groceries")

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPost, "/api/v1/categories", map[string]any{
		"name": "Groceries",
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response errorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "you already have a category with this name", response.Message)
}

func (suite *TestSuiteStandard) TestGetCategoriesOrdered() {
	userID := uuid.New()
	suite.createTestCategory(userID, "First")
	suite.createTestCategory(userID, "Second")
	suite.createTestCategory(uuid.New(), "Other user")

	recorder := test.Request(test.Controller(), suite.T(), http.MethodGet, "/api/v1/categories", nil, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response categoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "First", response.Data[0].Name)
	assert.Equal(suite.T(), "Second", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	userID := uuid.New()
	category := suite.createTestCategory(userID, "Groceries", "supermarket")

	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/categories/%s", category.ID), map[string]any{
		"keywords": []string{"supermarket", "bakery"},
	}, test.AuthHeader(suite.T(), userID))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response categoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Fields not in the request stay untouched
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
	assert.Equal(suite.T(), []string{"supermarket", "bakery"}, response.Data.Keywords)
}

func (suite *TestSuiteStandard) TestUpdateCategoryNotFound() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, fmt.Sprintf("/api/v1/categories/%s", uuid.New()), map[string]any{
		"name": "Whatever",
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCategoryInvalidUUID() {
	recorder := test.Request(test.Controller(), suite.T(), http.MethodPatch, "/api/v1/categories/not-a-uuid", map[string]any{
		"name": "Whatever",
	}, test.AuthHeader(suite.T(), uuid.New()))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
