package models_test

import (
	"github.com/neuralcash/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingsGoalTargetMustBePositive() {
	goal := models.SavingsGoal{
		UserID: uuid.New(),
		Name:   "Impossible",
	}

	err := models.DB.Create(&goal).Error
	assert.ErrorIs(suite.T(), err, models.ErrTargetAmountNotPositive)
}

func (suite *TestSuiteStandard) TestAddContribution() {
	goal := suite.createTestSavingsGoal(models.SavingsGoal{
		TargetAmount: decimal.NewFromFloat(1000),
	})

	updated, err := models.AddContribution(goal.ID, goal.UserID, decimal.NewFromFloat(250))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), updated.CurrentAmount.Equal(decimal.NewFromFloat(250)), "current amount is %s", updated.CurrentAmount)

	// Contributions accumulate
	updated, err = models.AddContribution(goal.ID, goal.UserID, decimal.NewFromFloat(100.50))
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), updated.CurrentAmount.Equal(decimal.NewFromFloat(350.50)), "current amount is %s", updated.CurrentAmount)
}

func (suite *TestSuiteStandard) TestAddContributionWrongUser() {
	goal := suite.createTestSavingsGoal(models.SavingsGoal{})

	_, err := models.AddContribution(goal.ID, uuid.New(), decimal.NewFromFloat(10))
	assert.NotNil(suite.T(), err)
}
