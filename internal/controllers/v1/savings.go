package v1

import (
	"net/http"

	"github.com/neuralcash/backend/internal/httputil"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterSavingsRoutes registers the routes for savings goals with
// the RouterGroup that is passed.
func (co Controller) RegisterSavingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/goals", OptionsSavingsGoals)
	r.GET("/goals", co.GetSavingsGoals)
	r.POST("/goals", co.CreateSavingsGoal)
	r.POST("/goals/:id/contribute", co.ContributeSavingsGoal)
}

// SavingsGoalEditable are the fields of a savings goal users can set.
type SavingsGoalEditable struct {
	Name         string          `json:"name" binding:"required" example:"Emergency fund"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required" example:"50000"`
}

// ContributionRequest is the payload for a contribution to a goal.
type ContributionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required" example:"1500"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SavingsGoals
// @Success		204
// @Router			/api/v1/savings/goals [options]
func OptionsSavingsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List savings goals
// @Description	Returns the savings goals of the authenticated user
// @Tags			SavingsGoals
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/v1/savings/goals [get]
// @Security		Bearer
func (co Controller) GetSavingsGoals(c *gin.Context) {
	goals := make([]models.SavingsGoal, 0)
	err := models.DB.
		Where("user_id = ?", httputil.UserID(c)).
		Order("datetime(savings_goals.created_at) ASC").
		Find(&goals).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, goals)
}

// @Summary		Create savings goal
// @Description	Creates a savings goal with a zero balance
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		201		{object}	httputil.Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			goal	body		SavingsGoalEditable	true	"Savings goal"
// @Router			/api/v1/savings/goals [post]
// @Security		Bearer
func (co Controller) CreateSavingsGoal(c *gin.Context) {
	var editable SavingsGoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	goal := models.SavingsGoal{
		UserID:       httputil.UserID(c),
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
	}

	if err := models.DB.Create(&goal).Error; err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Created(c, goal)
}

// @Summary		Contribute to savings goal
// @Description	Adds an amount to the balance of a savings goal
// @Tags			SavingsGoals
// @Accept			json
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		404	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id				path		string				true	"ID of the savings goal"
// @Param			contribution	body		ContributionRequest	true	"Contribution"
// @Router			/api/v1/savings/goals/{id}/contribute [post]
// @Security		Bearer
func (co Controller) ContributeSavingsGoal(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	var body ContributionRequest
	if err := httputil.BindData(c, &body); err != nil {
		return
	}

	if violations := validate.Run([]validate.Rule{
		{Field: "amount", Required: true, Present: true, Check: validate.Positive("amount", body.Amount)},
	}); len(violations) > 0 {
		httputil.Error(c, http.StatusBadRequest, violations)
		return
	}

	goal, err := models.AddContribution(uri.ID.UUID, httputil.UserID(c), body.Amount)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, goal)
}
