package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/neuralcash/backend/internal/analytics"
	"github.com/neuralcash/backend/internal/httputil"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegisterAnalyticsRoutes registers the routes for analytics with the
// RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAnalytics)
	r.GET("/cross-cut", co.GetCrossCut)
	r.GET("/predictions", co.GetPredictions)
	r.GET("/spending-report", co.GetSpendingReport)
	r.GET("/export", co.ExportTransactions)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/api/v1/analytics [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Cross-cut suggestions
// @Description	Checks the recent transactions for a large spend and suggests budget reductions to compensate for it
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/v1/analytics/cross-cut [get]
// @Security		Bearer
func (co Controller) GetCrossCut(c *gin.Context) {
	transactions, err := recentTransactions(httputil.UserID(c), 50)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	// Budget data is not tracked yet, so suggestions stay empty
	httputil.Success(c, analytics.BuildCrossCut(transactions, []analytics.Budget{}))
}

// @Summary		Recurring spend forecast
// @Description	Predicts upcoming recurring transactions from recent history
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/v1/analytics/predictions [get]
// @Security		Bearer
func (co Controller) GetPredictions(c *gin.Context) {
	transactions, err := recentTransactions(httputil.UserID(c), 200)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, analytics.PredictRecurring(transactions))
}

// @Summary		Spending report
// @Description	Returns the transactions of the report period together with the grouping dimension
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			group_by	query		string	false	"Dimension to group by. Defaults to category."
// @Param			start_date	query		string	false	"Transactions at and after this date"
// @Param			end_date	query		string	false	"Transactions before and at this date"
// @Router			/api/v1/analytics/spending-report [get]
// @Security		Bearer
func (co Controller) GetSpendingReport(c *gin.Context) {
	groupBy := c.Query("group_by")
	if groupBy == "" {
		groupBy = "category"
	}

	q, ok := reportQuery(c)
	if !ok {
		return
	}

	transactions := make([]models.Transaction, 0)
	err := q.Find(&transactions).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, analytics.Report{GroupBy: groupBy, Rows: transactions})
}

// @Summary		Export transactions
// @Description	Downloads the transactions of the authenticated user as a CSV file
// @Tags			Analytics
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			start_date	query		string	false	"Transactions at and after this date"
// @Param			end_date	query		string	false	"Transactions before and at this date"
// @Router			/api/v1/analytics/export [get]
// @Security		Bearer
func (co Controller) ExportTransactions(c *gin.Context) {
	q, ok := reportQuery(c)
	if !ok {
		return
	}

	transactions := make([]models.Transaction, 0)
	err := q.Find(&transactions).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	filename := fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)

	if err := analytics.WriteCSV(c.Writer, transactions); err != nil {
		httputil.Error(c, http.StatusInternalServerError, err)
		return
	}
}

// reportQuery builds the scoped transaction query for reports and applies
// the optional date range. When a date parameter is invalid, the error
// response has already been written and ok is false.
func reportQuery(c *gin.Context) (q *gorm.DB, ok bool) {
	q = models.DB.
		Where("transactions.user_id = ?", httputil.UserID(c)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if value := c.Query("start_date"); value != "" {
		start, err := validate.ParseDate(value)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, errStartDateInvalid)
			return nil, false
		}
		q = q.Where("transactions.date >= date(?)", start)
	}

	if value := c.Query("end_date"); value != "" {
		end, err := validate.ParseDate(value)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, errEndDateInvalid)
			return nil, false
		}
		// The end date is inclusive, everything up to the end of that day counts
		q = q.Where("transactions.date < date(?)", end.AddDate(0, 0, 1))
	}

	return q, true
}

// recentTransactions loads the most recent transactions of the user.
func recentTransactions(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)
	err := models.DB.
		Where("user_id = ?", userID).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
