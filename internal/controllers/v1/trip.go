package v1

import (
	"net/http"
	"time"

	"github.com/neuralcash/backend/internal/httputil"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/validate"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterTripRoutes registers the routes for trips with the RouterGroup
// that is passed.
func (co Controller) RegisterTripRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTrips)
	r.GET("", co.GetTrips)
	r.POST("", co.CreateTrip)
}

// TripEditable are the fields of a trip users can set.
type TripEditable struct {
	Name      string          `json:"name" binding:"required" example:"Goa 2024"`
	StartDate string          `json:"start_date" example:"2024-03-01"`
	EndDate   string          `json:"end_date" example:"2024-03-08"`
	Budget    decimal.Decimal `json:"budget" example:"25000"`
	Note      string          `json:"note" example:"Spring vacation"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Trips
// @Success		204
// @Router			/api/v1/trips [options]
func OptionsTrips(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List trips
// @Description	Returns the trips of the authenticated user
// @Tags			Trips
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/v1/trips [get]
// @Security		Bearer
func (co Controller) GetTrips(c *gin.Context) {
	trips := make([]models.Trip, 0)
	err := models.DB.
		Where("user_id = ?", httputil.UserID(c)).
		Order("datetime(trips.created_at) ASC").
		Find(&trips).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, trips)
}

// @Summary		Create trip
// @Description	Creates a trip with an optional budget and date range
// @Tags			Trips
// @Accept			json
// @Produce		json
// @Success		201		{object}	httputil.Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			trip	body		TripEditable	true	"Trip"
// @Router			/api/v1/trips [post]
// @Security		Bearer
func (co Controller) CreateTrip(c *gin.Context) {
	var editable TripEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	trip := models.Trip{
		UserID: httputil.UserID(c),
		Name:   editable.Name,
		Budget: editable.Budget,
		Note:   editable.Note,
	}

	var err error
	if trip.StartDate, err = parseOptionalDate(editable.StartDate); err != nil {
		httputil.Error(c, http.StatusBadRequest, errStartDateInvalid)
		return
	}
	if trip.EndDate, err = parseOptionalDate(editable.EndDate); err != nil {
		httputil.Error(c, http.StatusBadRequest, errEndDateInvalid)
		return
	}

	if err := models.DB.Create(&trip).Error; err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Created(c, trip)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	date, err := validate.ParseDate(value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
