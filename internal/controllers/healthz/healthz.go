package healthz

import (
	"net/http"

	"github.com/neuralcash/backend/internal/httputil"
	"github.com/neuralcash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api/v1/health [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/v1/health [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httputil.Error(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		httputil.Error(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	httputil.Success(c, gin.H{"healthy": true})
}
