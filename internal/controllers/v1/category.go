package v1

import (
	"net/http"

	"github.com/neuralcash/backend/internal/httputil"
	"github.com/neuralcash/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
	r.PATCH("/:id", co.UpdateCategory)
}

// CategoryEditable are the fields of a category users can set.
type CategoryEditable struct {
	Name     string   `json:"name" binding:"required" example:"Groceries"`
	Keywords []string `json:"keywords" example:"supermarket,bakery"`
	Note     string   `json:"note" example:"Everyday food shopping"`
}

// CategoryUpdate is the payload for partial updates. Absent fields are
// left unchanged.
type CategoryUpdate struct {
	Name     *string   `json:"name" example:"Groceries"`
	Keywords *[]string `json:"keywords" example:"supermarket,bakery"`
	Note     *string   `json:"note" example:"Everyday food shopping"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/api/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List categories
// @Description	Returns the categories of the authenticated user in creation order
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		500	{object}	httputil.ErrorResponse
// @Router			/api/v1/categories [get]
// @Security		Bearer
func (co Controller) GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)
	err := models.DB.
		Where("user_id = ?", httputil.UserID(c)).
		Order("datetime(categories.created_at) ASC").
		Find(&categories).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, categories)
}

// @Summary		Create category
// @Description	Creates a category with keyword rules for automatic categorization
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	httputil.Response
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/api/v1/categories [post]
// @Security		Bearer
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	category := models.Category{
		UserID:   httputil.UserID(c),
		Name:     editable.Name,
		Keywords: editable.Keywords,
		Note:     editable.Note,
	}

	if err := models.DB.Create(&category).Error; err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Created(c, category)
}

// @Summary		Update category
// @Description	Updates a category. Only the fields in the request are changed
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		404	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id			path		string			true	"ID of the category"
// @Param			category	body		CategoryUpdate	true	"Category"
// @Router			/api/v1/categories/{id} [patch]
// @Security		Bearer
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	var category models.Category
	err := models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, httputil.UserID(c)).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	var update CategoryUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Keywords != nil {
		category.Keywords = *update.Keywords
	}
	if update.Note != nil {
		category.Note = *update.Note
	}

	if err := models.DB.Save(&category).Error; err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, category)
}
