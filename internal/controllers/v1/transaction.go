package v1

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/neuralcash/backend/internal/categorizer"
	"github.com/neuralcash/backend/internal/httputil"
	"github.com/neuralcash/backend/internal/importer/parser/csvimport"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/validate"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransactions)
	r.GET("", co.GetTransactions)
	r.POST("/add", co.CreateTransaction)
	r.POST("/bulk-import", co.BulkImportTransactions)
	r.POST("/receipt", co.CaptureReceipt)
	r.PATCH("/:id/approve", co.ApproveTransaction)
	r.PATCH("/:id/recategorize", co.RecategorizeTransaction)
	r.DELETE("/:id", co.DeleteTransaction)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/api/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List transactions
// @Description	Returns the transactions of the authenticated user, most recent first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.ErrorResponse
// @Failure		500			{object}	httputil.ErrorResponse
// @Param			start_date	query		string	false	"Transactions at and after this date"
// @Param			end_date	query		string	false	"Transactions before and at this date"
// @Param			offset		query		uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query		int		false	"Maximum number of transactions to return. Defaults to 50."
// @Router			/api/v1/transactions [get]
// @Security		Bearer
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		httputil.Error(c, http.StatusBadRequest, httputil.ErrInvalidBody)
		return
	}

	q := models.DB.
		Where("transactions.user_id = ?", httputil.UserID(c)).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC")

	if filter.StartDate != "" {
		start, err := validate.ParseDate(filter.StartDate)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, errStartDateInvalid)
			return
		}
		q = q.Where("transactions.date >= date(?)", start)
	}

	if filter.EndDate != "" {
		end, err := validate.ParseDate(filter.EndDate)
		if err != nil {
			httputil.Error(c, http.StatusBadRequest, errEndDateInvalid)
			return
		}
		q = q.Where("transactions.date < date(?)", end.AddDate(0, 0, 1))
	}

	// Default to 50 transactions
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	transactions := make([]models.Transaction, 0)
	err := q.Limit(limit).Offset(filter.Offset).Find(&transactions).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, transactions)
}

// @Summary		Add transaction
// @Description	Creates a transaction from a manual entry and assigns a category with keyword rules
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201		{object}	httputil.Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/v1/transactions/add [post]
// @Security		Bearer
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	transaction, err := editable.model(httputil.UserID(c))
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	if err := categorizeTransaction(&transaction); err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	if err := models.DB.Create(&transaction).Error; err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Created(c, transaction)
}

// @Summary		Bulk import transactions
// @Description	Imports transactions from an uploaded CSV file. Rows are validated and categorized like manual entries; failures are reported per row and do not fail the import
// @Tags			Transactions
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	httputil.Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			file	formData	file	true	"CSV file"
// @Router			/api/v1/transactions/bulk-import [post]
// @Security		Bearer
func (co Controller) BulkImportTransactions(c *gin.Context) {
	formFile, err := c.FormFile("file")
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(httputil.ErrNoFilePost), httputil.ErrNoFilePost)
		return
	}

	file, err := formFile.Open()
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}
	defer file.Close()

	rows, err := csvimport.Parse(file)
	if err != nil {
		httputil.Error(c, http.StatusBadRequest, err)
		return
	}

	userID := httputil.UserID(c)
	response := BulkImportResponse{Results: make([]TransactionImportResult, 0, len(rows))}

	for i, row := range rows {
		result := TransactionImportResult{Row: i + 1}

		transaction, err := editableFromRow(row).model(userID)
		if err == nil {
			err = categorizeTransaction(&transaction)
		}
		if err == nil {
			err = models.DB.Create(&transaction).Error
		}

		if err != nil {
			s := err.Error()
			result.Error = &s
		} else {
			result.Data = &transaction
			response.Imported++
		}

		response.Results = append(response.Results, result)
	}

	httputil.Success(c, response)
}

// @Summary		Capture receipt
// @Description	Extracts the text of a receipt image and stores the image in the receipt bucket. Structured fields are not extracted yet and always unset
// @Tags			Transactions
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	httputil.Response
// @Failure		400		{object}	httputil.ErrorResponse
// @Failure		500		{object}	httputil.ErrorResponse
// @Param			receipt	formData	file	true	"Receipt image"
// @Router			/api/v1/transactions/receipt [post]
// @Security		Bearer
func (co Controller) CaptureReceipt(c *gin.Context) {
	formFile, err := c.FormFile("receipt")
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(httputil.ErrNoFilePost), httputil.ErrNoFilePost)
		return
	}

	file, err := formFile.Open()
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	receipt, err := co.OCR.ParseReceipt(c.Request.Context(), image)
	if err != nil {
		httputil.Error(c, http.StatusInternalServerError, err)
		return
	}

	path := fmt.Sprintf("%s/%d-%s", httputil.UserID(c), time.Now().UnixMilli(), formFile.Filename)
	url, err := co.Storage.Upload(c.Request.Context(), path, formFile.Header.Get("Content-Type"), image)
	if err != nil {
		httputil.Error(c, http.StatusInternalServerError, err)
		return
	}

	httputil.Success(c, ReceiptCapture{Receipt: receipt, ReceiptURL: url})
}

// @Summary		Approve transaction
// @Description	Sets the approval status of a transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		404	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id		path		string			true	"ID of the transaction"
// @Param			action	body		ApprovalRequest	true	"New status"
// @Router			/api/v1/transactions/{id}/approve [patch]
// @Security		Bearer
func (co Controller) ApproveTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	var body ApprovalRequest
	if err := httputil.BindData(c, &body); err != nil {
		return
	}

	if !slices.Contains(models.ApprovalStatuses, models.ApprovalStatus(body.Action)) {
		httputil.Error(c, http.StatusBadRequest, errApprovalActionInvalid)
		return
	}

	transaction, err := getUserTransaction(c, uri)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	err = models.DB.Model(&transaction).Update("status", models.ApprovalStatus(body.Action)).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, transaction)
}

// @Summary		Recategorize transaction
// @Description	Sets the category of a transaction to a user supplied one and records the correction as categorization feedback
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		404	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id		path		string				true	"ID of the transaction"
// @Param			body	body		RecategorizeRequest	true	"Correction"
// @Router			/api/v1/transactions/{id}/recategorize [patch]
// @Security		Bearer
func (co Controller) RecategorizeTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	var body RecategorizeRequest
	if err := httputil.BindData(c, &body); err != nil {
		return
	}

	transaction, err := getUserTransaction(c, uri)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	// The category reference must belong to the same user
	var category models.Category
	err = models.DB.First(&category, "id = ? AND user_id = ?", body.CategoryID, httputil.UserID(c)).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	err = models.DB.Model(&transaction).Update("category_id", body.CategoryID).Error
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	feedback := categorizer.Feedback{
		UserID:            httputil.UserID(c),
		Description:       body.Description,
		PredictedCategory: body.PredictedCategory,
		CorrectedCategory: category.Name,
		Confidence:        body.Confidence,
	}
	if feedback.Description == "" {
		feedback.Description = transaction.Description
	}
	if feedback.Confidence == 0 {
		feedback.Confidence = transaction.Confidence
	}

	if err := co.Feedback.Record(c.Request.Context(), feedback); err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, transaction)
}

// @Summary		Delete transaction
// @Description	Marks a transaction as deleted. Deleted transactions are excluded from all reads
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.ErrorResponse
// @Failure		404	{object}	httputil.ErrorResponse
// @Failure		500	{object}	httputil.ErrorResponse
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/api/v1/transactions/{id} [delete]
// @Security		Bearer
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		httputil.Error(c, http.StatusBadRequest, httputil.ErrInvalidUUID)
		return
	}

	transaction, err := getUserTransaction(c, uri)
	if err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	if err := models.DB.Delete(&transaction).Error; err != nil {
		httputil.Error(c, httputil.ErrorStatus(err), err)
		return
	}

	httputil.Success(c, gin.H{"id": transaction.ID})
}

// getUserTransaction loads a transaction scoped to the authenticated user.
func getUserTransaction(c *gin.Context, uri URIID) (models.Transaction, error) {
	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ? AND user_id = ?", uri.ID.UUID, httputil.UserID(c)).Error
	if err != nil {
		return models.Transaction{}, err
	}

	return transaction, nil
}

// categorizeTransaction assigns a category to the transaction with the
// keyword rules of the user's categories. Categories are matched in
// creation order, the first match wins.
func categorizeTransaction(transaction *models.Transaction) error {
	var categories []models.Category
	err := models.DB.
		Where("user_id = ?", transaction.UserID).
		Order("datetime(categories.created_at) ASC").
		Find(&categories).Error
	if err != nil {
		return err
	}

	keywords := make([]categorizer.CategoryKeywords, 0, len(categories))
	for _, category := range categories {
		keywords = append(keywords, categorizer.CategoryKeywords{
			Category: category.Name,
			Keywords: category.Keywords,
		})
	}

	result := categorizer.Categorize(transaction.Description, keywords)
	transaction.AICategorized = true
	transaction.Confidence = result.Confidence

	if result.Category != categorizer.Uncategorized {
		for _, category := range categories {
			if category.Name == result.Category {
				id := category.ID
				transaction.CategoryID = &id
				break
			}
		}
	}

	return nil
}
