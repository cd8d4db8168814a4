package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope for all successful API responses.
type Response struct {
	Status string `json:"status" example:"success"`
	Data   any    `json:"data"`
}

// ErrorResponse is the envelope for all failed API responses.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"there is no transaction matching your query"`
}

// Success responds with HTTP 200 and the data wrapped in the success envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// Created responds with HTTP 201 and the data wrapped in the success envelope.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Status: "success", Data: data})
}

// Error responds with the error wrapped in the error envelope.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResponse{Status: "error", Message: err.Error()})
}
