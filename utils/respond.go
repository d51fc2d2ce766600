package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"catalogapi/models"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode string             `json:"status_code"`
	IsSuccess  bool               `json:"is_success"`
	ErrorCode  *string            `json:"error_code"`
	Data       any                `json:"data"`
	Pagination *models.Pagination `json:"pagination"`
}

// Respond writes the envelope with the given HTTP status. An empty
// errorCode is serialized as null.
func Respond(c *gin.Context, isSuccess bool, status int, data any, pagination *models.Pagination, errorCode string) {
	var code *string
	if errorCode != "" {
		code = &errorCode
	}
	c.JSON(status, Response{
		StatusCode: strconv.Itoa(status),
		IsSuccess:  isSuccess,
		ErrorCode:  code,
		Data:       data,
		Pagination: pagination,
	})
}
