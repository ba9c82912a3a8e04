package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 状态响应
type StatusResponse struct {
	Status string `json:"status"`
	Token  string `json:"token,omitempty"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgInvalidBody = "invalid request body"
	msgInternal    = "internal error"
)

// Success 成功响应 (200)，data 原样输出
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Status 状态响应
func Status(c *gin.Context, code int, status string) {
	c.JSON(code, StatusResponse{Status: status})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

// InternalServerError 500 错误响应，不向调用方暴露错误细节
func InternalServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgInternal})
}
