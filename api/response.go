package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误类别，响应中稳定的机器可读标识
const (
	KindValidation = "validation_error" // 参数缺失或格式错误
	KindAuth       = "auth_error"       // 凭证错误或未登录
	KindForbidden  = "forbidden"        // 无权操作该资源
	KindNotFound   = "not_found"        // 目标行不存在
	KindConflict   = "conflict"         // 自然键冲突（重名、重复限额）
	KindInternal   = "internal_error"   // 存储层意外失败
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Kind    string      `json:"kind,omitempty"` // 仅错误响应携带
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Created 201 创建成功响应
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    201,
		Message: message,
		Data:    data,
	})
}

// Fail 错误响应
func Fail(c *gin.Context, status int, kind, message string) {
	c.JSON(status, Response{
		Code:    status,
		Kind:    kind,
		Message: message,
	})
}

// BadRequest 400 参数错误
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, KindValidation, message)
}

// Unauthorized 401 未授权
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, KindAuth, message)
}

// Forbidden 403 无权操作
func Forbidden(c *gin.Context, message string) {
	Fail(c, http.StatusForbidden, KindForbidden, message)
}

// NotFound 404 不存在
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, KindNotFound, message)
}

// Conflict 409 自然键冲突
func Conflict(c *gin.Context, message string) {
	Fail(c, http.StatusConflict, KindConflict, message)
}

// InternalError 500 服务器错误
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, KindInternal, message)
}
