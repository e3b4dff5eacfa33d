package api

import (
	"expense/database"
	"expense/middleware"
	"expense/models"

	"github.com/gin-gonic/gin"
)

// CurrencyHandler 币种处理器
type CurrencyHandler struct{}

// NewCurrencyHandler 创建币种处理器
func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// List 获取币种列表
// @Summary 获取币种列表
// @Description 返回系统支持的所有币种
// @Tags 币种
// @Produce json
// @Success 200 {object} Response{data=[]models.Currency} "获取成功"
// @Router /api/currencies [get]
func (h *CurrencyHandler) List(c *gin.Context) {
	var currencies []models.Currency
	if err := database.DB.Order("id ASC").Find(&currencies).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询币种失败"))
		return
	}
	Success(c, gin.H{"currencies": currencies})
}

// GetUserCurrency 查询当前用户币种
// @Summary 查询当前用户币种
// @Description 返回当前用户展示金额使用的币种
// @Tags 币种
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.Currency} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/user/currency [get]
func (h *CurrencyHandler) GetUserCurrency(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	var currency models.Currency
	if err := database.DB.First(&currency, user.CurrencyID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询币种失败"))
		return
	}
	Success(c, currency)
}

// SetUserCurrencyRequest 设置用户币种请求
type SetUserCurrencyRequest struct {
	CurrencyID uint `json:"currency_id" binding:"required" example:"2"`
}

// SetUserCurrency 设置当前用户币种
// @Summary 设置当前用户币种
// @Description 切换当前用户展示金额使用的币种
// @Tags 币种
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetUserCurrencyRequest true "币种信息"
// @Success 200 {object} Response{data=models.Currency} "设置成功"
// @Failure 400 {object} Response "币种不存在"
// @Failure 401 {object} Response "未授权"
// @Router /api/user/currency [post]
func (h *CurrencyHandler) SetUserCurrency(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SetUserCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "currency_id 为必填参数")
		return
	}

	var currency models.Currency
	if err := database.DB.First(&currency, req.CurrencyID).Error; err != nil {
		BadRequest(c, "币种不存在")
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("currency_id", req.CurrencyID).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "设置币种失败"))
		return
	}

	SuccessWithMessage(c, "币种设置成功", currency)
}
