package api

import (
	"expense/database"
	"expense/models"

	"github.com/gin-gonic/gin"
)

// MonthHandler 月份处理器
type MonthHandler struct{}

// NewMonthHandler 创建月份处理器
func NewMonthHandler() *MonthHandler {
	return &MonthHandler{}
}

// List 获取月份列表
// @Summary 获取月份列表
// @Description 返回固定的 12 个月份，month_id 即日历月份编号
// @Tags 月份
// @Produce json
// @Success 200 {object} Response{data=[]models.Month} "获取成功"
// @Router /api/months [get]
func (h *MonthHandler) List(c *gin.Context) {
	var months []models.Month
	if err := database.DB.Order("id ASC").Find(&months).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询月份失败"))
		return
	}
	Success(c, gin.H{"months": months})
}
