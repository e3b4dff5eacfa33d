package api

import (
	"errors"
	"strconv"

	"expense/database"
	"expense/middleware"
	"expense/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LimitHandler 限额处理器
type LimitHandler struct{}

// NewLimitHandler 创建限额处理器
func NewLimitHandler() *LimitHandler {
	return &LimitHandler{}
}

// SetMonthlyLimitRequest 设置月度限额请求
// Limit 用指针区分「缺失」和「显式 0」：缺失是参数错误，0 表示取消限额
type SetMonthlyLimitRequest struct {
	Year  int      `json:"year" binding:"required" example:"2025"`
	Month int      `json:"month" binding:"required,min=1,max=12" example:"7"`
	Limit *float64 `json:"limit" binding:"required,gte=0" example:"3000.0"`
}

// GetMonthly 查询月度限额
// @Summary 查询月度限额
// @Description 返回当前用户在指定年月的限额，未设置时 monthly_limit 为 0
// @Tags 限额
// @Produce json
// @Security BearerAuth
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1..12" example(7)
// @Success 200 {object} Response "data.monthly_limit 为限额金额"
// @Failure 400 {object} Response "缺少年份或月份"
// @Failure 401 {object} Response "未授权"
// @Router /api/limit [get]
func (h *LimitHandler) GetMonthly(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		BadRequest(c, "year 和 month 为必填参数")
		return
	}

	// 年份行不存在说明这一年从未设置过任何限额
	var yearRow models.Year
	if err := database.DB.Where("year_number = ?", year).First(&yearRow).Error; err != nil {
		Success(c, gin.H{"monthly_limit": models.Cents(0)})
		return
	}

	var limit models.MonthlyLimit
	if err := database.DB.
		Where("user_id = ? AND month_id = ? AND year_id = ?", userID, month, yearRow.ID).
		First(&limit).Error; err != nil {
		Success(c, gin.H{"monthly_limit": models.Cents(0)})
		return
	}

	Success(c, gin.H{"monthly_limit": limit.Amount})
}

// SetMonthly 设置月度限额
// @Summary 设置月度限额
// @Description 设置当前用户在指定年月的限额。已有限额时覆盖，金额为 0 时删除该限额
// @Tags 限额
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetMonthlyLimitRequest true "限额信息"
// @Success 200 {object} Response "设置成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/limit [post]
func (h *LimitHandler) SetMonthly(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SetMonthlyLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "年份、月份和限额均为必填，限额不能为负")
		return
	}

	amount := models.CentsFromFloat(*req.Limit)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 年份行按需创建，只有设置过限额的年份才会出现在表里
		var yearRow models.Year
		err := tx.Where("year_number = ?", req.Year).First(&yearRow).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if amount == 0 {
				return nil // 这一年本来就没有限额，无需删除
			}
			yearRow = models.Year{Number: req.Year}
			if err := tx.Create(&yearRow).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// 金额为 0 表示取消限额
		if amount == 0 {
			return tx.Where("user_id = ? AND month_id = ? AND year_id = ?", userID, req.Month, yearRow.ID).
				Delete(&models.MonthlyLimit{}).Error
		}

		var limit models.MonthlyLimit
		err = tx.Where("user_id = ? AND month_id = ? AND year_id = ?", userID, req.Month, yearRow.ID).
			First(&limit).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			limit = models.MonthlyLimit{
				UserID:  userID,
				MonthID: uint(req.Month),
				YearID:  yearRow.ID,
				Amount:  amount,
			}
			return tx.Create(&limit).Error
		} else if err != nil {
			return err
		}
		return tx.Model(&limit).Update("amount", amount).Error
	})
	if err != nil {
		// 并发写同一 (用户, 月, 年) 时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "该月限额已存在，请重试")
			return
		}
		InternalError(c, SafeErrorMessage(err, "设置限额失败"))
		return
	}

	if amount == 0 {
		SuccessWithMessage(c, "限额已取消", nil)
		return
	}
	SuccessWithMessage(c, "限额设置成功", gin.H{"monthly_limit": amount})
}

// SetGlobalLimitRequest 设置全局限额请求
type SetGlobalLimitRequest struct {
	GlobalLimit float64 `json:"global_limit" binding:"gte=0" example:"5000.0"`
	CurrencyID  *uint   `json:"currency_id" example:"1"`
}

// GetGlobal 查询全局限额
// @Summary 查询全局默认限额
// @Description 返回当前用户的全局默认月限额及其币种
// @Tags 限额
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "data.global_limit 为限额金额"
// @Failure 401 {object} Response "未授权"
// @Router /api/global_limit [get]
func (h *LimitHandler) GetGlobal(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	Success(c, gin.H{
		"global_limit": user.GlobalLimit,
		"currency_id":  user.CurrencyID,
	})
}

// SetGlobal 设置全局限额
// @Summary 设置全局默认限额
// @Description 设置当前用户的全局默认月限额，可同时切换币种
// @Tags 限额
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SetGlobalLimitRequest true "全局限额信息"
// @Success 200 {object} Response "设置成功"
// @Failure 400 {object} Response "参数错误或币种不存在"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/global_limit [post]
func (h *LimitHandler) SetGlobal(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SetGlobalLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "金额不能为负")
		return
	}

	// 先确认用户行还在，0 行 UPDATE 不能区分用户不存在和值未变化
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	updates := map[string]interface{}{
		"global_limit": models.CentsFromFloat(req.GlobalLimit),
	}
	if req.CurrencyID != nil {
		var currency models.Currency
		if err := database.DB.First(&currency, *req.CurrencyID).Error; err != nil {
			BadRequest(c, "币种不存在")
			return
		}
		updates["currency_id"] = *req.CurrencyID
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "设置全局限额失败"))
		return
	}

	SuccessWithMessage(c, "全局限额设置成功", gin.H{"global_limit": updates["global_limit"]})
}
