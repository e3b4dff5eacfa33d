package api

import (
	"fmt"
	"strconv"
	"time"

	"expense/database"
	"expense/middleware"
	"expense/models"

	"github.com/gin-gonic/gin"
)

// SummaryHandler 消费汇总处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建消费汇总处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// CategoryStat 单个类别的小计
type CategoryStat struct {
	Total models.Cents `json:"total"`
	Count int          `json:"count"`
}

// SummaryPayload 汇总响应对象
type SummaryPayload struct {
	Type              string                   `json:"type"`
	Period            string                   `json:"period"`
	TotalAmount       models.Cents             `json:"total_amount"`
	TotalCount        int                      `json:"total_count"`
	CategoryBreakdown map[string]*CategoryStat `json:"category_breakdown"`
	MonthlyBreakdown  map[string]models.Cents  `json:"monthly_breakdown,omitempty"`
	Expenses          []ExpensePayload         `json:"expenses"`
}

// Get 获取消费汇总
// @Summary 获取消费汇总
// @Description 按月 (type=monthly&year&month)、按年 (type=yearly&year) 或自定义区间 (type=custom&start_date&end_date) 汇总当前用户的消费。金额为单价 × 数量的累计；按年汇总时额外返回 12 个月的分布
// @Tags 汇总
// @Produce json
// @Security BearerAuth
// @Param type query string true "汇总类型" Enums(monthly, yearly, custom)
// @Param year query int false "年份，monthly/yearly 必填" example(2025)
// @Param month query int false "月份 1..12，monthly 必填" example(7)
// @Param start_date query string false "起始日期（含），custom 必填" example(2025-01-01)
// @Param end_date query string false "结束日期（含），custom 必填" example(2025-03-31)
// @Success 200 {object} Response "data.summary 为汇总结果"
// @Failure 400 {object} Response "参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/summary [get]
func (h *SummaryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	summaryType := c.Query("type")
	var start, end time.Time
	var period string

	switch summaryType {
	case "monthly":
		year, err1 := strconv.Atoi(c.Query("year"))
		month, err2 := strconv.Atoi(c.Query("month"))
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			BadRequest(c, "按月汇总需要 year 和 month 参数")
			return
		}
		start, end = models.MonthRange(year, month)
		period = fmt.Sprintf("%04d-%02d", year, month)
	case "yearly":
		year, err := strconv.Atoi(c.Query("year"))
		if err != nil {
			BadRequest(c, "按年汇总需要 year 参数")
			return
		}
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		end = start.AddDate(1, 0, 0)
		period = strconv.Itoa(year)
	case "custom":
		startDate, err1 := time.ParseInLocation("2006-01-02", c.Query("start_date"), time.Local)
		endDate, err2 := time.ParseInLocation("2006-01-02", c.Query("end_date"), time.Local)
		if err1 != nil || err2 != nil {
			BadRequest(c, "自定义汇总需要 start_date 和 end_date 参数，格式: 2006-01-02")
			return
		}
		if endDate.Before(startDate) {
			BadRequest(c, "end_date 不能早于 start_date")
			return
		}
		// 两端日期都包含在区间内
		start, end = startDate, endDate.AddDate(0, 0, 1)
		period = c.Query("start_date") + " ~ " + c.Query("end_date")
	default:
		BadRequest(c, "type 必须为 monthly、yearly 或 custom")
		return
	}

	var expenses []models.Expense
	if err := database.DB.
		Where("user_id = ? AND expenditure_date >= ? AND expenditure_date < ?", userID, start, end).
		Order("expenditure_date ASC, id ASC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询消费记录失败"))
		return
	}

	names := loadCategoryNames(expenses)

	summary := SummaryPayload{
		Type:              summaryType,
		Period:            period,
		TotalCount:        len(expenses),
		CategoryBreakdown: make(map[string]*CategoryStat),
		Expenses:          make([]ExpensePayload, 0, len(expenses)),
	}
	if summaryType == "yearly" {
		// 12 个月全部出现，没有消费的月份为 0
		summary.MonthlyBreakdown = make(map[string]models.Cents, 12)
		for m := time.January; m <= time.December; m++ {
			summary.MonthlyBreakdown[m.String()] = 0
		}
	}

	for i := range expenses {
		e := &expenses[i]
		total := e.Total()
		summary.TotalAmount += total

		name, ok := names[e.CategoryID]
		if !ok {
			name = "未分类"
		}
		stat, ok := summary.CategoryBreakdown[name]
		if !ok {
			stat = &CategoryStat{}
			summary.CategoryBreakdown[name] = stat
		}
		stat.Total += total
		stat.Count++

		if summary.MonthlyBreakdown != nil {
			summary.MonthlyBreakdown[e.SpentOn.Month().String()] += total
		}
		summary.Expenses = append(summary.Expenses, expensePayload(e, names))
	}

	Success(c, gin.H{"summary": summary})
}
