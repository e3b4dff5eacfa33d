package api

import (
	"log"
	"strconv"
	"time"

	"expense/config"
	"expense/database"
	"expense/middleware"
	"expense/models"
	"expense/service"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct {
	cfg   *config.Config
	email *service.EmailService
}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler(cfg *config.Config) *ExpenseHandler {
	return &ExpenseHandler{
		cfg:   cfg,
		email: service.NewEmailService(&cfg.Email),
	}
}

// ExpensePayload 消费记录响应对象
type ExpensePayload struct {
	ExpenseID           uint         `json:"expense_id"`
	ExpenseName         string       `json:"expense_name"`
	ExpenseItemPrice    models.Cents `json:"expense_item_price"`
	ExpenseCategoryID   uint         `json:"expense_category_id"`
	ExpenseCategoryName string       `json:"expense_category_name"`
	ExpenseDescription  string       `json:"expense_description"`
	ExpenseItemCount    int          `json:"expense_item_count"`
	ExpenditureDate     string       `json:"expenditure_date"`
}

func expensePayload(e *models.Expense, categoryNames map[uint]string) ExpensePayload {
	name, ok := categoryNames[e.CategoryID]
	if !ok {
		name = "未分类"
	}
	return ExpensePayload{
		ExpenseID:           e.ID,
		ExpenseName:         e.Name,
		ExpenseItemPrice:    e.Price,
		ExpenseCategoryID:   e.CategoryID,
		ExpenseCategoryName: name,
		ExpenseDescription:  e.Description,
		ExpenseItemCount:    e.Count,
		ExpenditureDate:     e.SpentOn.Format("2006-01-02"),
	}
}

// loadCategoryNames 一次查询把涉及的类别名装进内存映射，避免每条记录单独查库
func loadCategoryNames(expenses []models.Expense) map[uint]string {
	names := make(map[uint]string)
	if len(expenses) == 0 {
		return names
	}
	ids := make([]uint, 0, len(expenses))
	seen := make(map[uint]bool)
	for i := range expenses {
		if !seen[expenses[i].CategoryID] {
			seen[expenses[i].CategoryID] = true
			ids = append(ids, expenses[i].CategoryID)
		}
	}
	var cats []models.ExpenseCategory
	if err := database.DB.Where("id IN ?", ids).Find(&cats).Error; err != nil {
		log.Printf("加载类别名称失败: %v", err)
		return names
	}
	for i := range cats {
		names[cats[i].ID] = cats[i].DisplayName()
	}
	return names
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	Year    int               `json:"year" binding:"required"`
	Month   int               `json:"month" binding:"required,min=1,max=12"`
	Expense ExpenseItemFields `json:"expense" binding:"required"`
}

// ExpenseItemFields 消费记录明细
type ExpenseItemFields struct {
	Name        string  `json:"name" binding:"max=200" example:"午餐"`
	Amount      float64 `json:"amount" binding:"required,gt=0" example:"50.0"`
	CategoryID  uint    `json:"category_id" binding:"required" example:"1"`
	Date        string  `json:"date" binding:"omitempty" example:"2025-07-05"`
	Description string  `json:"description" binding:"max=255"`
	Count       int     `json:"expense_item_count" binding:"omitempty,min=1" example:"1"`
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 新增一条消费记录。date 缺省时取 (year, month) 的第一天；类别必须是当前用户可见的有效类别
// @Tags 消费记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 201 {object} Response "创建成功，data.expense_id 为新记录ID"
// @Failure 400 {object} Response "参数错误或类别不可用"
// @Failure 401 {object} Response "未授权"
// @Router /api/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "年份、月份和消费明细均为必填")
		return
	}

	// 解析日期，缺省为当月第一天
	var spentOn time.Time
	if req.Expense.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Expense.Date, time.Local)
		if err != nil {
			BadRequest(c, "日期格式错误，应为: 2006-01-02")
			return
		}
		spentOn = t
	} else {
		spentOn = time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.Local)
	}

	// 类别必须存在、未删除、且对当前用户可见
	var cat models.ExpenseCategory
	if err := database.DB.
		Where("id = ? AND is_deleted = ? AND (user_id IS NULL OR user_id = ?)",
			req.Expense.CategoryID, false, userID).
		First(&cat).Error; err != nil {
		BadRequest(c, "无效的消费类别")
		return
	}

	count := req.Expense.Count
	if count <= 0 {
		count = 1
	}

	exp := models.Expense{
		UserID:      userID,
		Name:        req.Expense.Name,
		Price:       models.CentsFromFloat(req.Expense.Amount),
		CategoryID:  req.Expense.CategoryID,
		Description: req.Expense.Description,
		Count:       count,
		SpentOn:     spentOn,
	}

	if err := database.DB.Create(&exp).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建消费记录失败"))
		return
	}

	// 超限提醒：仅在邮件服务启用时查询限额，发送不阻塞响应
	if h.cfg.Email.Enabled {
		h.notifyIfOverLimit(userID, spentOn)
	}

	Created(c, "创建成功", gin.H{"expense_id": exp.ID})
}

// notifyIfOverLimit 创建记录后检查当月限额，超限则发送提醒邮件
func (h *ExpenseHandler) notifyIfOverLimit(userID uint, spentOn time.Time) {
	year, month := spentOn.Year(), int(spentOn.Month())

	var yearRow models.Year
	if err := database.DB.Where("year_number = ?", year).First(&yearRow).Error; err != nil {
		return // 该年没有限额
	}
	var limit models.MonthlyLimit
	if err := database.DB.
		Where("user_id = ? AND month_id = ? AND year_id = ?", userID, month, yearRow.ID).
		First(&limit).Error; err != nil {
		return
	}

	start, end := models.MonthRange(year, month)
	var totalCents int64
	database.DB.Model(&models.Expense{}).
		Select("COALESCE(SUM(expense_item_price * expense_item_count), 0)").
		Where("user_id = ? AND expenditure_date >= ? AND expenditure_date < ?", userID, start, end).
		Scan(&totalCents)

	if models.Cents(totalCents) <= limit.Amount {
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil || user.Email == "" {
		return
	}

	total := models.Cents(totalCents)
	go func() {
		if err := h.email.SendLimitAlertEmail(user.Email, user.Name, year, month, total, limit.Amount); err != nil {
			log.Printf("发送超限提醒邮件失败 (user=%d): %v", userID, err)
		}
	}()
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 返回当前用户在指定年月内的消费记录，区间为 [当月第一天, 次月第一天)
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param year query int true "年份" example(2025)
// @Param month query int true "月份 1..12" example(7)
// @Success 200 {object} Response{data=[]ExpensePayload} "获取成功"
// @Failure 400 {object} Response "缺少年份或月份"
// @Failure 401 {object} Response "未授权"
// @Router /api/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		BadRequest(c, "year 和 month 为必填参数")
		return
	}

	start, end := models.MonthRange(year, month)
	var expenses []models.Expense
	if err := database.DB.
		Where("user_id = ? AND expenditure_date >= ? AND expenditure_date < ?", userID, start, end).
		Order("expenditure_date ASC, id ASC").
		Find(&expenses).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询消费记录失败"))
		return
	}

	names := loadCategoryNames(expenses)
	payload := make([]ExpensePayload, 0, len(expenses))
	for i := range expenses {
		payload = append(payload, expensePayload(&expenses[i], names))
	}
	Success(c, payload)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 硬删除当前用户自己的一条消费记录
// @Tags 消费记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "消费记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 401 {object} Response "未授权"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	// 他人的记录与不存在的记录同样返回 404，不泄露存在性
	var exp models.Expense
	if err := database.DB.Where("id = ? AND user_id = ?", id64, userID).First(&exp).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&exp).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
