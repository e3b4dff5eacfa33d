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

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建消费类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CategoryCreateRequest 创建类别请求
type CategoryCreateRequest struct {
	CategoryName string `json:"category_name" binding:"required,min=1,max=100" example:"宠物"`
}

// CategoryPayload 类别响应对象
type CategoryPayload struct {
	CategoryID   uint   `json:"category_id"`
	CategoryName string `json:"category_name"`
	IsGlobal     bool   `json:"is_global"`
}

func categoryPayload(cat *models.ExpenseCategory) CategoryPayload {
	return CategoryPayload{
		CategoryID:   cat.ID,
		CategoryName: cat.DisplayName(),
		IsGlobal:     cat.IsGlobal(),
	}
}

// List 获取类别列表
// @Summary 获取消费类别列表
// @Description 返回当前用户可见的有效类别：全局类别 + 自己创建的类别，按名称排序，不含已删除的
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]CategoryPayload} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var cats []models.ExpenseCategory
	if err := database.DB.
		Where("(user_id IS NULL OR user_id = ?) AND is_deleted = ?", userID, false).
		Order("name ASC").
		Find(&cats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询类别失败"))
		return
	}

	payload := make([]CategoryPayload, 0, len(cats))
	for i := range cats {
		payload = append(payload, categoryPayload(&cats[i]))
	}
	Success(c, gin.H{"categories": payload})
}

// Create 创建类别
// @Summary 创建消费类别
// @Description 创建当前用户的个人类别。同名已删除类别会被复活（返回原 category_id），同名有效类别（含全局）返回冲突
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=CategoryPayload} "已复活同名删除类别"
// @Success 201 {object} Response{data=CategoryPayload} "创建成功"
// @Failure 400 {object} Response "名称为空"
// @Failure 409 {object} Response "同名类别已存在"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "类别名称不能为空")
		return
	}
	name := models.NormalizeCategoryName(req.CategoryName)
	if name == "" {
		BadRequest(c, "类别名称不能为空")
		return
	}

	// 同名个人类别：有效则冲突，已删除则复活同一行
	var own models.ExpenseCategory
	err := database.DB.Where("name = ? AND user_id = ?", name, userID).First(&own).Error
	if err == nil {
		if !own.IsDeleted {
			Conflict(c, "类别已存在")
			return
		}
		if err := database.DB.Model(&own).Update("is_deleted", false).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "恢复类别失败"))
			return
		}
		own.IsDeleted = false
		SuccessWithMessage(c, "已恢复同名类别", categoryPayload(&own))
		return
	}

	// 与有效全局类别重名也视为冲突
	var global models.ExpenseCategory
	if err := database.DB.Where("name = ? AND user_id IS NULL AND is_deleted = ?", name, false).
		First(&global).Error; err == nil {
		Conflict(c, "已存在同名的全局类别")
		return
	}

	cat := models.ExpenseCategory{Name: name, UserID: &userID}
	if err := database.DB.Create(&cat).Error; err != nil {
		// 并发创建同名类别时由唯一索引 (user_id, name) 兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			Conflict(c, "类别已存在")
			return
		}
		InternalError(c, SafeErrorMessage(err, "创建类别失败"))
		return
	}

	Created(c, "创建成功", categoryPayload(&cat))
}

// Delete 软删除类别
// @Summary 删除消费类别
// @Description 软删除当前用户自己的类别。已删除的类别再次删除返回 404；全局类别和他人类别不可删除
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 403 {object} Response "全局类别或他人类别"
// @Failure 404 {object} Response "类别不存在或已删除"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var cat models.ExpenseCategory
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}
	// 删除已删除的行不是幂等成功，明确返回 404
	if cat.IsDeleted {
		NotFound(c, "类别已删除")
		return
	}
	// 全局类别没有属主，软删除语义不成立，统一禁止删除
	if cat.IsGlobal() {
		Forbidden(c, "全局类别不可删除")
		return
	}
	if *cat.UserID != userID {
		Forbidden(c, "只能删除自己创建的类别")
		return
	}

	if err := database.DB.Model(&cat).Update("is_deleted", true).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除类别失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
