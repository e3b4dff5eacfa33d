package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yearRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "year_number"})
}

func limitRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "month_id", "year_id", "amount", "created_at", "updated_at"})
}

func TestLimitHandler_GetMonthly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `years`").
		WithArgs(2025).
		WillReturnRows(yearRows().AddRow(1, 2025))
	mock.ExpectQuery("SELECT .* FROM `monthly_limits`").
		WithArgs(1, 7, 1).
		WillReturnRows(limitRows().AddRow(1, 1, 7, 1, 300000, time.Now(), time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/limit", NewLimitHandler().GetMonthly)

	req := httptest.NewRequest("GET", "/limit?year=2025&month=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3000), data["monthly_limit"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_GetMonthly_NotSet(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 年份行不存在即这一年没有任何限额
	mock.ExpectQuery("SELECT .* FROM `years`").
		WithArgs(2030).
		WillReturnRows(yearRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/limit", NewLimitHandler().GetMonthly)

	req := httptest.NewRequest("GET", "/limit?year=2030&month=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["monthly_limit"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetMonthly_CreatesYearAndLimit(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	// 年份行不存在，懒创建
	mock.ExpectQuery("SELECT .* FROM `years`").
		WithArgs(2025).
		WillReturnRows(yearRows())
	mock.ExpectExec("INSERT INTO `years`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	// 限额不存在，插入
	mock.ExpectQuery("SELECT .* FROM `monthly_limits`").
		WillReturnRows(limitRows())
	mock.ExpectExec("INSERT INTO `monthly_limits`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/limit", NewLimitHandler().SetMonthly)

	body := `{"year":2025,"month":7,"limit":3000}`
	req := httptest.NewRequest("POST", "/limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "限额设置成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetMonthly_Overwrites(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `years`").
		WithArgs(2025).
		WillReturnRows(yearRows().AddRow(1, 2025))
	mock.ExpectQuery("SELECT .* FROM `monthly_limits`").
		WillReturnRows(limitRows().AddRow(9, 1, 7, 1, 200000, time.Now(), time.Now()))
	mock.ExpectExec("UPDATE `monthly_limits`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/limit", NewLimitHandler().SetMonthly)

	// 已有限额时必须走 UPDATE 覆盖，而不是删除
	body := `{"year":2025,"month":7,"limit":400}`
	req := httptest.NewRequest("POST", "/limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "限额设置成功", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(400), data["monthly_limit"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetMonthly_MissingLimit(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/limit", NewLimitHandler().SetMonthly)

	// 缺失 limit 字段是参数错误，绝不能落到取消限额的分支
	body := `{"year":2025,"month":7}`
	req := httptest.NewRequest("POST", "/limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp["kind"])
}

func TestLimitHandler_SetMonthly_ZeroDeletes(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `years`").
		WithArgs(2025).
		WillReturnRows(yearRows().AddRow(1, 2025))
	mock.ExpectExec("DELETE FROM `monthly_limits`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/limit", NewLimitHandler().SetMonthly)

	// 显式传 0 才会取消限额
	body := `{"year":2025,"month":7,"limit":0}`
	req := httptest.NewRequest("POST", "/limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "限额已取消", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetMonthly_ZeroWithoutYearIsNoop(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `years`").
		WithArgs(2030).
		WillReturnRows(yearRows())
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/limit", NewLimitHandler().SetMonthly)

	body := `{"year":2030,"month":1,"limit":0}`
	req := httptest.NewRequest("POST", "/limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetMonthly_NegativeAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/limit", NewLimitHandler().SetMonthly)

	body := `{"year":2025,"month":7,"limit":-100}`
	req := httptest.NewRequest("POST", "/limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestLimitHandler_GetGlobal(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows().
			AddRow(1, "user1", "用户一", "hash", "u1@example.com", 500000, 2, time.Now(), time.Now()))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/global_limit", NewLimitHandler().GetGlobal)

	req := httptest.NewRequest("GET", "/global_limit", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(5000), data["global_limit"])
	assert.Equal(t, float64(2), data["currency_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetGlobal_WithCurrency(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 先加载用户行
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows().
			AddRow(1, "user1", "用户一", "hash", "u1@example.com", 0, 1, time.Now(), time.Now()))
	// 校验币种存在
	mock.ExpectQuery("SELECT .* FROM `currencies`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "symbol"}).
			AddRow(2, "美元", "$"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/global_limit", NewLimitHandler().SetGlobal)

	body := `{"global_limit":5000,"currency_id":2}`
	req := httptest.NewRequest("POST", "/global_limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "全局限额设置成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetGlobal_UnknownCurrency(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows().
			AddRow(1, "user1", "用户一", "hash", "u1@example.com", 0, 1, time.Now(), time.Now()))
	mock.ExpectQuery("SELECT .* FROM `currencies`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "symbol"}))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/global_limit", NewLimitHandler().SetGlobal)

	body := `{"global_limit":5000,"currency_id":99}`
	req := httptest.NewRequest("POST", "/global_limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLimitHandler_SetGlobal_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 用户行已不存在时必须 404，而不是 0 行 UPDATE 后假装成功
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(999))
	router.POST("/global_limit", NewLimitHandler().SetGlobal)

	body := `{"global_limit":5000}`
	req := httptest.NewRequest("POST", "/global_limit", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp["kind"])
	require.NoError(t, mock.ExpectationsWereMet())
}
