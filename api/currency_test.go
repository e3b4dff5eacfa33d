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

func currencyRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "symbol"})
}

func TestCurrencyHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `currencies`").
		WillReturnRows(currencyRows().
			AddRow(1, "人民币", "¥").
			AddRow(2, "美元", "$"))

	router := gin.New()
	router.GET("/currencies", NewCurrencyHandler().List)

	req := httptest.NewRequest("GET", "/currencies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	currencies := resp["data"].(map[string]interface{})["currencies"].([]interface{})
	require.Len(t, currencies, 2)
	first := currencies[0].(map[string]interface{})
	assert.Equal(t, "人民币", first["currency_name"])
	assert.Equal(t, "¥", first["currency_symbol"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyHandler_GetUserCurrency(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(userRows().
			AddRow(1, "user1", "用户一", "hash", "u1@example.com", 0, 2, time.Now(), time.Now()))
	mock.ExpectQuery("SELECT .* FROM `currencies`").
		WillReturnRows(currencyRows().AddRow(2, "美元", "$"))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/user/currency", NewCurrencyHandler().GetUserCurrency)

	req := httptest.NewRequest("GET", "/user/currency", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["currency_id"])
	assert.Equal(t, "美元", data["currency_name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyHandler_SetUserCurrency(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `currencies`").
		WillReturnRows(currencyRows().AddRow(3, "欧元", "€"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/user/currency", NewCurrencyHandler().SetUserCurrency)

	body := `{"currency_id":3}`
	req := httptest.NewRequest("POST", "/user/currency", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "币种设置成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCurrencyHandler_SetUserCurrency_Unknown(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `currencies`").
		WillReturnRows(currencyRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/user/currency", NewCurrencyHandler().SetUserCurrency)

	body := `{"currency_id":99}`
	req := httptest.NewRequest("POST", "/user/currency", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name"})
	for i, name := range []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"} {
		rows.AddRow(i+1, name)
	}
	mock.ExpectQuery("SELECT .* FROM `months`").WillReturnRows(rows)

	router := gin.New()
	router.GET("/months", NewMonthHandler().List)

	req := httptest.NewRequest("GET", "/months", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	months := resp["data"].(map[string]interface{})["months"].([]interface{})
	require.Len(t, months, 12)
	// month_id 即日历月份编号
	july := months[6].(map[string]interface{})
	assert.Equal(t, float64(7), july["month_id"])
	assert.Equal(t, "July", july["month_name"])
	require.NoError(t, mock.ExpectationsWereMet())
}
