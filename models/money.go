package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Cents 金额，以分为单位的整数
// 数据库存 bigint，JSON 序列化为元（小数），避免浮点累加误差
type Cents int64

// CentsFromFloat 把以元为单位的金额换算成分，四舍五入到分
func CentsFromFloat(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// Float64 换算回元
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// Mul 乘以件数
func (c Cents) Mul(n int) Cents {
	return c * Cents(n)
}

// MarshalJSON 输出元为单位的数字，如 1250 分 → 12.5
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Float64(), 'f', -1, 64)), nil
}

// UnmarshalJSON 接受数字或字符串形式的元金额
func (c *Cents) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case float64:
		*c = CentsFromFloat(val)
		return nil
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("无法解析金额: %q", val)
		}
		*c = CentsFromFloat(f)
		return nil
	default:
		return fmt.Errorf("无法解析金额: %s", data)
	}
}

// Value 实现 driver.Valuer，存库时写 bigint
func (c Cents) Value() (driver.Value, error) {
	return int64(c), nil
}

// Scan 实现 sql.Scanner
func (c *Cents) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = 0
		return nil
	case int64:
		*c = Cents(v)
		return nil
	case float64:
		// 与 CentsFromFloat 一致，四舍五入而不是向零截断
		*c = Cents(math.Round(v))
		return nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return fmt.Errorf("无法扫描金额: %q", v)
		}
		*c = Cents(n)
		return nil
	default:
		return fmt.Errorf("无法扫描金额: %T", src)
	}
}
