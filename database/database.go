package database

import (
	"fmt"
	"log"

	"expense/config"
	"expense/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接并播种参考数据
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// 将驱动层唯一键冲突翻译为 gorm.ErrDuplicatedKey
		// 类别 (user_id, name) 和月限额 (user_id, month_id, year_id) 的冲突以此为准
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Currency{},
		&models.Month{},
		&models.Year{},
		&models.MonthlyLimit{},
		&models.ExpenseCategory{},
		&models.Expense{},
	); err != nil {
		return err
	}

	if err := Seed(DB); err != nil {
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// Seed 播种静态参考数据（仅当对应表为空时）
func Seed(db *gorm.DB) error {
	// 月份表：month_id 固定等于日历月份 1..12
	var monthCount int64
	db.Model(&models.Month{}).Count(&monthCount)
	if monthCount == 0 {
		months := models.DefaultMonths()
		if err := db.Create(&months).Error; err != nil {
			return fmt.Errorf("初始化月份失败: %w", err)
		}
		log.Printf("已初始化 %d 个月份", len(months))
	}

	// 币种表
	var currencyCount int64
	db.Model(&models.Currency{}).Count(&currencyCount)
	if currencyCount == 0 {
		currencies := models.DefaultCurrencies()
		if err := db.Create(&currencies).Error; err != nil {
			return fmt.Errorf("初始化币种失败: %w", err)
		}
		log.Printf("已初始化 %d 个币种", len(currencies))
	}

	// 全局消费类别（user_id 为 NULL）
	var catCount int64
	db.Model(&models.ExpenseCategory{}).Where("user_id IS NULL").Count(&catCount)
	if catCount == 0 {
		var cats []models.ExpenseCategory
		for _, name := range models.DefaultCategories() {
			cats = append(cats, models.ExpenseCategory{
				Name: models.NormalizeCategoryName(name),
			})
		}
		if err := db.Create(&cats).Error; err != nil {
			return fmt.Errorf("初始化全局类别失败: %w", err)
		}
		log.Printf("已初始化 %d 个全局类别", len(cats))
	}

	// 年份表按需懒创建，不播种
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
