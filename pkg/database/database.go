package database

import (
	"fmt"
	"log"
	"quizmaster_backend/internal/config"
	"quizmaster_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.QuizResult{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed the demo account unauthenticated result rows fall back to.
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count == 0 {
		db.Create(&model.User{
			Username: "demo",
			Email:    "demo@quizmaster.local",
			Password: "-",
		})
	}

	return db, nil
}
