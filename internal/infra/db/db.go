// Package db selects and opens the gorm backend for the pharmacy store.
// Connections are deliberately scoped to a single repository call: callers
// open, run one logical operation, and close. There is no pooling and no
// shared handle between calls.
package db

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pharmacy-assistant/internal/domain"
)

// Opener yields a fresh gorm connection. Every repository call goes through
// one Opener invocation paired with a Close.
type Opener func() (*gorm.DB, error)

func SQLiteOpener(path string) Opener {
	return func() (*gorm.DB, error) {
		g, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("sqlite open %s: %w", path, err)
		}
		return g, nil
	}
}

// MySQLOpenerFromEnv builds an opener from the MYSQL_* environment, for
// deployments that already run a shared relational server.
func MySQLOpenerFromEnv() Opener {
	user := os.Getenv("MYSQL_USER")
	pass := os.Getenv("MYSQL_PASSWORD")
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	dbname := os.Getenv("MYSQL_DATABASE")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", user, pass, host, port, dbname)
	return func() (*gorm.DB, error) {
		g, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("mysql open: %w", err)
		}
		return g, nil
	}
}

// Close releases the single underlying connection behind a scoped gorm
// handle. Errors closing are not actionable for the caller and are dropped.
func Close(g *gorm.DB) {
	sqlDB, err := g.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

var seedMedicines = []domain.Medicine{
	{Name: "Amoxicillin", Dosage: "500mg", Quantity: 100, Price: 12.99},
	{Name: "Lisinopril", Dosage: "10mg", Quantity: 50, Price: 15.50},
	{Name: "Metformin", Dosage: "850mg", Quantity: 60, Price: 8.75},
	{Name: "Atorvastatin", Dosage: "20mg", Quantity: 30, Price: 22.00},
	{Name: "Sertraline", Dosage: "50mg", Quantity: 45, Price: 18.25},
}

// Init migrates the medicines and orders tables and seeds the inventory
// with sample rows when it is empty. It uses one scoped connection, like
// every other store access.
func Init(open Opener) error {
	g, err := open()
	if err != nil {
		return err
	}
	defer Close(g)

	if err := g.AutoMigrate(&domain.Medicine{}, &domain.Order{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var count int64
	if err := g.Model(&domain.Medicine{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count medicines: %w", err)
	}
	if count == 0 {
		seed := make([]domain.Medicine, len(seedMedicines))
		copy(seed, seedMedicines)
		if err := g.Create(&seed).Error; err != nil {
			return fmt.Errorf("seed medicines: %w", err)
		}
	}
	return nil
}
