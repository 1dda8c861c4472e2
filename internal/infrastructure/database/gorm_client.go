package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"hvac_crm/internal/config"
	"hvac_crm/internal/domain/entities"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a gorm handle for cfg.DBDriver (postgres or sqlite).
func Open(cfg config.Config) (*gorm.DB, error) {
	level := logger.Silent
	if cfg.DBDebug {
		level = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(level)}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DatabaseDSN), gcfg)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.DatabaseDSN), gcfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// ConnectGorm opens the relational store, retrying while it starts up, and
// applies pending migrations.
func ConnectGorm(cfg config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < 10; i++ {
		db, err = Open(cfg)
		if err == nil {
			err = db.Exec("SELECT 1").Error
		}
		if err == nil {
			break
		}
		log.Printf("[database] connect attempt=%d driver=%s err=%v", i+1, cfg.DBDriver, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

// Migrate applies the schema migrations in order. Applied ids are tracked by
// gormigrate in its own table.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20261001_create_crm_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&entities.User{},
					&entities.Lead{},
					&entities.Customer{},
					&entities.Employee{},
					&entities.Project{},
					&entities.ProjectActivity{},
					&entities.Quotation{}, &entities.QuotationItem{},
					&entities.Invoice{}, &entities.InvoiceItem{},
					&entities.Payment{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(
					"payments", "invoice_items", "invoices", "quotation_items", "quotations",
					"project_activities", "projects", "employees", "customers", "consultation_requests", "users",
				)
			},
		},
		{
			ID: "20261008_add_field_work_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&entities.SiteVisit{}, &entities.Installation{}, &entities.AMCContract{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("amc_contracts", "installations", "site_visits")
			},
		},
	})
	return m.Migrate()
}

// SeedAdmin creates the first staff account when email and password are set
// and no user with that email exists.
func SeedAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}
	var n int64
	if err := db.Model(&entities.User{}).Where("email = ?", email).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := entities.User{ID: uuid.NewString(), Email: email, Name: "Administrator", Role: "admin", PasswordHash: string(hash)}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	log.Printf("[database] seeded admin user email=%s", email)
	return nil
}
