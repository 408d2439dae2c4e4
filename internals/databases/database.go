package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skbudget_backend/internals/configs"
	allocationModel "skbudget_backend/internals/features/budget/allocations/model"
	budgetModel "skbudget_backend/internals/features/budget/budgets/model"
	limitModel "skbudget_backend/internals/features/budget/classification_limits/model"
	classificationModel "skbudget_backend/internals/features/budget/classifications/model"
	fiscalYearModel "skbudget_backend/internals/features/budget/fiscal_years/model"
	objectModel "skbudget_backend/internals/features/budget/objects_of_expenditure/model"
	procurementModel "skbudget_backend/internals/features/procurement/requests/model"
	programModel "skbudget_backend/internals/features/programs/programs/model"
	profileModel "skbudget_backend/internals/features/system/profile/model"
	officialModel "skbudget_backend/internals/features/system/sk_officials/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=skbudget&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// fire a light ping so the pool is filled and ready
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// =======================
// AUTO MIGRATE
// =======================
func Migrate() {
	if err := DB.AutoMigrate(
		&fiscalYearModel.FiscalYear{},
		&budgetModel.Budget{},
		&classificationModel.BudgetClassification{},
		&limitModel.BudgetClassificationLimit{},
		&objectModel.ObjectOfExpenditure{},
		&programModel.Program{},
		&programModel.ProgramDocument{},
		&allocationModel.BudgetAllocation{},
		&procurementModel.ProcurementRequest{},
		&procurementModel.ProcurementApproval{},
		&procurementModel.ProcurementProof{},
		&officialModel.SkOfficial{},
		&profileModel.SystemProfile{},
	); err != nil {
		log.Fatalf("❌ Auto migrate failed: %v", err)
	}
	log.Println("✅ Auto migrate done.")
}
