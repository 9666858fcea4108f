// @title           GSS-OS Visitor Access API
// @version         1.0
// @description     Visitor access management for gated estates: single-day credentials, hardware bridge sync and scheduled expiration
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@gss-os.local

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/GSSolutions-CPT/GSS-OS/internal/app/routes"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/models"
	"github.com/GSSolutions-CPT/GSS-OS/internal/domain/services"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/config"
	"github.com/GSSolutions-CPT/GSS-OS/internal/infrastructure/database"
	Logger "github.com/GSSolutions-CPT/GSS-OS/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Missing .env is fine; variables may come from the environment directly
	if err := godotenv.Load(); err != nil {
		Logger.Warning("Could not load .env file: %v", err)
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("WARNING: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Drop and recreate failed: %v", err)
		}
	case "alter":
		log.Println("Running in alter mode, table structure will be altered to match models")
		if err := alterMigrate(db); err != nil {
			log.Fatalf("Alter migration failed: %v", err)
		}
	default:
		log.Println("Running in standard mode, only new columns and tables will be added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Auto migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	printSystemInfo(pool)

	// Listen on all interfaces, not just localhost
	Logger.Info("Server starting on: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models; only adds new columns and tables
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Unit{},
		&models.Profile{},
		&models.Visitor{},
		&models.RetryItem{},
		&models.AuditLog{},
		&models.Announcement{},
		&models.ComplianceLog{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// alterMigrate drops columns the models no longer declare, then auto-migrates
func alterMigrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	// Historic deployments carried extra columns from the hosted-platform
	// prototype; drop them where present
	legacyColumns := map[string][]string{
		"visitors": {"supabase_id", "qr_payload"},
		"profiles": {"supabase_id"},
	}
	for table, columns := range legacyColumns {
		for _, column := range columns {
			if db.Migrator().HasColumn(table, column) {
				log.Printf("Dropping legacy column %s.%s", table, column)
				if _, err := sqlDB.Exec(fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", table, column)); err != nil {
					log.Printf("Failed to drop column %s.%s: %v", table, column, err)
				}
			}
		}
	}

	return autoMigrate(db)
}

// dropAndRecreateTables drops every table and recreates the schema
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"visitors", "retry_items", "audit_logs", "announcements",
		"compliance_logs", "profiles", "units",
	}
	for _, table := range tables {
		log.Printf("Dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("Failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists seeds the default super admin on first boot
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	admin := services.NewAdminService(db, cfg)
	if err := admin.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("Failed to seed default admin account: %v", err)
	}
}

// printSystemInfo logs pool and runtime statistics at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("Database connection pool: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("Goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
