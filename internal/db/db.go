package db

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/XSAM/otelsql"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ormlab/orgstore/internal/config"
	"github.com/ormlab/orgstore/internal/model"
)

// Connect opens the backing store with OpenTelemetry instrumentation and
// wraps it in a GORM session. The sqlite driver is the default and targets a
// local file; postgres is selected via config for a real deployment.
func Connect(cfg config.Database) (*gorm.DB, error) {
	var (
		sqlDB     *sql.DB
		dialector gorm.Dialector
		err       error
	)

	switch cfg.Driver {
	case "sqlite", "":
		// _foreign_keys=on so the non-nullable user->organization FK is
		// actually enforced by sqlite.
		dsn := cfg.Path + "?_foreign_keys=on"
		sqlDB, err = otelsql.Open("sqlite3", dsn,
			otelsql.WithAttributes(
				semconv.DBSystemSqlite,
				semconv.DBName(cfg.Path),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		dialector = sqlite.Dialector{DriverName: "sqlite3", DSN: dsn, Conn: sqlDB}

	case "postgres":
		sqlDB, err = otelsql.Open("postgres", cfg.DSN,
			otelsql.WithAttributes(
				semconv.DBSystemPostgreSQL,
			),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		dialector = postgres.New(postgres.Config{Conn: sqlDB})

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	// Register database stats for metrics
	err = otelsql.RegisterDBStatsMetrics(sqlDB,
		otelsql.WithAttributes(
			semconv.DBSystemKey.String(cfg.Driver),
		),
	)
	if err != nil {
		log.Printf("Warning: failed to register database stats metrics: %v", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ORM session: %w", err)
	}

	log.Printf("✓ Connected to %s database (OpenTelemetry enabled)", cfg.Driver)
	return gdb, nil
}

// Migrate creates the organizations and users tables when missing. Used by
// the API server, which must not destroy existing data.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&model.Organization{}, &model.User{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ResetSchema drops both tables and recreates them from the model
// definitions. The demo runs this on every invocation, so the file store is
// never durable across runs.
func ResetSchema(gdb *gorm.DB) error {
	if err := gdb.Migrator().DropTable(&model.User{}, &model.Organization{}); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := Migrate(gdb); err != nil {
		return err
	}
	log.Println("✓ Schema dropped and recreated")
	return nil
}
