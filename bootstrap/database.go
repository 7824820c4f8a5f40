package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"paylink/pkg/config"
	"paylink/pkg/database"
	"paylink/pkg/database/migrations"
	"paylink/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupDB initializes the database and ORM.
func SetupDB() {
	var dbConfig gorm.Dialector
	switch config.Get("database.connection") {
	case "postgresql":
		dbConfig = setupPostgreSQL()
	case "sqlite":
		dbConfig = setupSQLite()
	default:
		panic(errors.New("unsupported database connection type"))
	}

	database.Connect(dbConfig, logger.NewGormLogger())

	setupDBPool()

	if err := database.AutoMigrate(migrations.RegisterTables()); err != nil {
		logger.ErrorString("Database", "AutoMigrate", err.Error())
		return
	}
	logger.InfoString("Database", "AutoMigrate", "schema migration complete")
}

func setupPostgreSQL() gorm.Dialector {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=%s",
		config.Get("database.postgresql.host"),
		config.Get("database.postgresql.port"),
		config.Get("database.postgresql.username"),
		config.Get("database.postgresql.password"),
		config.Get("database.postgresql.database"),
		config.Get("app.timezone"),
	)
	return postgres.New(postgres.Config{
		DSN: dsn,
	})
}

func setupSQLite() gorm.Dialector {
	dbFile := config.Get("database.sqlite.database")
	return sqlite.Open(dbFile)
}

func setupDBPool() {
	database.SQLDB.SetMaxOpenConns(config.GetInt("database.postgresql.max_open_connections"))
	database.SQLDB.SetMaxIdleConns(config.GetInt("database.postgresql.max_idle_connections"))
	database.SQLDB.SetConnMaxLifetime(time.Duration(config.GetInt("database.postgresql.max_life_seconds")) * time.Second)
}
