// Package database manages the gorm connection.
package database

import (
	"database/sql"

	"paylink/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the shared gorm handle, SQLDB its underlying sql.DB.
var DB *gorm.DB
var SQLDB *sql.DB

// Connect opens the database connection.
func Connect(dbConfig gorm.Dialector, _logger gormlogger.Interface) {
	var err error
	DB, err = gorm.Open(dbConfig, &gorm.Config{
		Logger:         _logger,
		TranslateError: true,
	})
	if err != nil {
		logger.ErrorString("Database", "Connect", err.Error())
		panic(err)
	}

	SQLDB, err = DB.DB()
	if err != nil {
		logger.ErrorString("Database", "SQLDB", err.Error())
		panic(err)
	}
}

// AutoMigrate migrates all registered tables.
func AutoMigrate(tables []interface{}) error {
	return DB.AutoMigrate(tables...)
}
