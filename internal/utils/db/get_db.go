package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB opens the database selected by DB_DRIVER: "sqlite" for a local file
// (DB_PATH), anything else for postgres.
func GetDB() (*gorm.DB, error) {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./brokerage.db"
		}
		return ConnectSQLite(path)
	}

	dbHost := os.Getenv("DB_HOST")
	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // Default PostgreSQL port
	}
	dbName := os.Getenv("DB_NAME")
	return ConnectPostgres(uint(port), dbHost, dbName)
}
