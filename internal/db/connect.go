package db

import (
	"context"
	"database/sql"

	"github.com/ramidoush/Automatic-PO/internal/logger"

	_ "modernc.org/sqlite"
)

// Connect opens the file-backed sqlite database, creating the file on first
// use. The *sql.DB pool hands a connection to each statement and releases it
// when the statement finishes, so no session outlives a single operation.
func Connect(path string) *sql.DB {
	database, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		logger.Fatal("failed to open database", "path", path, "error", err)
	}

	if err := database.PingContext(context.Background()); err != nil {
		logger.Fatal("failed to ping database", "path", path, "error", err)
	}

	logger.Info("database connected", "path", path)
	return database
}
