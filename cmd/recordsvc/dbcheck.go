package main

import (
	"fmt"
	"os"

	"recordsvc/internal/server"

	"github.com/spf13/cobra"
)

var dbcheckCmd = &cobra.Command{
	Use:   "dbcheck",
	Short: "Inspect the SQLite record database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDBCheck()
	},
}

func runDBCheck() error {
	path := flagDB
	if path == "" {
		path = os.Getenv("RS_DB")
	}
	if path == "" {
		return fmt.Errorf("dbcheck needs --db or RS_DB")
	}

	db, err := server.OpenDB(path)
	if err != nil {
		return fmt.Errorf("open db %s: %w", path, err)
	}
	defer db.Close()

	if err := server.RunMigrations(db); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' ORDER BY name;`)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	fmt.Println("Tables:")
	for rows.Next() {
		var name string
		_ = rows.Scan(&name)
		fmt.Println(" -", name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	n, err := server.NewSQLiteStore(db).Count()
	if err != nil {
		return err
	}
	fmt.Println("Records:", n)
	return nil
}
