package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/church-ledger/backend/internal/infra/db"
	"github.com/church-ledger/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var ledgerDb *Db

// Db is a shared in-memory SQLite ledger migrated with every model.
type Db struct {
	DbConn *gorm.DB
	tables map[string]any
}

// NewDb opens the shared ledger database on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		ledgerDb = open()
	})
	return ledgerDb
}

func open() *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := db.Open(sqlite.Dialector{Conn: sqlDB})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}
	if err := db.Migrate(conn); err != nil {
		panic(err)
	}

	tables := make(map[string]any)
	for _, m := range model.All() {
		stmt := &gorm.Statement{DB: conn}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		tables[stmt.Schema.Table] = m
	}

	return &Db{DbConn: conn, tables: tables}
}

// ClearDB deletes every row, children before parents.
func (d *Db) ClearDB() error {
	order := []string{
		"custom_field_values",
		"custom_fields",
		"budget_categories",
		"budget_plans",
		"collections",
		"expenses",
		"refresh_tokens",
		"users",
	}
	for _, table := range order {
		if _, ok := d.tables[table]; !ok {
			return fmt.Errorf("unknown table %s", table)
		}
		if err := d.DbConn.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.tables[table]
	return m, ok
}
