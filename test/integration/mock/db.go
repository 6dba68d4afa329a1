package mock

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/infra/db"
	"github.com/budget-tracker/backend/internal/integration/persistence/model"
)

var once sync.Once
var database *Db

type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens a shared in-memory store with every budget table migrated.
func NewDb() *Db {
	once.Do(func() {
		database = open()
	})

	return database
}

func open() *Db {
	conn, err := db.NewConnection(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		Path:         ":memory:",
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.AutoMigrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	models := map[string]any{}
	for _, m := range model.AllModels() {
		stmt := &gorm.Statement{DB: conn.DB()}
		if err := stmt.Parse(m); err != nil {
			panic(err)
		}
		models[stmt.Schema.Table] = m
	}

	return &Db{
		DbConn: conn.DB(),
		models: models,
	}
}

// ClearDB removes every row while keeping the schema.
func (d *Db) ClearDB() error {
	for table, m := range d.models {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
