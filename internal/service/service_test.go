package service

import (
	"testing"

	"go-labstock/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A single connection keeps every query on the same in-memory DB
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Reagent{},
		&model.Request{},
		&model.RequestItem{},
		&model.WasteContainer{},
		&model.WasteLog{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *model.User {
	t.Helper()
	user := &model.User{Name: "Test User", Email: email, Role: role}
	if err := user.SetPassword("secret123"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedReagent(t *testing.T, db *gorm.DB, name string, quantity float64, unit string) *model.Reagent {
	t.Helper()
	reagent := &model.Reagent{Name: name, Quantity: quantity, Unit: unit}
	if err := db.Create(reagent).Error; err != nil {
		t.Fatalf("seed reagent: %v", err)
	}
	return reagent
}

func seedContainer(t *testing.T, db *gorm.DB, identifier string, capacity, current float64, active bool) *model.WasteContainer {
	t.Helper()
	container := &model.WasteContainer{
		Identifier:    identifier,
		Type:          "SOLVENT",
		Capacity:      capacity,
		CurrentVolume: current,
		IsActive:      active,
	}
	if err := db.Create(container).Error; err != nil {
		t.Fatalf("seed container: %v", err)
	}
	if !active {
		// The model's gorm default:true tag makes Create skip a false
		// zero value, so persist it explicitly.
		if err := db.Model(container).Update("is_active", false).Error; err != nil {
			t.Fatalf("seed container inactive: %v", err)
		}
	}
	return container
}

func reloadReagent(t *testing.T, db *gorm.DB, r *model.Reagent) *model.Reagent {
	t.Helper()
	var out model.Reagent
	if err := db.First(&out, "id = ?", r.ID).Error; err != nil {
		t.Fatalf("reload reagent: %v", err)
	}
	return &out
}

func reloadContainer(t *testing.T, db *gorm.DB, c *model.WasteContainer) *model.WasteContainer {
	t.Helper()
	var out model.WasteContainer
	if err := db.First(&out, "id = ?", c.ID).Error; err != nil {
		t.Fatalf("reload container: %v", err)
	}
	return &out
}
