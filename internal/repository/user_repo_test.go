package repository

import (
	"testing"

	"go-labstock/internal/model"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestUpdatePasswordRewritesHash(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	user := &model.User{Name: "Admin", Email: "admin@lab.local", Role: model.RoleAdmin}
	if err := user.SetPassword("old-secret"); err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("new-secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash new password: %v", err)
	}
	if err := repo.UpdatePassword(user.ID, string(hashed)); err != nil {
		t.Fatalf("update password: %v", err)
	}

	reloaded, err := repo.FindByEmail("admin@lab.local")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if !reloaded.CheckPassword("new-secret") {
		t.Fatal("expected new password to verify")
	}
	if reloaded.CheckPassword("old-secret") {
		t.Fatal("expected old password to stop verifying")
	}
}
