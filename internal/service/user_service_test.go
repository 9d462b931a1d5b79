package service

import (
	"testing"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
)

func TestCreateUserDefaultsToResearcher(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	user, err := svc.Create(CreateUserInput{
		Name:     "New Hire",
		Email:    "hire@lab.local",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != model.RoleResearcher {
		t.Fatalf("expected RESEARCHER default, got %s", user.Role)
	}
	if !user.CheckPassword("secret123") {
		t.Fatal("expected stored hash to match password")
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))
	seedUser(t, db, "taken@lab.local", model.RoleResearcher)

	_, err := svc.Create(CreateUserInput{
		Name:     "Second",
		Email:    "taken@lab.local",
		Password: "secret123",
	})
	if !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestCreateUserShortPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	_, err := svc.Create(CreateUserInput{
		Name:     "New Hire",
		Email:    "hire@lab.local",
		Password: "abc",
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteOwnAccountRefused(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))
	admin := seedUser(t, db, "admin@lab.local", model.RoleAdmin)

	if err := svc.Delete(admin.ID, admin.ID); !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict deleting own account, got %v", err)
	}
}

func TestDeleteOtherUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))
	admin := seedUser(t, db, "admin@lab.local", model.RoleAdmin)
	target := seedUser(t, db, "res@lab.local", model.RoleResearcher)

	if err := svc.Delete(admin.ID, target.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	users, err := svc.List()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 1 || users[0].ID != admin.ID {
		t.Fatalf("expected only the admin left, got %d users", len(users))
	}
}
