package service

import (
	"testing"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
	"go-labstock/pkg/jwt"
)

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	user := seedUser(t, db, "admin@lab.local", model.RoleAdmin)

	response, err := svc.Login("admin@lab.local", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if response.Token == "" {
		t.Fatal("expected a token")
	}
	if response.User.Email != user.Email || response.User.Role != model.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", response.User)
	}

	claims, err := jwt.ValidateToken(response.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != model.RoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))
	seedUser(t, db, "admin@lab.local", model.RoleAdmin)

	_, err := svc.Login("admin@lab.local", "wrong")
	if !apperror.IsKind(err, apperror.KindInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepo(db))

	_, err := svc.Login("ghost@lab.local", "secret123")
	if !apperror.IsKind(err, apperror.KindInvalidCredentials) {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}
