package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-labstock/internal/app"
	"go-labstock/internal/config"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"
	"go-labstock/internal/ws"
	"go-labstock/pkg/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1. Load config
	cfg := config.Load()

	// 2. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Reagent{},
		&model.Request{},
		&model.RequestItem{},
		&model.WasteContainer{},
		&model.WasteLog{},
	); err != nil {
		logrus.Fatalf("failed to migrate schema: %v", err)
	}

	// 3. Seed default admin user
	if cfg.SeedAdmin {
		seedAdmin(db)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Build application (wiring lives in internal/app)
	fiberApp := app.Build(db, cfg, wsHub)

	// 6. Run with graceful shutdown
	go func() {
		if err := fiberApp.Listen(":" + cfg.AppPort); err != nil {
			logrus.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	if err := fiberApp.Shutdown(); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	logrus.Info("Server exited")
}

// seedAdmin creates the default admin account if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := "admin@lab.local"
	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	admin := &model.User{
		Name:  "Lab Administrator",
		Email: email,
		Role:  model.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		logrus.Warnf("Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		logrus.Warnf("Failed to create admin user: %v", err)
	} else {
		logrus.Infof("Admin user created: %s / admin123", email)
	}
}
