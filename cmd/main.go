package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/motodeal/motodeal-server/internal/config"
	"github.com/motodeal/motodeal-server/internal/logger"
	"github.com/motodeal/motodeal-server/internal/model"
	"github.com/motodeal/motodeal-server/internal/repository/postgres"
	"github.com/motodeal/motodeal-server/internal/service"
	"github.com/motodeal/motodeal-server/internal/token"
	"github.com/motodeal/motodeal-server/internal/validation"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	userService := service.NewUser(userRepo, tokenManager, logger)

	if err := ensureAdmin(ctx, cfg, userService, userRepo); err != nil {
		logger.Fatal("failed to seed admin user", "error", err)
	}

	logAppVersion()
	logger.Info("storage initialized, awaiting shutdown signal")

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
}

// ensureAdmin creates the bootstrap admin identity when configured and not
// yet present. The admin goes through the same validation pipeline as any
// other user.
func ensureAdmin(ctx context.Context, cfg *config.Config, users *service.User, store model.UserStore) error {
	if cfg.Admin.Email == "" {
		return nil
	}

	email := model.NormalizeEmail(cfg.Admin.Email)
	_, err := store.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	_, err = users.Create(ctx, service.CreateUserParams{
		Name:     cfg.Admin.Name,
		Email:    email,
		Password: cfg.Admin.Password,
		Provider: model.ProviderLocal,
		Role:     "admin",
	})
	var verr *validation.Error
	if errors.As(err, &verr) {
		return fmt.Errorf("admin config rejected: %w", err)
	}
	return err
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
