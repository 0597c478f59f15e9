// Command seed-admin creates an admin account directly in the database. Admin creation over
// HTTP requires an admin token, so the first account comes from here.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/api/http/handlers"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/config"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/observability"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/persistence"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/service"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

func main() {
	var in service.AdminInput
	flag.StringVar(&in.FirstName, "first-name", "", "first name")
	flag.StringVar(&in.LastName, "last-name", "", "last name")
	flag.StringVar(&in.UserName, "username", "", "login user name (4-15 characters)")
	flag.StringVar(&in.Email, "email", "", "email address")
	flag.StringVar(&in.Phone, "phone", "", "phone number")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: SEED_ADMIN_PASSWORD=... seed-admin -first-name F -last-name L -username U -email E -phone P")
		flag.PrintDefaults()
	}
	flag.Parse()

	in.Password = os.Getenv("SEED_ADMIN_PASSWORD")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger, cfg.App.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	admins := service.NewAdminService(repository.NewAdminRepository(pg.PoolHandle()), cfg.Auth.BcryptCost)
	admin, err := admins.Create(ctx, in)
	if err != nil {
		de := handlers.AdminErrors.Translate(err)
		if de.Code == apperrors.CodeInternal {
			logger.Fatal("failed to create admin", zap.Error(err))
		}
		fmt.Fprintln(os.Stderr, de.Message)
		for field, msg := range de.Details {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", field, msg)
		}
		os.Exit(1)
	}
	logger.Info("admin created", zap.String("admin_id", admin.ID), zap.String("user_name", admin.UserName))
}
