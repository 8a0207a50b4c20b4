package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ecesahin/registrar/internal/app/models"
	"github.com/ecesahin/registrar/internal/app/repositories"
	"github.com/ecesahin/registrar/internal/config"
	"github.com/ecesahin/registrar/internal/pkg/auth"
)

// EnsureAdminUser creates the configured admin account on first startup.
// Safe to call on every boot: if the email already exists nothing happens.
func EnsureAdminUser(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("checking admin user: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating default admin user")

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &models.User{
		Email:    cfg.Admin.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	lgr.Info().Int64("userID", admin.ID).Msg("Default admin user created")
	return nil
}
