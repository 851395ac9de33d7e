package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"campusdesk/internal/domain/ticket"
	"campusdesk/internal/domain/user"
	uservo "campusdesk/internal/domain/user/valueobjects"
	"campusdesk/internal/infrastructure/auth"
	"campusdesk/internal/infrastructure/config"
	"campusdesk/internal/infrastructure/database"
	"campusdesk/internal/infrastructure/persistence/migrations"
	"campusdesk/internal/infrastructure/repository"
	"campusdesk/internal/shared/authorization"
	"campusdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo accounts",
		Long:  `Create one demo account per role plus a sample ticket. Safe to re-run; existing data is left alone.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

type seedUser struct {
	name     string
	email    string
	role     authorization.UserRole
	password string
}

var seedUsers = []seedUser{
	{"Newton Student", "newton@student.test", authorization.RoleStudent, "newton123"},
	{"Charmant Faculty", "charmant@faculty.test", authorization.RoleFaculty, "charmant123"},
	{"Glorion Tech", "glorion@it.test", authorization.RoleTech, "glorion123"},
	{"Bissombolo Admin", "bissombolo@it.test", authorization.RoleAdmin, "bissombolo123"},
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migrations.MigrateAll(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(database.Get())
	ticketRepo := repository.NewTicketRepository(database.Get())
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	if err := seedAccounts(ctx, userRepo, hasher); err != nil {
		return err
	}
	if err := seedSampleTicket(ctx, userRepo, ticketRepo); err != nil {
		return err
	}

	logger.Info("seed complete")
	return nil
}

func seedAccounts(ctx context.Context, userRepo user.Repository, hasher *auth.BcryptPasswordHasher) error {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		logger.Info("users already present, skipping account seed", "count", count)
		return nil
	}

	for _, su := range seedUsers {
		email, err := uservo.NewEmail(su.email)
		if err != nil {
			return fmt.Errorf("invalid seed email %s: %w", su.email, err)
		}

		hash, err := hasher.Hash(su.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		u, err := user.NewUser(email, su.name, hash, su.role)
		if err != nil {
			return fmt.Errorf("failed to build seed user %s: %w", su.email, err)
		}

		if err := userRepo.Save(ctx, u); err != nil {
			return fmt.Errorf("failed to save seed user %s: %w", su.email, err)
		}

		logger.Info("seeded user", "email", su.email, "role", string(su.role))
	}

	return nil
}

func seedSampleTicket(ctx context.Context, userRepo user.Repository, ticketRepo ticket.TicketRepository) error {
	count, err := ticketRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if count > 0 {
		logger.Info("tickets already present, skipping ticket seed", "count", count)
		return nil
	}

	student, err := userRepo.FindByEmail(ctx, "newton@student.test")
	if err != nil {
		return fmt.Errorf("failed to load seed student: %w", err)
	}

	t, err := ticket.NewTicket("Can't connect to campus Wi-Fi", "Wifi times out", student.ID())
	if err != nil {
		return fmt.Errorf("failed to build seed ticket: %w", err)
	}

	if err := ticketRepo.Save(ctx, t); err != nil {
		return fmt.Errorf("failed to save seed ticket: %w", err)
	}

	logger.Info("seeded ticket", "ticket_id", t.ID(), "title", t.Title())
	return nil
}
