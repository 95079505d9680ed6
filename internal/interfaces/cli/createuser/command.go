// Package createuser implements the account bootstrap command, used to
// create the first superuser before the admin API is reachable.
package createuser

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	userUsecases "switchboard/internal/application/user/usecases"
	"switchboard/internal/infrastructure/auth"
	"switchboard/internal/infrastructure/config"
	"switchboard/internal/infrastructure/database"
	"switchboard/internal/infrastructure/repository"
	"switchboard/internal/shared/logger"
	"switchboard/internal/shared/utils"
)

type userInput struct {
	Login    string `json:"login" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=8"`
}

var (
	env         string
	login       string
	password    string
	isSuperuser bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create an admin user",
		Long:  `Create an admin user directly in the database, bypassing the HTTP API.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&login, "login", "l", "", "Login for the new user (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for the new user (required)")
	cmd.Flags().BoolVarP(&isSuperuser, "superuser", "s", false, "Grant the superuser bit")
	cmd.MarkFlagRequired("login")
	cmd.MarkFlagRequired("password")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if err := utils.ValidateStruct(userInput{Login: login, Password: password}); err != nil {
		return err
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	userRepo := repository.NewUserRepository(database.Get(), log)
	hasher := auth.NewPasswordHasher(cfg.Auth.Password.BcryptCost)

	createUser := userUsecases.NewCreateUserUseCase(userRepo, hasher, log)
	response, err := createUser.Execute(context.Background(), userUsecases.CreateUserCommand{
		Login:       login,
		Password:    password,
		IsSuperuser: isSuperuser,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("user %q created with ID %d (superuser: %t)\n", response.Login, response.ID, response.IsSuperuser)
	return nil
}
