package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/dimko/miniblog/internal/auth"
	"github.com/dimko/miniblog/internal/config"
	"github.com/dimko/miniblog/internal/database"
	"github.com/dimko/miniblog/internal/database/users"
)

// CreateUserCommand registers a user directly against the database, useful
// for bootstrapping a maintainer account before the server is exposed.
type CreateUserCommand struct {
	Username     string
	Password     string
	DatabasePath string
}

func NewCreateUserCommand() *CreateUserCommand {
	return &CreateUserCommand{}
}

func (cmd *CreateUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)

	fs.StringVar(&cmd.Username, "username", "", "Username to register (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password for the new user (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-user [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Register a user directly in the database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s create-user -username dim -password secret123\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" || cmd.Password == "" {
		fs.Usage()
		return fmt.Errorf("username and password are required")
	}

	return nil
}

func (cmd *CreateUserCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	service := auth.NewService(users.NewRepository(db.DB), cfg.Auth)

	user, err := service.Register(cmd.Username, cmd.Password)
	if err != nil {
		return err
	}

	fmt.Printf("Created user %q (id %d)\n", user.Username, user.ID)
	return nil
}
