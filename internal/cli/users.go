package cli

import (
	"flag"
	"fmt"
	"sort"

	"github.com/photokeep/photokeep/internal/entities"
)

type UsersCommand struct {
	DatabasePath string
}

func NewUsersCommand() *UsersCommand {
	return &UsersCommand{}
}

func (cmd *UsersCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database (default from DATABASE_PATH)")
	return fs.Parse(args)
}

func (cmd *UsersCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	usernames := ctx.lib.Store().Usernames()
	sort.Strings(usernames)
	for _, username := range usernames {
		user, _ := ctx.lib.Store().GetUser(username)
		fmt.Printf("%s (%d albums)\n", username, len(user.Albums()))
	}
	return nil
}

type UserAddCommand struct {
	DatabasePath string
	Username     string
}

func NewUserAddCommand() *UserAddCommand {
	return &UserAddCommand{}
}

func (cmd *UserAddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("user-add", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "name", "", "Username to create (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

func (cmd *UserAddCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if user := ctx.lib.AddUser(cmd.Username); user == nil {
		fmt.Printf("A user named %q already exists.\n", cmd.Username)
		return nil
	}
	fmt.Printf("Created user %q.\n", cmd.Username)
	return nil
}

type UserRemoveCommand struct {
	DatabasePath string
	Username     string
}

func NewUserRemoveCommand() *UserRemoveCommand {
	return &UserRemoveCommand{}
}

func (cmd *UserRemoveCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("user-remove", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "name", "", "Username to remove (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

func (cmd *UserRemoveCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if !ctx.lib.RemoveUser(cmd.Username) {
		if cmd.Username == entities.AdminUsername {
			fmt.Println("The admin user cannot be removed.")
		} else {
			fmt.Printf("No user named %q.\n", cmd.Username)
		}
		return nil
	}
	fmt.Printf("Removed user %q.\n", cmd.Username)
	return nil
}
