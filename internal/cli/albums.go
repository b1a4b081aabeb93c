package cli

import (
	"flag"
	"fmt"
)

type AlbumsCommand struct {
	DatabasePath string
	Username     string
}

func NewAlbumsCommand() *AlbumsCommand {
	return &AlbumsCommand{}
}

func (cmd *AlbumsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("albums", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "Owner of the albums (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" {
		return fmt.Errorf("user is required")
	}
	return nil
}

func (cmd *AlbumsCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	user, ok := ctx.lib.Store().GetUser(cmd.Username)
	if !ok {
		fmt.Printf("No user named %q.\n", cmd.Username)
		return nil
	}
	for _, album := range user.Albums() {
		if earliest, latest, ok := album.DateRange(); ok {
			fmt.Printf("%s | %s - %s\n", album,
				earliest.Format("2006-01-02"), latest.Format("2006-01-02"))
		} else {
			fmt.Printf("%s | empty\n", album)
		}
	}
	return nil
}

type AlbumCreateCommand struct {
	DatabasePath string
	Username     string
	Name         string
}

func NewAlbumCreateCommand() *AlbumCreateCommand {
	return &AlbumCreateCommand{}
}

func (cmd *AlbumCreateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("album-create", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "Owner of the album (required)")
	fs.StringVar(&cmd.Name, "name", "", "Album name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" || cmd.Name == "" {
		return fmt.Errorf("user and name are required")
	}
	return nil
}

func (cmd *AlbumCreateCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if !ctx.lib.CreateAlbum(cmd.Username, cmd.Name) {
		fmt.Printf("Could not create album %q (missing user or duplicate name).\n", cmd.Name)
		return nil
	}
	fmt.Printf("Created album %q for %s.\n", cmd.Name, cmd.Username)
	return nil
}

type AlbumRenameCommand struct {
	DatabasePath string
	Username     string
	Name         string
	NewName      string
}

func NewAlbumRenameCommand() *AlbumRenameCommand {
	return &AlbumRenameCommand{}
}

func (cmd *AlbumRenameCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("album-rename", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "Owner of the album (required)")
	fs.StringVar(&cmd.Name, "name", "", "Current album name (required)")
	fs.StringVar(&cmd.NewName, "to", "", "New album name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" || cmd.Name == "" || cmd.NewName == "" {
		return fmt.Errorf("user, name and to are required")
	}
	return nil
}

func (cmd *AlbumRenameCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if !ctx.lib.RenameAlbum(cmd.Username, cmd.Name, cmd.NewName) {
		fmt.Printf("Could not rename album %q (missing album or name already taken).\n", cmd.Name)
		return nil
	}
	fmt.Printf("Renamed album %q to %q.\n", cmd.Name, cmd.NewName)
	return nil
}

type AlbumDeleteCommand struct {
	DatabasePath string
	Username     string
	Name         string
}

func NewAlbumDeleteCommand() *AlbumDeleteCommand {
	return &AlbumDeleteCommand{}
}

func (cmd *AlbumDeleteCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("album-delete", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "Owner of the album (required)")
	fs.StringVar(&cmd.Name, "name", "", "Album name (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" || cmd.Name == "" {
		return fmt.Errorf("user and name are required")
	}
	return nil
}

func (cmd *AlbumDeleteCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if !ctx.lib.DeleteAlbum(cmd.Username, cmd.Name) {
		fmt.Printf("No album named %q for %s.\n", cmd.Name, cmd.Username)
		return nil
	}
	fmt.Printf("Deleted album %q.\n", cmd.Name)
	return nil
}
