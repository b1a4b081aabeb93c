package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/photokeep/photokeep/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

var commands = map[string]func() command{
	"users":         func() command { return cli.NewUsersCommand() },
	"user-add":      func() command { return cli.NewUserAddCommand() },
	"user-remove":   func() command { return cli.NewUserRemoveCommand() },
	"albums":        func() command { return cli.NewAlbumsCommand() },
	"album-create":  func() command { return cli.NewAlbumCreateCommand() },
	"album-rename":  func() command { return cli.NewAlbumRenameCommand() },
	"album-delete":  func() command { return cli.NewAlbumDeleteCommand() },
	"photos":        func() command { return cli.NewPhotosCommand() },
	"photo-add":     func() command { return cli.NewPhotoAddCommand() },
	"photo-remove":  func() command { return cli.NewPhotoRemoveCommand() },
	"photo-caption": func() command { return cli.NewPhotoCaptionCommand() },
	"photo-copy":    func() command { return cli.NewPhotoCopyCommand() },
	"photo-move":    func() command { return cli.NewPhotoMoveCommand() },
	"tag-add":       func() command { return cli.NewTagAddCommand() },
	"tag-remove":    func() command { return cli.NewTagRemoveCommand() },
	"search":        func() command { return cli.NewSearchCommand() },
	"seed-stock":    func() command { return cli.NewSeedStockCommand() },
	"export":        func() command { return cli.NewExportCommand() },
	"audit":         func() command { return cli.NewAuditCommand() },
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	args := os.Args[2:]

	switch name {
	case "-h", "--help", "help":
		printUsage()
		return
	case "version", "--version":
		fmt.Printf("photokeep %s (%s)\n", Version, Commit)
		return
	}

	newCommand, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	cmd := newCommand()
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Manage per-user photo albums with captions, tags and search.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", name)
	}
	fmt.Fprintf(os.Stderr, "\nRun %s <command> -h for command options.\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Environment: DATABASE_PATH, STOCK_DIR, STOCK_MINIMUM, LOG_LEVEL.\n")
}
