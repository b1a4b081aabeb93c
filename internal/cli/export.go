package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/photokeep/photokeep/internal/entities"
)

// Export document shape: one object per user, albums and photos in
// library order. Shared photos appear once per album holding them; the
// file path is the identity readers should join on.
type (
	exportPhoto struct {
		FilePath  string         `json:"file_path"`
		Caption   string         `json:"caption,omitempty"`
		DateTaken time.Time      `json:"date_taken"`
		Tags      []entities.Tag `json:"tags,omitempty"`
	}
	exportAlbum struct {
		Name   string        `json:"name"`
		Photos []exportPhoto `json:"photos"`
	}
	exportUser struct {
		Username string        `json:"username"`
		Albums   []exportAlbum `json:"albums"`
	}
)

type ExportCommand struct {
	DatabasePath string
	Output       string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Output, "out", "", "Output file (default stdout)")
	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	usernames := ctx.lib.Store().Usernames()
	sort.Strings(usernames)

	var doc []exportUser
	for _, username := range usernames {
		user, _ := ctx.lib.Store().GetUser(username)
		eu := exportUser{Username: username, Albums: []exportAlbum{}}
		for _, album := range user.Albums() {
			ea := exportAlbum{Name: album.Name(), Photos: []exportPhoto{}}
			for _, photo := range album.Photos() {
				ea.Photos = append(ea.Photos, exportPhoto{
					FilePath:  photo.FilePath(),
					Caption:   photo.Caption(),
					DateTaken: photo.DateTaken(),
					Tags:      photo.Tags(),
				})
			}
			eu.Albums = append(eu.Albums, ea)
		}
		doc = append(doc, eu)
	}

	out := os.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if cmd.Output != "" {
		fmt.Printf("Exported %d user(s) to %s.\n", len(doc), cmd.Output)
	}
	return nil
}
