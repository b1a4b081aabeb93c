package cli

import (
	"flag"
	"fmt"
)

type PhotosCommand struct {
	DatabasePath string
	Username     string
	Album        string
}

func NewPhotosCommand() *PhotosCommand {
	return &PhotosCommand{}
}

func (cmd *PhotosCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("photos", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "Owner of the album (required)")
	fs.StringVar(&cmd.Album, "album", "", "Album to list (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" || cmd.Album == "" {
		return fmt.Errorf("user and album are required")
	}
	return nil
}

func (cmd *PhotosCommand) Run() error {
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
	album := user.FindAlbumByName(cmd.Album)
	if album == nil {
		fmt.Printf("No album named %q for %s.\n", cmd.Album, cmd.Username)
		return nil
	}

	for _, photo := range album.Photos() {
		marker := ""
		if ctx.lib.FileMissing(photo) {
			marker = " [file missing]"
		}
		caption := photo.Caption()
		if caption == "" {
			caption = "(no caption)"
		}
		fmt.Printf("%s | %s | %s%s\n",
			photo.FilePath(), photo.DateTaken().Format("2006-01-02 15:04:05"), caption, marker)
		for _, tag := range photo.Tags() {
			fmt.Printf("    %s\n", tag)
		}
	}
	return nil
}

// photoTarget carries the flags shared by every photo mutation command.
type photoTarget struct {
	DatabasePath string
	Username     string
	Album        string
	Path         string
}

func (t *photoTarget) register(fs *flag.FlagSet) {
	fs.StringVar(&t.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&t.Username, "user", "", "Owner of the album (required)")
	fs.StringVar(&t.Album, "album", "", "Album name (required)")
	fs.StringVar(&t.Path, "photo", "", "Photo file path (required)")
}

func (t *photoTarget) validate() error {
	if t.Username == "" || t.Album == "" || t.Path == "" {
		return fmt.Errorf("user, album and photo are required")
	}
	return nil
}

type PhotoAddCommand struct {
	photoTarget
}

func NewPhotoAddCommand() *PhotoAddCommand {
	return &PhotoAddCommand{}
}

func (cmd *PhotoAddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("photo-add", flag.ExitOnError)
	cmd.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.validate()
}

func (cmd *PhotoAddCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	photo, ok := ctx.lib.AddPhoto(cmd.Username, cmd.Album, cmd.Path)
	if !ok {
		fmt.Printf("Could not add %s to %q (missing album or already present).\n", cmd.Path, cmd.Album)
		return nil
	}
	fmt.Printf("Added %s to %q (taken %s).\n",
		cmd.Path, cmd.Album, photo.DateTaken().Format("2006-01-02 15:04:05"))
	if ctx.lib.FileMissing(photo) {
		fmt.Println("Note: the file does not exist on disk right now.")
	}
	return nil
}

type PhotoRemoveCommand struct {
	photoTarget
}

func NewPhotoRemoveCommand() *PhotoRemoveCommand {
	return &PhotoRemoveCommand{}
}

func (cmd *PhotoRemoveCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("photo-remove", flag.ExitOnError)
	cmd.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.validate()
}

func (cmd *PhotoRemoveCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if !ctx.lib.RemovePhoto(cmd.Username, cmd.Album, cmd.Path) {
		fmt.Printf("No photo %s in album %q.\n", cmd.Path, cmd.Album)
		return nil
	}
	fmt.Printf("Removed %s from %q.\n", cmd.Path, cmd.Album)
	return nil
}

type PhotoCaptionCommand struct {
	photoTarget
	Caption string
}

func NewPhotoCaptionCommand() *PhotoCaptionCommand {
	return &PhotoCaptionCommand{}
}

func (cmd *PhotoCaptionCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("photo-caption", flag.ExitOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Caption, "caption", "", "New caption text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return cmd.validate()
}

func (cmd *PhotoCaptionCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if !ctx.lib.SetCaption(cmd.Username, cmd.Album, cmd.Path, cmd.Caption) {
		fmt.Printf("No photo %s in album %q.\n", cmd.Path, cmd.Album)
		return nil
	}
	fmt.Printf("Updated caption of %s.\n", cmd.Path)
	return nil
}

type PhotoCopyCommand struct {
	photoTarget
	Target string
	move   bool
}

func NewPhotoCopyCommand() *PhotoCopyCommand {
	return &PhotoCopyCommand{}
}

// NewPhotoMoveCommand is the copy command with removal from the source
// album after a successful add.
func NewPhotoMoveCommand() *PhotoCopyCommand {
	return &PhotoCopyCommand{move: true}
}

func (cmd *PhotoCopyCommand) name() string {
	if cmd.move {
		return "photo-move"
	}
	return "photo-copy"
}

func (cmd *PhotoCopyCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet(cmd.name(), flag.ExitOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Target, "to", "", "Target album (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cmd.validate(); err != nil {
		return err
	}
	if cmd.Target == "" {
		return fmt.Errorf("target album is required")
	}
	return nil
}

func (cmd *PhotoCopyCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	verb := "copy"
	ok := false
	if cmd.move {
		verb = "move"
		ok = ctx.lib.MovePhoto(cmd.Username, cmd.Album, cmd.Target, cmd.Path)
	} else {
		ok = ctx.lib.CopyPhoto(cmd.Username, cmd.Album, cmd.Target, cmd.Path)
	}
	if !ok {
		fmt.Printf("Could not %s %s to %q (missing photo/album or already present).\n",
			verb, cmd.Path, cmd.Target)
		return nil
	}
	if cmd.move {
		fmt.Printf("Moved %s to %q.\n", cmd.Path, cmd.Target)
	} else {
		fmt.Printf("Copied %s to %q.\n", cmd.Path, cmd.Target)
	}
	return nil
}
