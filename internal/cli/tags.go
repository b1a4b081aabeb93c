package cli

import (
	"flag"
	"fmt"
	"strings"

	"github.com/photokeep/photokeep/internal/entities"
)

// parseTag splits a name=value argument into a tag.
func parseTag(value string) (entities.Tag, error) {
	name, val, ok := strings.Cut(value, "=")
	if !ok || name == "" {
		return entities.Tag{}, fmt.Errorf("invalid tag %q (want name=value)", value)
	}
	return entities.NewTag(name, val), nil
}

type TagAddCommand struct {
	photoTarget
	Tag    string
	remove bool
}

func NewTagAddCommand() *TagAddCommand {
	return &TagAddCommand{}
}

// NewTagRemoveCommand is the tag command with removal semantics.
func NewTagRemoveCommand() *TagAddCommand {
	return &TagAddCommand{remove: true}
}

func (cmd *TagAddCommand) name() string {
	if cmd.remove {
		return "tag-remove"
	}
	return "tag-add"
}

func (cmd *TagAddCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet(cmd.name(), flag.ExitOnError)
	cmd.register(fs)
	fs.StringVar(&cmd.Tag, "tag", "", "Tag as name=value (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cmd.validate(); err != nil {
		return err
	}
	if cmd.Tag == "" {
		return fmt.Errorf("tag is required")
	}
	_, err := parseTag(cmd.Tag)
	return err
}

func (cmd *TagAddCommand) Run() error {
	tag, err := parseTag(cmd.Tag)
	if err != nil {
		return err
	}

	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	if cmd.remove {
		if !ctx.lib.RemoveTag(cmd.Username, cmd.Album, cmd.Path, tag) {
			fmt.Printf("Photo %s does not carry tag %s.\n", cmd.Path, tag)
			return nil
		}
		fmt.Printf("Removed tag %s from %s.\n", tag, cmd.Path)
		return nil
	}

	if !ctx.lib.AddTag(cmd.Username, cmd.Album, cmd.Path, tag) {
		fmt.Printf("Could not tag %s (missing photo or duplicate tag).\n", cmd.Path)
		return nil
	}
	fmt.Printf("Tagged %s with %s.\n", cmd.Path, tag)
	return nil
}
