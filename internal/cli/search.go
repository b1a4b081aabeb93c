package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/photokeep/photokeep/internal/entities"
	"github.com/photokeep/photokeep/internal/search"
)

type SearchCommand struct {
	DatabasePath string
	Username     string
	From         string
	To           string
	Tag          string
	AndTag       string
	OrTag        string
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "User whose albums are searched (required)")
	fs.StringVar(&cmd.From, "from", "", "Start of date range (inclusive)")
	fs.StringVar(&cmd.To, "to", "", "End of date range (inclusive)")
	fs.StringVar(&cmd.Tag, "tag", "", "Tag as name=value")
	fs.StringVar(&cmd.AndTag, "and", "", "Second tag, photo must carry both")
	fs.StringVar(&cmd.OrTag, "or", "", "Second tag, photo must carry either")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search a user's photos by date range or by tags.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -user alice -from 2024-01-01 -to 2024-01-31\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -user alice -tag location=NYC\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -user alice -tag location=NYC -and person=John\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -user alice -tag location=NYC -or location=Boston\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" {
		fs.Usage()
		return fmt.Errorf("user is required")
	}

	dateQuery := cmd.From != "" || cmd.To != ""
	tagQuery := cmd.Tag != ""
	if dateQuery == tagQuery {
		fs.Usage()
		return fmt.Errorf("give either a date range (-from/-to) or a tag query (-tag)")
	}
	if dateQuery && (cmd.From == "" || cmd.To == "") {
		return fmt.Errorf("both -from and -to are required for a date search")
	}
	if cmd.AndTag != "" && cmd.OrTag != "" {
		return fmt.Errorf("-and and -or are mutually exclusive")
	}
	if (cmd.AndTag != "" || cmd.OrTag != "") && !tagQuery {
		return fmt.Errorf("-and/-or need a first tag via -tag")
	}
	return nil
}

func (cmd *SearchCommand) Run() error {
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
	albums := user.Albums()

	var results []*entities.Photo
	switch {
	case cmd.From != "":
		from, err := parseDate(cmd.From)
		if err != nil {
			return err
		}
		to, err := parseDate(cmd.To)
		if err != nil {
			return err
		}
		results = search.ByDateRange(albums, from, to)

	case cmd.AndTag != "":
		first, err := parseTag(cmd.Tag)
		if err != nil {
			return err
		}
		second, err := parseTag(cmd.AndTag)
		if err != nil {
			return err
		}
		results = search.ByTagsAnd(albums, first.Name, first.Value, second.Name, second.Value)

	case cmd.OrTag != "":
		first, err := parseTag(cmd.Tag)
		if err != nil {
			return err
		}
		second, err := parseTag(cmd.OrTag)
		if err != nil {
			return err
		}
		results = search.ByTagsOr(albums, first.Name, first.Value, second.Name, second.Value)

	default:
		tag, err := parseTag(cmd.Tag)
		if err != nil {
			return err
		}
		results = search.ByTag(albums, tag.Name, tag.Value)
	}

	if len(results) == 0 {
		fmt.Println("No matching photos.")
		return nil
	}
	for _, photo := range results {
		fmt.Printf("%s | %s | %s\n",
			photo.FilePath(), photo.DateTaken().Format("2006-01-02 15:04:05"), photo.Caption())
	}
	fmt.Printf("%d photo(s) found.\n", len(results))
	return nil
}
