package cli

import (
	"flag"
	"fmt"

	"github.com/photokeep/photokeep/internal/database/audit"
)

type AuditCommand struct {
	DatabasePath string
	Username     string
	Limit        int
}

func NewAuditCommand() *AuditCommand {
	return &AuditCommand{}
}

func (cmd *AuditCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Username, "user", "", "Only show events for this user")
	fs.IntVar(&cmd.Limit, "limit", 20, "Maximum number of events to show")
	return fs.Parse(args)
}

func (cmd *AuditCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	var events []audit.Event
	if cmd.Username != "" {
		events, err = ctx.audit.ByUser(cmd.Username, cmd.Limit)
	} else {
		events, err = ctx.audit.Recent(cmd.Limit)
	}
	if err != nil {
		return fmt.Errorf("failed to read audit events: %w", err)
	}

	if len(events) == 0 {
		fmt.Println("No audit events recorded.")
		return nil
	}
	for _, event := range events {
		fmt.Printf("%s | %-12s | %-13s | %s\n",
			event.CreatedAt.Format("2006-01-02 15:04:05"),
			event.Username, event.Action, event.Detail)
	}
	return nil
}
