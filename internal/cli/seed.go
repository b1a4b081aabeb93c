package cli

import (
	"flag"
	"fmt"

	"github.com/photokeep/photokeep/internal/database/audit"
	"github.com/photokeep/photokeep/internal/entities"
	"github.com/photokeep/photokeep/internal/stock"
)

type SeedStockCommand struct {
	DatabasePath string
	Dir          string
	Minimum      int
}

func NewSeedStockCommand() *SeedStockCommand {
	return &SeedStockCommand{}
}

func (cmd *SeedStockCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-stock", flag.ExitOnError)
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the library database")
	fs.StringVar(&cmd.Dir, "dir", "", "Stock photo directory (default from STOCK_DIR)")
	fs.IntVar(&cmd.Minimum, "min", 0, "Minimum image files before placeholders are skipped")
	return fs.Parse(args)
}

func (cmd *SeedStockCommand) Run() error {
	ctx, err := bootstrap(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer ctx.close()

	dir := cmd.Dir
	if dir == "" {
		dir = ctx.cfg.Stock.Dir
	}
	minimum := cmd.Minimum
	if minimum <= 0 {
		minimum = ctx.cfg.Stock.Minimum
	}

	added, err := stock.NewSeeder(ctx.lib.Store(), dir, minimum).Seed()
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if added > 0 {
		detail := fmt.Sprintf("added %d photo(s) from %s", added, dir)
		if err := ctx.audit.Record(entities.StockUsername, audit.ActionStockSeed, detail); err != nil {
			fmt.Printf("Warning: could not record audit event: %v\n", err)
		}
	}

	user, _ := ctx.lib.Store().GetUser(entities.StockUsername)
	album := user.FindAlbumByName(entities.StockAlbumName)
	fmt.Printf("Stock album holds %d photo(s), %d newly added.\n", album.PhotoCount(), added)
	return nil
}
