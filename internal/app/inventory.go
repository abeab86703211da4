package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jbweber/homelab/recordbook/internal/codec"
	"github.com/jbweber/homelab/recordbook/internal/domain"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// InventorySteps selects which parts of the inventory run execute.
type InventorySteps struct {
	Seed bool
	Save bool
	Load bool
}

// DefaultInventorySteps only loads and prints the existing log
var DefaultInventorySteps = InventorySteps{Load: true}

// Inventory keeps an inventory log in a line store.
type Inventory struct {
	Out    io.Writer
	Logger *log.Logger
	Now    func() time.Time

	Log   repository.LineStore
	Steps InventorySteps
}

// NewInventoryLog creates a repository bound to lines. Malformed lines are
// skipped on load.
func NewInventoryLog(lines repository.LineStore, logger *log.Logger) *repository.MemoryRepository[domain.InventoryItem, int] {
	return repository.NewMemoryRepository("inventory item", domain.InventoryItem.Key,
		repository.WithValidator[domain.InventoryItem, int](domain.ValidateInventoryItem),
		repository.WithPersister[domain.InventoryItem, int](&repository.Persister[domain.InventoryItem]{
			Lines:  lines,
			Codec:  codec.InventoryItem{},
			Policy: repository.LoadSkipMalformed,
		}),
		repository.WithLogger[domain.InventoryItem, int](logger),
	)
}

// SampleInventory returns the four sample items, all added at now.
func SampleInventory(now time.Time) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0, 4)
	for i := 1; i <= 4; i++ {
		items = append(items, domain.InventoryItem{
			ID:        i,
			Name:      fmt.Sprintf("Sample Item %d", i),
			Quantity:  i * 10,
			DateAdded: now,
		})
	}
	return items
}

// Run executes the selected steps and prints the resulting items. Loading
// replaces the seeded items with what the log holds.
func (inv *Inventory) Run(ctx context.Context) error {
	out := output(inv.Out)
	if inv.Log == nil {
		return fmt.Errorf("inventory: no log store: %w", repository.ErrInvalidArgument)
	}
	items := NewInventoryLog(inv.Log, inv.Logger)

	if inv.Steps.Seed {
		fmt.Fprintln(out, "Seeding sample data...")
		for _, item := range SampleInventory(clock(inv.Now)) {
			if err := items.Insert(item); err != nil {
				report(out, err)
			}
		}
	}

	if inv.Steps.Save {
		fmt.Fprintln(out, "Saving data to file...")
		if err := items.Save(ctx); err != nil {
			fmt.Fprintf(out, "An error occurred while saving to file: %v\n", err)
		}
	}

	if inv.Steps.Load {
		fmt.Fprintln(out, "Loading data from file...")
		items = NewInventoryLog(inv.Log, inv.Logger)
		result, err := items.Load(ctx)
		if err != nil {
			fmt.Fprintf(out, "An error occurred while loading from file: %v\n", err)
		} else if len(result.Skipped) > 0 {
			logger(inv.Logger).Printf("loaded %d inventory items, skipped %d malformed lines", result.Loaded, len(result.Skipped))
		}
	}

	fmt.Fprintln(out, "Printing all items:")
	for _, item := range items.FindAll() {
		fmt.Fprintf(out, "ID: %d, Name: %s, Quantity: %d, Date Added: %s\n", item.ID, item.Name, item.Quantity, item.DateAdded.Format(time.DateTime))
	}
	return nil
}
