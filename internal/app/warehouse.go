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

// WarehouseManager holds the electronics and groceries stock.
type WarehouseManager struct {
	Electronics *repository.MemoryRepository[domain.ElectronicItem, int]
	Groceries   *repository.MemoryRepository[domain.GroceryItem, int]
}

// NewWarehouseManager creates empty repositories that reject negative stock.
// Each repository is bound to its line store when one is set.
func NewWarehouseManager(logger *log.Logger, electronics, groceries repository.LineStore) *WarehouseManager {
	return &WarehouseManager{
		Electronics: repository.NewMemoryRepository("electronic item", domain.ElectronicItem.Key,
			storeOptions[domain.ElectronicItem](logger, electronics, codec.ElectronicItem{}, repository.LoadSkipMalformed, domain.ValidateElectronicItem)...),
		Groceries: repository.NewMemoryRepository("grocery item", domain.GroceryItem.Key,
			storeOptions[domain.GroceryItem](logger, groceries, codec.GroceryItem{}, repository.LoadSkipMalformed, domain.ValidateGroceryItem)...),
	}
}

// SeedData inserts the sample stock. Expiry dates are relative to now.
func (m *WarehouseManager) SeedData(now time.Time) error {
	electronics := []domain.ElectronicItem{
		{ID: 1, Name: "Laptop", Quantity: 10, Brand: "BrandA", WarrantyMonths: 24},
		{ID: 2, Name: "Smartphone", Quantity: 20, Brand: "BrandB", WarrantyMonths: 12},
	}
	for _, e := range electronics {
		if err := m.Electronics.Insert(e); err != nil {
			return err
		}
	}

	groceries := []domain.GroceryItem{
		{ID: 1, Name: "Milk", Quantity: 50, ExpiryDate: now.AddDate(0, 0, 7)},
		{ID: 2, Name: "Bread", Quantity: 30, ExpiryDate: now.AddDate(0, 0, 3)},
	}
	for _, g := range groceries {
		if err := m.Groceries.Insert(g); err != nil {
			return err
		}
	}
	return nil
}

// PrintAllItems writes one line per item using describe.
func PrintAllItems[T any](w io.Writer, items []T, describe func(T) string) {
	for _, item := range items {
		fmt.Fprintln(w, describe(item))
	}
}

func describeElectronic(e domain.ElectronicItem) string {
	return fmt.Sprintf("ID: %d, Name: %s, Quantity: %d, Brand: %s, Warranty: %d months", e.ID, e.Name, e.Quantity, e.Brand, e.WarrantyMonths)
}

func describeGrocery(g domain.GroceryItem) string {
	return fmt.Sprintf("ID: %d, Name: %s, Quantity: %d, Expires: %s", g.ID, g.Name, g.Quantity, g.ExpiryDate.Format(time.DateOnly))
}

// SetStock sets the stock level of an item, reporting a missing item or a
// negative quantity. It reports whether the update was applied.
func SetStock[T repository.QuantitySetter[T]](w io.Writer, repo repository.Repository[T, int], id, quantity int) bool {
	if err := repository.UpdateQuantity(repo, id, quantity); err != nil {
		report(w, err)
		return false
	}
	return true
}

// RemoveItem deletes an item, reporting a missing one. It reports whether
// the item was removed.
func RemoveItem[T any](w io.Writer, repo repository.Repository[T, int], id int) bool {
	if err := repo.DeleteByID(id); err != nil {
		report(w, err)
		return false
	}
	return true
}

// Warehouse seeds the warehouse and exercises its error paths.
type Warehouse struct {
	Out    io.Writer
	Logger *log.Logger
	Now    func() time.Time

	// ElectronicsLog and GroceriesLog, when set, receive the final stock
	ElectronicsLog repository.LineStore
	GroceriesLog   repository.LineStore
}

// Run seeds the stock, demonstrates each reported error and appends the
// final stock to any configured logs.
func (wh *Warehouse) Run(ctx context.Context) error {
	out := output(wh.Out)
	m := NewWarehouseManager(wh.Logger, wh.ElectronicsLog, wh.GroceriesLog)
	if err := m.SeedData(clock(wh.Now)); err != nil {
		return err
	}

	fmt.Fprintln(out, "Grocery Items:")
	PrintAllItems(out, m.Groceries.FindAll(), describeGrocery)

	fmt.Fprintln(out, "\nElectronic Items:")
	PrintAllItems(out, m.Electronics.FindAll(), describeElectronic)

	fmt.Fprintln(out, "\nAdding duplicate item")
	if err := m.Electronics.Insert(domain.ElectronicItem{ID: 1, Name: "Laptop", Quantity: 10, Brand: "BrandA", WarrantyMonths: 24}); err != nil {
		report(out, err)
	}

	fmt.Fprintln(out, "\nRemoving non-existing item")
	RemoveItem[domain.GroceryItem](out, m.Groceries, 999)

	fmt.Fprintln(out, "\nUpdating with invalid quantity")
	SetStock[domain.ElectronicItem](out, m.Electronics, 1, -5)

	fmt.Fprintln(out, "\nIncreasing stock")
	if SetStock[domain.GroceryItem](out, m.Groceries, 2, 45) {
		bread, err := m.Groceries.FindByID(2)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, describeGrocery(bread))
	}

	var saves []func(context.Context) error
	if wh.ElectronicsLog != nil {
		saves = append(saves, m.Electronics.Save)
	}
	if wh.GroceriesLog != nil {
		saves = append(saves, m.Groceries.Save)
	}
	saveAll(ctx, out, saves...)
	return nil
}
