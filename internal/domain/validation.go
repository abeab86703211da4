package domain

import (
	"strconv"
	"strings"

	"github.com/jbweber/homelab/recordbook/internal/repository"
)

const (
	MinScore = 0
	MaxScore = 100
)

// ValidateStudent checks the score range and that a name is present.
func ValidateStudent(s Student) error {
	if strings.TrimSpace(s.FullName) == "" {
		return repository.MissingField("full name", "full name cannot be empty")
	}
	if s.Score < MinScore || s.Score > MaxScore {
		return repository.InvalidField("score", strconv.Itoa(s.Score), "score must be between 0 and 100")
	}
	return nil
}

// ValidateQuantity rejects negative stock levels.
func ValidateQuantity(quantity int) error {
	if quantity < 0 {
		return repository.InvalidField("quantity", strconv.Itoa(quantity), "quantity cannot be negative")
	}
	return nil
}

func ValidateInventoryItem(i InventoryItem) error   { return ValidateQuantity(i.Quantity) }
func ValidateElectronicItem(e ElectronicItem) error { return ValidateQuantity(e.Quantity) }
func ValidateGroceryItem(g GroceryItem) error       { return ValidateQuantity(g.Quantity) }
