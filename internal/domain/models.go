package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single money movement recorded by the finance program
type Transaction struct {
	ID       int             // Unique identifier
	Date     time.Time       // When the transaction happened
	Amount   decimal.Decimal // Amount debited from the account
	Category string          // Spending category (e.g., "Groceries")
}

// Student is a graded student result
type Student struct {
	ID       int    // Unique identifier
	FullName string // Student's full name
	Score    int    // Score between 0 and 100
}

// Grade returns the letter grade for the student's score.
func (s Student) Grade() string {
	return GradeFor(s.Score)
}

// GradeFor maps a score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// Patient represents a registered patient
type Patient struct {
	ID     int    // Unique identifier
	Name   string // Patient name
	Age    int    // Age in years
	Gender string // Free-form gender
}

// Prescription is a medication issued to a patient
type Prescription struct {
	ID             int       // Unique identifier
	PatientID      int       // Foreign key to Patient
	MedicationName string    // Medication name
	DateIssued     time.Time // When the prescription was issued
}

// InventoryItem is an entry in the inventory log
type InventoryItem struct {
	ID        int       // Unique identifier
	Name      string    // Item name
	Quantity  int       // Units in stock
	DateAdded time.Time // When the item was logged
}

// WithQuantity returns a copy of the item with a new quantity.
func (i InventoryItem) WithQuantity(quantity int) InventoryItem {
	i.Quantity = quantity
	return i
}

// ElectronicItem is a warehouse electronics product
type ElectronicItem struct {
	ID             int    // Unique identifier
	Name           string // Product name
	Quantity       int    // Units in stock
	Brand          string // Manufacturer brand
	WarrantyMonths int    // Warranty length in months
}

// WithQuantity returns a copy of the item with a new quantity.
func (e ElectronicItem) WithQuantity(quantity int) ElectronicItem {
	e.Quantity = quantity
	return e
}

// GroceryItem is a warehouse grocery product
type GroceryItem struct {
	ID         int       // Unique identifier
	Name       string    // Product name
	Quantity   int       // Units in stock
	ExpiryDate time.Time // Best-before date
}

// WithQuantity returns a copy of the item with a new quantity.
func (g GroceryItem) WithQuantity(quantity int) GroceryItem {
	g.Quantity = quantity
	return g
}
