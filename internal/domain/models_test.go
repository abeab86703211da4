package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{84, "A"},
		{80, "A"},
		{79, "B"},
		{70, "B"},
		{69, "C"},
		{60, "C"},
		{59, "D"},
		{50, "D"},
		{49, "F"},
		{42, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.score), "score %d", tt.score)
	}
}

func TestStudent_Grade(t *testing.T) {
	assert.Equal(t, "A", Student{ID: 101, FullName: "Alice Smith", Score: 84}.Grade())
	assert.Equal(t, "F", Student{ID: 101, FullName: "Alice Smith", Score: 42}.Grade())
}

func TestWithQuantity_ReturnsCopy(t *testing.T) {
	original := GroceryItem{ID: 1, Name: "Milk", Quantity: 50}

	updated := original.WithQuantity(10)

	assert.Equal(t, 50, original.Quantity)
	assert.Equal(t, 10, updated.Quantity)
	assert.Equal(t, original.ID, updated.ID)
}

func TestPrescription_PatientKey(t *testing.T) {
	p := Prescription{ID: 4, PatientID: 1, MedicationName: "Medication D"}
	assert.Equal(t, 4, p.Key())
	assert.Equal(t, 1, p.PatientKey())
}
