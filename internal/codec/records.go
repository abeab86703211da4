package codec

import (
	"strconv"

	"github.com/jbweber/homelab/recordbook/internal/domain"
	"github.com/jbweber/homelab/recordbook/internal/repository"
)

// Transaction encodes ID,Date,Amount,Category
type Transaction struct{}

func (Transaction) FieldCount() int { return 4 }

func (Transaction) Encode(t domain.Transaction) ([]string, error) {
	return []string{formatInt(t.ID), formatDate(t.Date), t.Amount.String(), t.Category}, nil
}

func (c Transaction) Decode(fields []string) (domain.Transaction, error) {
	var t domain.Transaction
	if err := exact(fields, c.FieldCount()); err != nil {
		return t, err
	}
	var err error
	if t.ID, err = parseInt("id", fields[0]); err != nil {
		return t, err
	}
	if t.Date, err = parseDate("date", fields[1]); err != nil {
		return t, err
	}
	if t.Amount, err = parseDecimal("amount", fields[2]); err != nil {
		return t, err
	}
	if t.Category, err = requireText("category", fields[3]); err != nil {
		return t, err
	}
	return t, nil
}

// Student encodes ID,FullName,Score. Extra trailing fields are ignored so
// that a report line can be read back as a student.
type Student struct{}

func (Student) FieldCount() int { return 3 }

func (Student) Encode(s domain.Student) ([]string, error) {
	return []string{formatInt(s.ID), s.FullName, formatInt(s.Score)}, nil
}

func (Student) Decode(fields []string) (domain.Student, error) {
	var s domain.Student
	var err error
	if s.ID, err = parseInt("id", fields[0]); err != nil {
		return s, err
	}
	if s.FullName, err = requireText("full name", fields[1]); err != nil {
		return s, err
	}
	if s.Score, err = parseInt("score", fields[2]); err != nil {
		return s, err
	}
	if err := domain.ValidateStudent(s); err != nil {
		return s, err
	}
	return s, nil
}

// StudentReport encodes ID,FullName,Score,Grade
type StudentReport struct{}

func (StudentReport) FieldCount() int { return 4 }

func (StudentReport) Encode(s domain.Student) ([]string, error) {
	return []string{formatInt(s.ID), s.FullName, formatInt(s.Score), s.Grade()}, nil
}

func (c StudentReport) Decode(fields []string) (domain.Student, error) {
	if err := exact(fields, c.FieldCount()); err != nil {
		return domain.Student{}, err
	}
	s, err := Student{}.Decode(fields[:3])
	if err != nil {
		return s, err
	}
	if grade := fields[3]; grade != s.Grade() {
		return s, repository.InvalidField("grade", grade, "grade does not match score "+strconv.Itoa(s.Score))
	}
	return s, nil
}

// Patient encodes ID,Name,Age,Gender
type Patient struct{}

func (Patient) FieldCount() int { return 4 }

func (Patient) Encode(p domain.Patient) ([]string, error) {
	return []string{formatInt(p.ID), p.Name, formatInt(p.Age), p.Gender}, nil
}

func (c Patient) Decode(fields []string) (domain.Patient, error) {
	var p domain.Patient
	if err := exact(fields, c.FieldCount()); err != nil {
		return p, err
	}
	var err error
	if p.ID, err = parseInt("id", fields[0]); err != nil {
		return p, err
	}
	if p.Name, err = requireText("name", fields[1]); err != nil {
		return p, err
	}
	if p.Age, err = parseInt("age", fields[2]); err != nil {
		return p, err
	}
	p.Gender = fields[3]
	return p, nil
}

// Prescription encodes ID,PatientID,MedicationName,DateIssued
type Prescription struct{}

func (Prescription) FieldCount() int { return 4 }

func (Prescription) Encode(p domain.Prescription) ([]string, error) {
	return []string{formatInt(p.ID), formatInt(p.PatientID), p.MedicationName, formatDate(p.DateIssued)}, nil
}

func (c Prescription) Decode(fields []string) (domain.Prescription, error) {
	var p domain.Prescription
	if err := exact(fields, c.FieldCount()); err != nil {
		return p, err
	}
	var err error
	if p.ID, err = parseInt("id", fields[0]); err != nil {
		return p, err
	}
	if p.PatientID, err = parseInt("patient id", fields[1]); err != nil {
		return p, err
	}
	if p.MedicationName, err = requireText("medication name", fields[2]); err != nil {
		return p, err
	}
	if p.DateIssued, err = parseDate("date issued", fields[3]); err != nil {
		return p, err
	}
	return p, nil
}

// InventoryItem encodes ID,Name,Quantity,DateAdded
type InventoryItem struct{}

func (InventoryItem) FieldCount() int { return 4 }

func (InventoryItem) Encode(i domain.InventoryItem) ([]string, error) {
	return []string{formatInt(i.ID), i.Name, formatInt(i.Quantity), formatDate(i.DateAdded)}, nil
}

func (c InventoryItem) Decode(fields []string) (domain.InventoryItem, error) {
	var i domain.InventoryItem
	if err := exact(fields, c.FieldCount()); err != nil {
		return i, err
	}
	var err error
	if i.ID, err = parseInt("id", fields[0]); err != nil {
		return i, err
	}
	i.Name = fields[1]
	if i.Quantity, err = parseInt("quantity", fields[2]); err != nil {
		return i, err
	}
	if i.DateAdded, err = parseDate("date added", fields[3]); err != nil {
		return i, err
	}
	return i, nil
}

// ElectronicItem encodes ID,Name,Quantity,Brand,WarrantyMonths
type ElectronicItem struct{}

func (ElectronicItem) FieldCount() int { return 5 }

func (ElectronicItem) Encode(e domain.ElectronicItem) ([]string, error) {
	return []string{formatInt(e.ID), e.Name, formatInt(e.Quantity), e.Brand, formatInt(e.WarrantyMonths)}, nil
}

func (c ElectronicItem) Decode(fields []string) (domain.ElectronicItem, error) {
	var e domain.ElectronicItem
	if err := exact(fields, c.FieldCount()); err != nil {
		return e, err
	}
	var err error
	if e.ID, err = parseInt("id", fields[0]); err != nil {
		return e, err
	}
	e.Name = fields[1]
	if e.Quantity, err = parseInt("quantity", fields[2]); err != nil {
		return e, err
	}
	e.Brand = fields[3]
	if e.WarrantyMonths, err = parseInt("warranty months", fields[4]); err != nil {
		return e, err
	}
	return e, nil
}

// GroceryItem encodes ID,Name,Quantity,ExpiryDate
type GroceryItem struct{}

func (GroceryItem) FieldCount() int { return 4 }

func (GroceryItem) Encode(g domain.GroceryItem) ([]string, error) {
	return []string{formatInt(g.ID), g.Name, formatInt(g.Quantity), formatDate(g.ExpiryDate)}, nil
}

func (c GroceryItem) Decode(fields []string) (domain.GroceryItem, error) {
	var g domain.GroceryItem
	if err := exact(fields, c.FieldCount()); err != nil {
		return g, err
	}
	var err error
	if g.ID, err = parseInt("id", fields[0]); err != nil {
		return g, err
	}
	g.Name = fields[1]
	if g.Quantity, err = parseInt("quantity", fields[2]); err != nil {
		return g, err
	}
	if g.ExpiryDate, err = parseDate("expiry date", fields[3]); err != nil {
		return g, err
	}
	return g, nil
}

var (
	_ repository.Codec[domain.Transaction]    = Transaction{}
	_ repository.Codec[domain.Student]        = Student{}
	_ repository.Codec[domain.Student]        = StudentReport{}
	_ repository.Codec[domain.Patient]        = Patient{}
	_ repository.Codec[domain.Prescription]   = Prescription{}
	_ repository.Codec[domain.InventoryItem]  = InventoryItem{}
	_ repository.Codec[domain.ElectronicItem] = ElectronicItem{}
	_ repository.Codec[domain.GroceryItem]    = GroceryItem{}
)
