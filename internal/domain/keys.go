package domain

// Key methods return the primary key of each record type. They are used as
// method expressions, e.g. domain.Student.Key, when building repositories.

func (t Transaction) Key() int    { return t.ID }
func (s Student) Key() int        { return s.ID }
func (p Patient) Key() int        { return p.ID }
func (p Prescription) Key() int   { return p.ID }
func (i InventoryItem) Key() int  { return i.ID }
func (e ElectronicItem) Key() int { return e.ID }
func (g GroceryItem) Key() int    { return g.ID }

// PatientKey groups prescriptions by the patient they were issued to.
func (p Prescription) PatientKey() int { return p.PatientID }
