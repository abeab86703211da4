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

// HealthSystem keeps patients and prescriptions and an index of
// prescriptions by patient.
type HealthSystem struct {
	Patients      *repository.MemoryRepository[domain.Patient, int]
	Prescriptions *repository.MemoryRepository[domain.Prescription, int]

	byPatient map[int][]domain.Prescription
}

// NewHealthSystem creates an empty health system. Patients and
// prescriptions are bound to their line stores when those are set.
func NewHealthSystem(logger *log.Logger, patients, prescriptions repository.LineStore) *HealthSystem {
	return &HealthSystem{
		Patients: repository.NewMemoryRepository("patient", domain.Patient.Key,
			storeOptions[domain.Patient](logger, patients, codec.Patient{}, repository.LoadStrict, nil)...),
		Prescriptions: repository.NewMemoryRepository("prescription", domain.Prescription.Key,
			storeOptions[domain.Prescription](logger, prescriptions, codec.Prescription{}, repository.LoadStrict, nil)...),
		byPatient: map[int][]domain.Prescription{},
	}
}

// Seed inserts the sample patients and prescriptions.
func (h *HealthSystem) Seed(now time.Time) error {
	patients := []domain.Patient{
		{ID: 1, Name: "Eugene", Age: 20, Gender: "Non-binary"},
		{ID: 2, Name: "Alex", Age: 25, Gender: "Female"},
		{ID: 3, Name: "Mark", Age: 30, Gender: "Male"},
	}
	for _, p := range patients {
		if err := h.Patients.Insert(p); err != nil {
			return err
		}
	}

	prescriptions := []domain.Prescription{
		{ID: 1, PatientID: 1, MedicationName: "Medication A", DateIssued: now},
		{ID: 2, PatientID: 2, MedicationName: "Medication B", DateIssued: now},
		{ID: 3, PatientID: 3, MedicationName: "Medication C", DateIssued: now},
		{ID: 4, PatientID: 1, MedicationName: "Medication D", DateIssued: now},
		{ID: 5, PatientID: 2, MedicationName: "Medication E", DateIssued: now},
	}
	for _, p := range prescriptions {
		if err := h.Prescriptions.Insert(p); err != nil {
			return err
		}
	}
	return nil
}

// BuildPrescriptionIndex rebuilds the patient index from the current
// prescriptions.
func (h *HealthSystem) BuildPrescriptionIndex() {
	h.byPatient = repository.GroupBy(h.Prescriptions.FindAll(), domain.Prescription.PatientKey)
}

// PrescriptionsFor returns the indexed prescriptions of a patient in
// insertion order, or nil.
func (h *HealthSystem) PrescriptionsFor(patientID int) []domain.Prescription {
	return h.byPatient[patientID]
}

// PrintAllPatients writes every patient in insertion order.
func (h *HealthSystem) PrintAllPatients(w io.Writer) {
	fmt.Fprintln(w, "Patients:")
	for _, p := range h.Patients.FindAll() {
		fmt.Fprintf(w, "Id: %d, Name: %s, Age: %d, Gender: %s\n", p.ID, p.Name, p.Age, p.Gender)
	}
}

// PrintAllPrescriptions writes every prescription in insertion order.
func (h *HealthSystem) PrintAllPrescriptions(w io.Writer) {
	fmt.Fprintln(w, "Prescriptions:")
	for _, p := range h.Prescriptions.FindAll() {
		fmt.Fprintf(w, "Id: %d, PatientId: %d, Medication: %s, DateIssued: %s\n", p.ID, p.PatientID, p.MedicationName, p.DateIssued.Format(time.DateTime))
	}
}

// PrintPrescriptionsForPatient writes the indexed prescriptions of one
// patient, or a notice when there are none.
func (h *HealthSystem) PrintPrescriptionsForPatient(w io.Writer, patientID int) {
	prescriptions := h.PrescriptionsFor(patientID)
	if len(prescriptions) == 0 {
		fmt.Fprintf(w, "No prescriptions found for Patient Id %d.\n", patientID)
		return
	}
	fmt.Fprintf(w, "Prescriptions for Patient Id %d:\n", patientID)
	for _, p := range prescriptions {
		fmt.Fprintf(w, "Id: %d, Medication: %s, DateIssued: %s\n", p.ID, p.MedicationName, p.DateIssued.Format(time.DateTime))
	}
}

// Healthcare seeds a health system and prints it.
type Healthcare struct {
	Out    io.Writer
	Logger *log.Logger
	Now    func() time.Time

	// PatientIDs lists the patients whose prescriptions are printed.
	// Defaults to every seeded patient.
	PatientIDs []int

	// PatientLog and PrescriptionLog, when set, receive the seeded records
	PatientLog      repository.LineStore
	PrescriptionLog repository.LineStore
}

// Run seeds and prints the health system, then appends the records to any
// configured logs.
func (h *Healthcare) Run(ctx context.Context) error {
	out := output(h.Out)
	system := NewHealthSystem(h.Logger, h.PatientLog, h.PrescriptionLog)
	if err := system.Seed(clock(h.Now)); err != nil {
		return err
	}
	system.BuildPrescriptionIndex()

	system.PrintAllPatients(out)
	system.PrintAllPrescriptions(out)

	ids := h.PatientIDs
	if ids == nil {
		for _, p := range system.Patients.FindAll() {
			ids = append(ids, p.ID)
		}
	}
	for _, id := range ids {
		fmt.Fprintln(out)
		system.PrintPrescriptionsForPatient(out, id)
	}

	var saves []func(context.Context) error
	if h.PatientLog != nil {
		saves = append(saves, system.Patients.Save)
	}
	if h.PrescriptionLog != nil {
		saves = append(saves, system.Prescriptions.Save)
	}
	saveAll(ctx, out, saves...)
	return nil
}
