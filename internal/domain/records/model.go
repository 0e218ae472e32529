package records

// MedicalRecord representa una entrada del historial médico de una
// mascota (vacuna, desparasitación, cirugía, etc.).
type MedicalRecord struct {
	ID    int64  `json:"id"`
	PetID int64  `json:"petId"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Date  string `json:"date"`
}
