package appointments

// StatusPending es el estado inicial de toda cita; el handler lo fija
// siempre, venga lo que venga en el body.
const StatusPending = "Pending"

// Appointment representa una cita agendada para una mascota.
type Appointment struct {
	ID     int64  `json:"id"`
	PetID  int64  `json:"petId"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}
