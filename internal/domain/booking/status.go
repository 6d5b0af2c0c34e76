package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Blocks diz se um agendamento neste status ocupa o horário.
// Pendente ainda bloqueia: o cliente age sobre a disponibilidade exibida
// antes da triagem do salão. Só cancelado libera o horário.
func (s Status) Blocks() bool {
	return s != StatusCancelled
}

// InitialStatus é o status de toda marcação criada pelo site.
func InitialStatus() Status {
	return StatusPending
}
