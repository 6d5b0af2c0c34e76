package dto

// Visão pública do ledger: só o necessário para a página de agendamento
// montar o dia, sem expor dados do cliente.
type PublicAppointmentDTO struct {
	ServiceID       string `json:"service_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
}
