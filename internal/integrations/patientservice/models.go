package patientservice

// Patient модель пациента из PatientService
type Patient struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Age      int    `json:"age"`
}

// ErrorResponse модель ошибки от PatientService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
