package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда приём не найден
	ErrAppointmentNotFound = errors.New("reschedule_appointment: appointment not found")

	// ErrWrongStatus возвращается, когда статус приёма не допускает перенос
	// (переносить можно только приёмы в статусе scheduled)
	ErrWrongStatus = errors.New("reschedule_appointment: appointment status does not allow rescheduling")

	// ErrAlreadyPast возвращается, когда время приёма уже прошло
	ErrAlreadyPast = errors.New("reschedule_appointment: appointment is already in the past")

	// ErrInsideLeadTime возвращается, когда до приёма осталось меньше
	// минимального времени упреждения (24 часа)
	ErrInsideLeadTime = errors.New("reschedule_appointment: appointment is inside the minimum lead time window")

	// ErrPastDateTime возвращается, когда новый слот не в будущем
	ErrPastDateTime = errors.New("reschedule_appointment: new slot is not in the future")

	// ErrSlotConflict возвращается, когда новый слот пересекается с существующим приёмом
	ErrSlotConflict = errors.New("reschedule_appointment: new slot conflicts with an existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_appointment: internal error")
)
