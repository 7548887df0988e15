package staffservice

// Doctor модель врача из StaffService
type Doctor struct {
	ID           int64        `json:"id"`
	FullName     string       `json:"full_name"`
	SpecialtyID  int64        `json:"specialty_id"`
	WorkingHours WeekSchedule `json:"working_hours"`
}

// WeekSchedule расписание работы врача по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule рабочие часы врача на один день недели
// Часы задаются целыми значениями: сетка слотов строится от начала часа
type DaySchedule struct {
	Working   bool `json:"working"`
	StartHour int  `json:"start_hour"`
	EndHour   int  `json:"end_hour"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
