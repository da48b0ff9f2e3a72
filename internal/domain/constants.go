package domain

// Slot grid constants
const (
	// SlotStepMinutes фиксированный шаг сетки слотов.
	// Шаг не зависит от длительности процедуры, чтобы слоты процедур
	// разной длины ложились на общую сетку в пределах одного дня.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MaxMemoLength            = 200
	MaxRejectionReasonLength = 200
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// ActiveStatuses статусы, занимающие свой временной интервал.
// Только они участвуют в проверке пересечений.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses статусы, из которых нет переходов.
// Такие брони не блокируют слоты.
var TerminalStatuses = []ReservationStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
	StatusNoShow,
}
