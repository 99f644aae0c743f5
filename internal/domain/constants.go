package domain

// Date format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxMessageLength = 500
	MinCarYear       = 1950
	MinRating        = 1
	MaxRating        = 5
)

// BlockingStatuses статусы, при которых бронирование удерживает диапазон дат
// автомобиля. Используется в запросе пересечений при проверке доступности.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// TerminalStatuses статусы, из которых переходы запрещены
var TerminalStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}
