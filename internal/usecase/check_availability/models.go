package check_availability

import (
	"time"

	"github.com/m04kA/CarRental-BookingService/internal/domain"
)

// Request модель запроса проверки доступности
type Request struct {
	CarID     string
	StartDate time.Time // календарная дата начала аренды
	EndDate   time.Time // календарная дата окончания, строго позже начала
}

// Response результат проверки доступности
type Response struct {
	Available bool
	// Conflicts бронирования в статусах pending/approved, пересекающиеся
	// с запрошенным диапазоном по инклюзивным границам
	Conflicts []*domain.Booking
}
