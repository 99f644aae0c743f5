package domain

import "time"

// BookingStatus represents the status of a rental booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a car rental booking in the system
type Booking struct {
	ID       string
	CarID    string
	RenterID string
	// OwnerID денормализован из автомобиля при создании для быстрых выборок
	// "бронирования моих автомобилей". Неизменяем после создания, как и RenterID.
	OwnerID string

	StartDate time.Time // календарная дата, без времени суток
	EndDate   time.Time // строго позже StartDate

	TotalDays  int     // ceil((EndDate - StartDate) / сутки), >= 1
	TotalPrice float64 // TotalDays * цена за день, зафиксированная при создании

	Status  BookingStatus
	Message *string // сообщение арендатора владельцу (опционально)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transitions are permitted
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected ||
		b.Status == StatusCancelled ||
		b.Status == StatusCompleted
}

// IsBlocking returns true if the booking blocks the car's date range
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeCancelled returns true if the renter may still cancel the booking
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanTransitionTo проверяет допустимость перехода статуса:
//
//	pending  -> approved | rejected | cancelled
//	approved -> completed | cancelled
//
// Из терминальных статусов (rejected, cancelled, completed) переходов нет.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// IsValidStatus returns true if s is one of the known booking statuses
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CarAvailabilityAfter возвращает значение флага is_available автомобиля
// после перехода бронирования в статус status.
// Второе значение false означает, что флаг менять не нужно.
//
// approved блокирует автомобиль целиком; rejected, cancelled и completed
// возвращают его в каталог (completed трактуется так же, как отмена -
// завершённая аренда освобождает автомобиль).
func CarAvailabilityAfter(status BookingStatus) (available bool, changed bool) {
	switch status {
	case StatusApproved:
		return false, true
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true, true
	default:
		return false, false
	}
}

// RentalDays возвращает количество дней аренды: ceil((end - start) / сутки)
// Для корректного диапазона (end > start) всегда >= 1
func RentalDays(start, end time.Time) int {
	diff := end.Sub(start)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// RangesOverlap проверяет пересечение двух диапазонов дат по инклюзивным
// границам: [aStart, aEnd] и [bStart, bEnd] пересекаются, если
// aStart <= bEnd && bStart <= aEnd
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
