package create_booking

import "time"

// Request модель запроса на создание бронирования
// RenterID - идентификатор аутентифицированного пользователя, передаётся
// явно вызывающей стороной (никакого неявного глобального контекста)
type Request struct {
	RenterID  string
	CarID     string
	StartDate time.Time // календарная дата начала аренды
	EndDate   time.Time // календарная дата окончания, строго позже начала
	Message   *string   // сообщение владельцу (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       string
	CarID    string
	RenterID string
	OwnerID  string

	StartDate time.Time
	EndDate   time.Time

	TotalDays  int
	TotalPrice float64

	Status  string
	Message *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
