package update_booking_status

// Request модель запроса на смену статуса бронирования владельцем
// ActorID - идентификатор аутентифицированного пользователя; операция
// разрешена только владельцу автомобиля из бронирования
type Request struct {
	BookingID string
	ActorID   string
	Status    string // approved | rejected | completed
}
