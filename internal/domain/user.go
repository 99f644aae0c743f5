package domain

// UserContact публичные контактные поля пользователя из таблицы users
// Присоединяются к бронированиям во "взгляде владельца", чтобы владелец
// мог связаться с арендатором для передачи автомобиля
type UserContact struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// BookingWithCar бронирование с присоединёнными атрибутами автомобиля
// (взгляд арендатора)
type BookingWithCar struct {
	Booking
	Car Car
}

// BookingWithRenter бронирование с автомобилем и контактами арендатора
// (взгляд владельца)
type BookingWithRenter struct {
	Booking
	Car    Car
	Renter UserContact
}
