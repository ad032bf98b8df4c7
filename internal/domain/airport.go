package domain

type Airport struct {
	ID          int64
	Name        string
	City        string
	Country     string
	AirportCode string
}
