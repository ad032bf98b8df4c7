package domain

type Airplane struct {
	ID              int64
	AirplaneNumber  string
	Model           string
	TotalSeats      int
	EconomySeats    int
	BusinessSeats   int
	FirstClassSeats int
}
