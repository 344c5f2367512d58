package domain

// Staff сотрудник салона
type Staff struct {
	ID     int64
	Name   string
	Active bool
}

// Cabin кабинет (помещение) салона
type Cabin struct {
	ID     int64
	Name   string
	Active bool
}

// ServiceSpec услуга салона; длительность определяет длину записи
type ServiceSpec struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
}
