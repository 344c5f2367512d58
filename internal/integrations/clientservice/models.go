package clientservice

// SalonClient карточка клиента из справочника клиентов
type SalonClient struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Blocked bool   `json:"blocked"` // Клиенту запрещена онлайн-запись
}
