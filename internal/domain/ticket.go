package domain

import (
	"fmt"
	"strings"
)

// MaxTicketsPerPurchase — верхняя граница числа билетов (всех категорий) в одной покупке.
const MaxTicketsPerPurchase = 25

// Category — категория пассажира. Закрытое множество значений.
type Category string

const (
	Adult  Category = "ADULT"
	Child  Category = "CHILD"
	Infant Category = "INFANT"
)

// Tariff — цена одного билета и число мест, которое он занимает.
type Tariff struct {
	Price int `json:"price"`
	Seats int `json:"seats"`
}

// tariffs — единственное место, где задаются цены и места по категориям.
var tariffs = map[Category]Tariff{
	Adult:  {Price: 25, Seats: 1},
	Child:  {Price: 15, Seats: 1},
	Infant: {Price: 0, Seats: 0}, // младенец сидит на коленях у взрослого
}

// Categories — все категории в фиксированном порядке.
func Categories() []Category { return []Category{Adult, Child, Infant} }

// TariffOf — тариф категории; ok=false для неизвестной категории.
func TariffOf(c Category) (Tariff, bool) {
	t, ok := tariffs[c]
	return t, ok
}

// Valid — входит ли категория в закрытое множество.
func (c Category) Valid() bool {
	_, ok := tariffs[c]
	return ok
}

func (c Category) String() string { return string(c) }

// UnmarshalText — принимает имя категории без учёта регистра; неизвестные имена отклоняются.
func (c *Category) UnmarshalText(text []byte) error {
	parsed := Category(strings.ToUpper(strings.TrimSpace(string(text))))
	if !parsed.Valid() {
		return fmt.Errorf("unknown ticket type %q", string(text))
	}
	*c = parsed
	return nil
}

// TicketTypeRequest — одна позиция покупки: категория и количество билетов.
type TicketTypeRequest struct {
	Type        Category `json:"type"`
	NoOfTickets int      `json:"no_of_tickets"`
}

// NewTicketTypeRequest — конструктор позиции.
func NewTicketTypeRequest(t Category, n int) *TicketTypeRequest {
	return &TicketTypeRequest{Type: t, NoOfTickets: n}
}

// PurchaseRequest — запрос на покупку. AccountID == 0 означает «не передан».
// Элементы Tickets могут быть nil (отсутствующая позиция).
type PurchaseRequest struct {
	AccountID int64                `json:"account_id"`
	Tickets   []*TicketTypeRequest `json:"tickets"`
}
