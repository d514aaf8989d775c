package domain

import "math"

// Aggregate — суммарное количество билетов по категориям в рамках одной покупки.
// Строится один раз на вызов и нигде не хранится.
type Aggregate struct {
	counts map[Category]int
	total  int
}

// NewAggregate — пустой агрегат.
func NewAggregate() Aggregate {
	return Aggregate{counts: make(map[Category]int, len(tariffs))}
}

// Add — учесть позицию. Проверка категории и количества — на стороне валидатора.
// Суммы насыщаются на math.MaxInt: переполнение не должно опускать итог ниже лимита.
func (a *Aggregate) Add(c Category, n int) {
	if a.counts == nil {
		a.counts = make(map[Category]int, len(tariffs))
	}
	a.counts[c] = saturatingAdd(a.counts[c], n)
	a.total = saturatingAdd(a.total, n)
}

// saturatingAdd — сумма неотрицательных x и n без переполнения.
func saturatingAdd(x, n int) int {
	if x > math.MaxInt-n {
		return math.MaxInt
	}
	return x + n
}

// Count — количество билетов категории.
func (a Aggregate) Count(c Category) int { return a.counts[c] }

// Total — количество билетов всех категорий.
func (a Aggregate) Total() int { return a.total }

// Amount — сумма к оплате по тарифам.
func (a Aggregate) Amount() int {
	amount := 0
	for c, n := range a.counts {
		amount += tariffs[c].Price * n
	}
	return amount
}

// Seats — количество мест к бронированию по тарифам.
func (a Aggregate) Seats() int {
	seats := 0
	for c, n := range a.counts {
		seats += tariffs[c].Seats * n
	}
	return seats
}

// Tickets — копия счётчиков по всем категориям (нулевые тоже включены).
func (a Aggregate) Tickets() map[Category]int {
	out := make(map[Category]int, len(tariffs))
	for _, c := range Categories() {
		out[c] = a.counts[c]
	}
	return out
}

// Quote — неизменяемый итог успешной валидации: что списать и сколько мест забронировать.
type Quote struct {
	AccountID int64            `json:"account_id"`
	Amount    int              `json:"amount"`
	Seats     int              `json:"seats"`
	Tickets   map[Category]int `json:"tickets"`
}

// NewQuote — считает итог по агрегату.
func NewQuote(accountID int64, a Aggregate) Quote {
	return Quote{
		AccountID: accountID,
		Amount:    a.Amount(),
		Seats:     a.Seats(),
		Tickets:   a.Tickets(),
	}
}
