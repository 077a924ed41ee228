package classifier

import (
	"time"
)

// Сезоны Южного полушария
const (
	SeasonSummer  = "summer"
	SeasonAutumn  = "autumn"
	SeasonWinter  = "winter"
	SeasonSpring  = "spring"
	SeasonUnknown = "unknown"
)

// Period представляет инклюзивный диапазон дат праздничного периода
type Period struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains проверяет, попадает ли дата в диапазон (границы включительно)
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// PeriodSource предоставляет актуальный набор праздничных периодов.
// Источник может перезагружаться на лету, поэтому периоды запрашиваются при каждой проверке.
type PeriodSource interface {
	Periods() []Period
}

// StaticPeriods — неизменяемый источник периодов (для тестов и значений по умолчанию)
type StaticPeriods []Period

// Periods возвращает набор периодов
func (s StaticPeriods) Periods() []Period {
	return s
}

// Classifier классифицирует дату вылета по календарным признакам
type Classifier struct {
	holidays PeriodSource
}

// New создает новый экземпляр Classifier с указанным источником праздничных периодов
func New(holidays PeriodSource) *Classifier {
	return &Classifier{holidays: holidays}
}

// SeasonOf возвращает сезон для даты по месяцам Южного полушария.
// Для нулевой даты возвращает "unknown".
func SeasonOf(t time.Time) string {
	if t.IsZero() {
		return SeasonUnknown
	}

	switch t.Month() {
	case time.December, time.January, time.February:
		return SeasonSummer
	case time.March, time.April, time.May:
		return SeasonAutumn
	case time.June, time.July, time.August:
		return SeasonWinter
	case time.September, time.October, time.November:
		return SeasonSpring
	}

	return SeasonUnknown
}

// IsWeekend возвращает true, если дата приходится на субботу или воскресенье.
// Для нулевой даты возвращает false.
func IsWeekend(t time.Time) bool {
	if t.IsZero() {
		return false
	}

	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsHolidayPeriod возвращает true, если дата попадает в один из праздничных периодов.
// Для нулевой даты возвращает false.
func (c *Classifier) IsHolidayPeriod(t time.Time) bool {
	if t.IsZero() || c.holidays == nil {
		return false
	}

	for _, period := range c.holidays.Periods() {
		if period.Contains(t) {
			return true
		}
	}

	return false
}
