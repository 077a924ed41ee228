package demand

// Config содержит веса факторов демандного скоринга.
// Веса подобраны эвристически и зафиксированы; тесты закрепляют их значения.
type Config struct {
	// Базовое значение, от которого отсчитываются вклады факторов
	BaseScore float64 `json:"base_score"`

	// Веса факторов
	PriceWeight        float64 `json:"price_weight"`
	AvailabilityWeight float64 `json:"availability_weight"`
	RouteWeight        float64 `json:"route_weight"`
	SeasonalWeight     float64 `json:"seasonal_weight"`

	// Фиксированные бонусы
	HolidayBonus float64 `json:"holiday_bonus"`
	WeekendBonus float64 `json:"weekend_bonus"`

	// Предполагаемый рабочий диапазон цен для нормализации
	PriceRangeMin float64 `json:"price_range_min"`
	PriceRangeMax float64 `json:"price_range_max"`

	// Сезонные оценки спроса
	SeasonalScores map[string]float64 `json:"seasonal_scores"`
}

// DefaultConfig возвращает конфигурацию скоринга по умолчанию
func DefaultConfig() Config {
	return Config{
		BaseScore:          50.0,
		PriceWeight:        0.3,
		AvailabilityWeight: 0.2,
		RouteWeight:        0.2,
		SeasonalWeight:     0.15,
		HolidayBonus:       10.0,
		WeekendBonus:       5.0,
		PriceRangeMin:      100.0,
		PriceRangeMax:      2000.0,
		SeasonalScores: map[string]float64{
			"summer": 85.0, // высокий спрос на летние каникулы
			"winter": 70.0, // зимние школьные каникулы
			"spring": 65.0,
			"autumn": 60.0,
		},
	}
}

// ScoreResult содержит результат скоринга одной записи о рейсе.
// Флаг Fallback позволяет отличить нормальный расчет от нейтрального значения,
// возвращенного при внутреннем сбое.
type ScoreResult struct {
	Score           float64 `json:"score"` // [0, 100]
	Season          string  `json:"season"`
	IsHolidayPeriod bool    `json:"is_holiday_period"`
	IsWeekend       bool    `json:"is_weekend"`
	Fallback        bool    `json:"fallback"`
}
