package trend

import (
	"time"
)

// Config содержит параметры прогнозирования цен
type Config struct {
	AnalysisPeriodDays int     // Период анализа истории цен (в днях)
	ForecastDays       int     // Горизонт прогноза (в днях)
	MinR2Threshold     float64 // Минимальный порог R² для публикации прогноза
}

// DefaultConfig возвращает конфигурацию прогнозирования по умолчанию
func DefaultConfig() Config {
	return Config{
		AnalysisPeriodDays: 30,
		ForecastDays:       14,
		MinR2Threshold:     0.30,
	}
}

// DataPoint представляет точку ряда средних дневных цен маршрута
type DataPoint struct {
	X    float64   // Порядковый номер дня (относительно начала периода)
	Y    float64   // Средняя цена за день
	Date time.Time // Фактическая дата
}

// ForecastPoint представляет точку прогноза цены
type ForecastPoint struct {
	Date          time.Time `json:"date"`
	ForecastValue float64   `json:"forecast_value"`
}

// ForecastResult содержит результат регрессии цен и построенный прогноз
type ForecastResult struct {
	Alpha       float64         `json:"alpha"` // Сдвиг
	Beta        float64         `json:"beta"`  // Коэффициент наклона
	R2          float64         `json:"r2"`    // Коэффициент детерминации
	Reliable    bool            `json:"reliable"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	Points      []ForecastPoint `json:"points"`
}
