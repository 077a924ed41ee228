package trend

import (
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RoundToHundredth округляет число до сотых (2 знака после запятой)
func RoundToHundredth(value float64) float64 {
	return math.Round(value*100) / 100
}

// ForecastPrices строит линейный прогноз средних дневных цен маршрута
// методом наименьших квадратов. Прогноз помечается ненадежным,
// если R² ниже порога конфигурации.
func ForecastPrices(points []DataPoint, config Config) (*ForecastResult, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("для прогноза требуется минимум 2 точки, получено: %d", len(points))
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))

	minDate := points[0].Date
	maxDate := points[0].Date
	allXEqual := true

	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y

		if p.X != points[0].X {
			allXEqual = false
		}
		if p.Date.Before(minDate) {
			minDate = p.Date
		}
		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	if allXEqual {
		return nil, fmt.Errorf("все X одинаковы, невозможно вычислить наклон")
	}

	// Коэффициенты линейной регрессии и качество аппроксимации
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	result := &ForecastResult{
		Alpha:       RoundToHundredth(alpha),
		Beta:        RoundToHundredth(beta),
		R2:          RoundToHundredth(r2),
		Reliable:    r2 >= config.MinR2Threshold,
		PeriodStart: minDate,
		PeriodEnd:   maxDate,
	}

	// Строим точки прогноза от последнего наблюдаемого дня
	lastX := xs[len(xs)-1]
	for day := 1; day <= config.ForecastDays; day++ {
		x := lastX + float64(day)
		value := alpha + beta*x
		if value < 0 {
			value = 0
		}

		result.Points = append(result.Points, ForecastPoint{
			Date:          maxDate.AddDate(0, 0, day),
			ForecastValue: RoundToHundredth(value),
		})
	}

	return result, nil
}

// BuildDailySeries преобразует дневные средние цены в точки регрессии.
// Ключи карты — даты (без времени), значения — средняя цена за день.
func BuildDailySeries(dailyPrices map[time.Time]float64) []DataPoint {
	if len(dailyPrices) == 0 {
		return nil
	}

	// Находим самую раннюю дату за начало отсчета
	var start time.Time
	first := true
	for date := range dailyPrices {
		if first || date.Before(start) {
			start = date
			first = false
		}
	}

	points := make([]DataPoint, 0, len(dailyPrices))
	for date, price := range dailyPrices {
		points = append(points, DataPoint{
			X:    date.Sub(start).Hours() / 24,
			Y:    price,
			Date: date,
		})
	}

	// Сортируем по X для стабильности вычислений
	sort.Slice(points, func(i, j int) bool {
		return points[i].X < points[j].X
	})

	return points
}
