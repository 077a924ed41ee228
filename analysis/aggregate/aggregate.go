package aggregate

import (
	"math"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/popularity"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

// RoundToHundredth округляет число до сотых (2 знака после запятой)
func RoundToHundredth(value float64) float64 {
	return math.Round(value*100) / 100
}

// routeAccumulator — временная структура группировки по маршруту,
// отбрасывается после построения итоговых сводок
type routeAccumulator struct {
	totalFlights int
	prices       []float64
	demandScores []float64
	searchCount  int
	bookingCount int
	isDomestic   bool
}

// Routes группирует оцененные записи по направленным маршрутам и строит
// сводку по каждому маршруту. Полный проход по всем записям при каждом вызове;
// маршруты без наблюдений в результат не попадают.
func Routes(records []models.ScoredFlightRecord) map[models.RouteKey]models.RouteSummary {
	groups := make(map[models.RouteKey]*routeAccumulator)

	for _, record := range records {
		key := models.RouteKey{Origin: record.Origin, Destination: record.Destination}

		acc, exists := groups[key]
		if !exists {
			acc = &routeAccumulator{isDomestic: record.IsDomestic}
			groups[key] = acc
		}

		acc.totalFlights++
		if record.Price > 0 {
			acc.prices = append(acc.prices, record.Price)
		}
		acc.demandScores = append(acc.demandScores, record.DemandScore)
		acc.searchCount += record.SearchVolume
		acc.bookingCount += record.BookingVolume
	}

	summaries := make(map[models.RouteKey]models.RouteSummary, len(groups))
	now := time.Now()

	for key, acc := range groups {
		summaries[key] = models.RouteSummary{
			Origin:               key.Origin,
			Destination:          key.Destination,
			TotalFlights:         acc.totalFlights,
			AveragePrice:         RoundToHundredth(mean(acc.prices)),
			PriceVariance:        RoundToHundredth(populationVariance(acc.prices)),
			AverageDemandScore:   RoundToHundredth(mean(acc.demandScores)),
			SearchFrequency:      acc.searchCount,
			BookingFrequency:     acc.bookingCount,
			RoutePopularityScore: popularity.Tier(key.Origin, key.Destination),
			IsDomestic:           acc.isDomestic,
			LastUpdated:          now,
		}
	}

	return summaries
}

// mean возвращает среднее арифметическое, 0 для пустого набора
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationVariance возвращает популяционную дисперсию (деление на n, не n-1).
// Выбор популяционной дисперсии сохранен намеренно, тесты фиксируют его.
func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	m := mean(values)
	sum := 0.0
	for _, v := range values {
		diff := v - m
		sum += diff * diff
	}
	return sum / float64(len(values))
}
