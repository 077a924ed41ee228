package insights

import (
	"math"
	"sort"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

// Пороговые значения категорий спроса
const (
	highDemandThreshold   = 70.0
	mediumDemandThreshold = 40.0
)

// Максимальное количество маршрутов в списке популярных направлений
const popularRoutesLimit = 10

// RoundToHundredth округляет число до сотых (2 знака после запятой)
func RoundToHundredth(value float64) float64 {
	return math.Round(value*100) / 100
}

// BuildDigest строит структурированную выжимку рыночных данных для
// генератора инсайтов. Пустой набор записей дает пустой дайджест.
func BuildDigest(records []models.ScoredFlightRecord) models.MarketDigest {
	digest := models.MarketDigest{
		PriceTrends:      make(map[string]int),
		SeasonalPatterns: make(map[string]int),
	}

	if len(records) == 0 {
		return digest
	}

	digest.TotalFlights = len(records)

	priceSum := 0.0
	pricedCount := 0
	demandSum := 0.0

	for _, record := range records {
		if record.IsDomestic {
			digest.DomesticFlights++
		} else {
			digest.InternationalFlights++
		}

		if record.Price > 0 {
			priceSum += record.Price
			pricedCount++

			if digest.PriceRange.Min == 0 || record.Price < digest.PriceRange.Min {
				digest.PriceRange.Min = record.Price
			}
			if record.Price > digest.PriceRange.Max {
				digest.PriceRange.Max = record.Price
			}
		}

		if record.Season != "" {
			digest.SeasonalPatterns[record.Season]++
		}

		if record.PriceTrend != "" {
			digest.PriceTrends[record.PriceTrend]++
		}

		// Категоризация спроса
		switch {
		case record.DemandScore >= highDemandThreshold:
			digest.DemandPatterns.HighDemand++
		case record.DemandScore >= mediumDemandThreshold:
			digest.DemandPatterns.MediumDemand++
		default:
			digest.DemandPatterns.LowDemand++
		}
		demandSum += record.DemandScore
	}

	if pricedCount > 0 {
		digest.AveragePrice = RoundToHundredth(priceSum / float64(pricedCount))
	}
	digest.DemandPatterns.AverageDemandScore = RoundToHundredth(demandSum / float64(len(records)))
	digest.PopularRoutes = popularRoutes(records)

	return digest
}

// popularRoutes возвращает маршруты, отсортированные по количеству рейсов
func popularRoutes(records []models.ScoredFlightRecord) []models.PopularRoute {
	counts := make(map[models.RouteKey]int)
	for _, record := range records {
		counts[models.RouteKey{Origin: record.Origin, Destination: record.Destination}]++
	}

	routes := make([]models.PopularRoute, 0, len(counts))
	for key, count := range counts {
		routes = append(routes, models.PopularRoute{
			Origin:      key.Origin,
			Destination: key.Destination,
			FlightCount: count,
		})
	}

	// Сортировка по убыванию количества; при равенстве — по ключу маршрута
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].FlightCount != routes[j].FlightCount {
			return routes[i].FlightCount > routes[j].FlightCount
		}
		if routes[i].Origin != routes[j].Origin {
			return routes[i].Origin < routes[j].Origin
		}
		return routes[i].Destination < routes[j].Destination
	})

	if len(routes) > popularRoutesLimit {
		routes = routes[:popularRoutesLimit]
	}

	return routes
}
