package aggregate

import (
	"testing"

	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/popularity"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

func scored(origin, destination string, price, demandScore float64) models.ScoredFlightRecord {
	return models.ScoredFlightRecord{
		CleanFlightRecord: models.CleanFlightRecord{
			Origin:      origin,
			Destination: destination,
			Price:       price,
			IsDomestic:  true,
		},
		DemandScore: demandScore,
	}
}

func TestRoutesEmpty(t *testing.T) {
	summaries := Routes(nil)
	if len(summaries) != 0 {
		t.Errorf("пустой вход дал %d маршрутов, want 0", len(summaries))
	}
}

func TestRoutesSingleRoute(t *testing.T) {
	records := []models.ScoredFlightRecord{
		scored("SYD", "MEL", 100, 60),
		scored("SYD", "MEL", 150, 70),
		scored("SYD", "MEL", 200, 80),
	}

	summaries := Routes(records)
	if len(summaries) != 1 {
		t.Fatalf("получено %d маршрутов, want 1", len(summaries))
	}

	summary := summaries[models.RouteKey{Origin: "SYD", Destination: "MEL"}]

	if summary.TotalFlights != 3 {
		t.Errorf("TotalFlights = %d, want 3", summary.TotalFlights)
	}
	if summary.AveragePrice != 150.0 {
		t.Errorf("AveragePrice = %v, want 150.0", summary.AveragePrice)
	}
	// Популяционная дисперсия [100, 150, 200]: 5000/3 = 1666.67
	if summary.PriceVariance != 1666.67 {
		t.Errorf("PriceVariance = %v, want 1666.67", summary.PriceVariance)
	}
	if summary.AverageDemandScore != 70.0 {
		t.Errorf("AverageDemandScore = %v, want 70.0", summary.AverageDemandScore)
	}
	if summary.RoutePopularityScore != popularity.TierMajorDomestic {
		t.Errorf("RoutePopularityScore = %v, want %v", summary.RoutePopularityScore, popularity.TierMajorDomestic)
	}
	if !summary.IsDomestic {
		t.Error("IsDomestic = false, want true")
	}
}

func TestRoutesDirectionSensitive(t *testing.T) {
	// A->B и B->A — разные маршруты
	records := []models.ScoredFlightRecord{
		scored("SYD", "MEL", 100, 60),
		scored("MEL", "SYD", 300, 70),
	}

	summaries := Routes(records)
	if len(summaries) != 2 {
		t.Fatalf("получено %d маршрутов, want 2", len(summaries))
	}

	forward := summaries[models.RouteKey{Origin: "SYD", Destination: "MEL"}]
	backward := summaries[models.RouteKey{Origin: "MEL", Destination: "SYD"}]

	if forward.AveragePrice != 100.0 || backward.AveragePrice != 300.0 {
		t.Errorf("направления смешаны: %v / %v", forward.AveragePrice, backward.AveragePrice)
	}
}

func TestRoutesCountMatchesInput(t *testing.T) {
	records := []models.ScoredFlightRecord{
		scored("SYD", "MEL", 100, 60),
		scored("SYD", "MEL", 150, 60),
		scored("SYD", "BNE", 200, 60),
	}

	summaries := Routes(records)

	total := 0
	for _, summary := range summaries {
		total += summary.TotalFlights
	}
	if total != len(records) {
		t.Errorf("суммарный TotalFlights = %d, want %d", total, len(records))
	}
}

func TestRoutesZeroPriceExcludedFromAverages(t *testing.T) {
	// Нулевая цена не участвует в ценовой статистике,
	// но запись учитывается в количестве рейсов и среднем скоре
	records := []models.ScoredFlightRecord{
		scored("SYD", "MEL", 200, 60),
		scored("SYD", "MEL", 0, 80),
	}

	summary := Routes(records)[models.RouteKey{Origin: "SYD", Destination: "MEL"}]

	if summary.TotalFlights != 2 {
		t.Errorf("TotalFlights = %d, want 2", summary.TotalFlights)
	}
	if summary.AveragePrice != 200.0 {
		t.Errorf("AveragePrice = %v, want 200.0", summary.AveragePrice)
	}
	if summary.AverageDemandScore != 70.0 {
		t.Errorf("AverageDemandScore = %v, want 70.0", summary.AverageDemandScore)
	}
}

func TestRoutesVolumeSums(t *testing.T) {
	first := scored("SYD", "MEL", 100, 60)
	first.SearchVolume = 3
	first.BookingVolume = 1

	second := scored("SYD", "MEL", 150, 60)
	second.SearchVolume = 2
	second.BookingVolume = 4

	summary := Routes([]models.ScoredFlightRecord{first, second})[models.RouteKey{Origin: "SYD", Destination: "MEL"}]

	if summary.SearchFrequency != 5 {
		t.Errorf("SearchFrequency = %d, want 5", summary.SearchFrequency)
	}
	if summary.BookingFrequency != 5 {
		t.Errorf("BookingFrequency = %d, want 5", summary.BookingFrequency)
	}
}

func TestPopulationVariance(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"пустой набор", nil, 0},
		{"одно значение", []float64{42}, 0},
		{"одинаковые значения", []float64{5, 5, 5}, 0},
		{"деление на n", []float64{100, 150, 200}, 5000.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := populationVariance(tt.values)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("populationVariance(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
