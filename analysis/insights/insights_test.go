package insights

import (
	"testing"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

func record(origin, destination string, price, demandScore float64, domestic bool, season string) models.ScoredFlightRecord {
	return models.ScoredFlightRecord{
		CleanFlightRecord: models.CleanFlightRecord{
			Origin:      origin,
			Destination: destination,
			Price:       price,
			IsDomestic:  domestic,
		},
		DemandScore: demandScore,
		Season:      season,
	}
}

func TestBuildDigestEmpty(t *testing.T) {
	digest := BuildDigest(nil)

	if digest.TotalFlights != 0 {
		t.Errorf("TotalFlights = %d, want 0", digest.TotalFlights)
	}
	// Карты инициализированы даже для пустого входа
	if digest.PriceTrends == nil || digest.SeasonalPatterns == nil {
		t.Error("карты дайджеста не инициализированы")
	}
}

func TestBuildDigestTotals(t *testing.T) {
	records := []models.ScoredFlightRecord{
		record("SYD", "MEL", 200, 75, true, "winter"),
		record("SYD", "MEL", 300, 55, true, "winter"),
		record("SYD", "LAX", 1500, 30, false, "summer"),
	}

	digest := BuildDigest(records)

	if digest.TotalFlights != 3 {
		t.Errorf("TotalFlights = %d, want 3", digest.TotalFlights)
	}
	if digest.DomesticFlights != 2 || digest.InternationalFlights != 1 {
		t.Errorf("разбивка domestic/international = %d/%d, want 2/1",
			digest.DomesticFlights, digest.InternationalFlights)
	}
	if digest.AveragePrice != 666.67 {
		t.Errorf("AveragePrice = %v, want 666.67", digest.AveragePrice)
	}
	if digest.PriceRange.Min != 200 || digest.PriceRange.Max != 1500 {
		t.Errorf("PriceRange = %+v, want {200 1500}", digest.PriceRange)
	}
}

func TestBuildDigestDemandCategories(t *testing.T) {
	records := []models.ScoredFlightRecord{
		record("SYD", "MEL", 200, 85, true, ""),  // high
		record("SYD", "MEL", 200, 70, true, ""),  // high (граница включена)
		record("SYD", "BNE", 200, 55, true, ""),  // medium
		record("SYD", "BNE", 200, 40, true, ""),  // medium (граница включена)
		record("MEL", "PER", 200, 39.9, true, ""), // low
	}

	digest := BuildDigest(records)

	if digest.DemandPatterns.HighDemand != 2 {
		t.Errorf("HighDemand = %d, want 2", digest.DemandPatterns.HighDemand)
	}
	if digest.DemandPatterns.MediumDemand != 2 {
		t.Errorf("MediumDemand = %d, want 2", digest.DemandPatterns.MediumDemand)
	}
	if digest.DemandPatterns.LowDemand != 1 {
		t.Errorf("LowDemand = %d, want 1", digest.DemandPatterns.LowDemand)
	}
	// (85+70+55+40+39.9)/5 = 57.98
	if digest.DemandPatterns.AverageDemandScore != 57.98 {
		t.Errorf("AverageDemandScore = %v, want 57.98", digest.DemandPatterns.AverageDemandScore)
	}
}

func TestBuildDigestSeasonalPatterns(t *testing.T) {
	records := []models.ScoredFlightRecord{
		record("SYD", "MEL", 200, 50, true, "winter"),
		record("SYD", "MEL", 200, 50, true, "winter"),
		record("SYD", "LAX", 200, 50, false, "summer"),
		record("SYD", "LAX", 200, 50, false, ""), // сезон неизвестен, не учитывается
	}

	digest := BuildDigest(records)

	if digest.SeasonalPatterns["winter"] != 2 {
		t.Errorf("winter = %d, want 2", digest.SeasonalPatterns["winter"])
	}
	if digest.SeasonalPatterns["summer"] != 1 {
		t.Errorf("summer = %d, want 1", digest.SeasonalPatterns["summer"])
	}
	if len(digest.SeasonalPatterns) != 2 {
		t.Errorf("сезонов в карте %d, want 2", len(digest.SeasonalPatterns))
	}
}

func TestBuildDigestPopularRoutesOrder(t *testing.T) {
	records := []models.ScoredFlightRecord{
		record("SYD", "MEL", 200, 50, true, ""),
		record("SYD", "MEL", 200, 50, true, ""),
		record("SYD", "MEL", 200, 50, true, ""),
		record("MEL", "BNE", 200, 50, true, ""),
		record("SYD", "BNE", 200, 50, true, ""),
		record("SYD", "BNE", 200, 50, true, ""),
	}

	digest := BuildDigest(records)

	if len(digest.PopularRoutes) != 3 {
		t.Fatalf("маршрутов %d, want 3", len(digest.PopularRoutes))
	}

	// Сортировка по убыванию количества, при равенстве — по ключу маршрута
	first := digest.PopularRoutes[0]
	if first.Origin != "SYD" || first.Destination != "MEL" || first.FlightCount != 3 {
		t.Errorf("первый маршрут = %+v, want SYD->MEL (3)", first)
	}

	second := digest.PopularRoutes[1]
	if second.Origin != "SYD" || second.Destination != "BNE" || second.FlightCount != 2 {
		t.Errorf("второй маршрут = %+v, want SYD->BNE (2)", second)
	}
}

func TestBuildDigestPopularRoutesLimit(t *testing.T) {
	// Больше маршрутов, чем лимит списка популярных направлений
	var records []models.ScoredFlightRecord
	codes := []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG", "HHH", "III", "JJJ", "KKK", "LLL"}
	for _, code := range codes {
		records = append(records, record("SYD", code, 200, 50, true, ""))
	}

	digest := BuildDigest(records)

	if len(digest.PopularRoutes) != popularRoutesLimit {
		t.Errorf("маршрутов в списке %d, want %d", len(digest.PopularRoutes), popularRoutesLimit)
	}
}

func TestBuildDigestZeroPricesIgnored(t *testing.T) {
	records := []models.ScoredFlightRecord{
		record("SYD", "MEL", 0, 50, true, ""),
		record("SYD", "MEL", 400, 50, true, ""),
	}

	digest := BuildDigest(records)

	if digest.AveragePrice != 400.0 {
		t.Errorf("AveragePrice = %v, want 400.0", digest.AveragePrice)
	}
	if digest.PriceRange.Min != 400 || digest.PriceRange.Max != 400 {
		t.Errorf("PriceRange = %+v, want {400 400}", digest.PriceRange)
	}
}
