package models

// PopularRoute представляет маршрут в списке популярных направлений дайджеста
type PopularRoute struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	FlightCount int    `json:"flight_count"`
}

// PriceRange содержит границы цен по всем рейсам дайджеста
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DemandPatterns содержит распределение рейсов по категориям спроса
type DemandPatterns struct {
	HighDemand         int     `json:"high_demand"`   // demand_score >= 70
	MediumDemand       int     `json:"medium_demand"` // 40 <= demand_score < 70
	LowDemand          int     `json:"low_demand"`    // demand_score < 40
	AverageDemandScore float64 `json:"average_demand_score"`
}

// MarketDigest — структурированная выжимка рыночных данных,
// передаваемая генератору текстовых инсайтов
type MarketDigest struct {
	TotalFlights         int            `json:"total_flights"`
	DomesticFlights      int            `json:"domestic_flights"`
	InternationalFlights int            `json:"international_flights"`
	AveragePrice         float64        `json:"average_price"`
	PriceRange           PriceRange     `json:"price_range"`
	PopularRoutes        []PopularRoute `json:"popular_routes"`
	PriceTrends          map[string]int `json:"price_trends"`      // increasing/decreasing/stable -> count
	SeasonalPatterns     map[string]int `json:"seasonal_patterns"` // season -> count
	DemandPatterns       DemandPatterns `json:"demand_patterns"`
}
