package models

import (
	"time"
)

// RawFlightRecord представляет сырую запись о рейсе, полученную от внешнего провайдера.
// Поля дат хранятся в исходном строковом виде, цена может отсутствовать (0).
type RawFlightRecord struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"` // ISO 8601 от провайдера
	ReturnDate    string  `json:"return_date,omitempty"`
	ArrivalDate   string  `json:"arrival_date,omitempty"`
	Airline       string  `json:"airline,omitempty"`
	FlightNumber  string  `json:"flight_number,omitempty"`
	AircraftType  string  `json:"aircraft_type,omitempty"`
	BookingClass  string  `json:"booking_class,omitempty"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency,omitempty"`
	Availability  int     `json:"availability,omitempty"`
	IsDomestic    bool    `json:"is_domestic"`
	DataSource    string  `json:"data_source,omitempty"`
	RawPayload    []byte  `json:"-"` // исходный JSON предложения
}

// CleanFlightRecord представляет запись о рейсе, прошедшую валидацию.
// Инвариант: повторная валидация чистой записи всегда успешна.
type CleanFlightRecord struct {
	Origin        string     `json:"origin"`
	Destination   string     `json:"destination"`
	DepartureDate time.Time  `json:"departure_date"`
	ReturnDate    *time.Time `json:"return_date,omitempty"`
	Airline       string     `json:"airline,omitempty"`
	FlightNumber  string     `json:"flight_number,omitempty"`
	AircraftType  string     `json:"aircraft_type,omitempty"`
	BookingClass  string     `json:"booking_class,omitempty"`
	Price         float64    `json:"price"`
	Currency      string     `json:"currency"`
	Availability  int        `json:"availability"`
	IsDomestic    bool       `json:"is_domestic"`
	DataSource    string     `json:"data_source"`
	RawPayload    []byte     `json:"-"`
}

// ScoredFlightRecord представляет чистую запись с рассчитанными метриками спроса.
// Создается один раз при пакетной обработке и далее не изменяется.
type ScoredFlightRecord struct {
	CleanFlightRecord

	DemandScore     float64 `json:"demand_score"` // [0, 100]
	Season          string  `json:"season"`       // summer, autumn, winter, spring, unknown
	IsHolidayPeriod bool    `json:"is_holiday_period"`
	IsWeekend       bool    `json:"is_weekend"`
	ScoreFallback   bool    `json:"score_fallback"` // true, если скоринг вернул нейтральное значение

	// Счетчики спроса (могут быть заполнены слоем персистентности)
	SearchVolume  int    `json:"search_volume"`
	BookingVolume int    `json:"booking_volume"`
	PriceTrend    string `json:"price_trend,omitempty"`
}

// RouteKey однозначно идентифицирует направленный маршрут.
// Направление имеет значение: A->B и B->A — разные маршруты.
type RouteKey struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// RouteSummary содержит агрегированные метрики по маршруту
type RouteSummary struct {
	Origin               string    `json:"origin"`
	Destination          string    `json:"destination"`
	TotalFlights         int       `json:"total_flights"`
	AveragePrice         float64   `json:"average_price"`
	PriceVariance        float64   `json:"price_variance"` // популяционная дисперсия
	AverageDemandScore   float64   `json:"average_demand_score"`
	SearchFrequency      int       `json:"search_frequency"`
	BookingFrequency     int       `json:"booking_frequency"`
	RoutePopularityScore float64   `json:"route_popularity_score"`
	PriceTrend           string    `json:"price_trend,omitempty"`
	IsDomestic           bool      `json:"is_domestic"`
	LastUpdated          time.Time `json:"last_updated,omitempty"`
}
