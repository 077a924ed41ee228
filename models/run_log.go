package models

import (
	"time"
)

// AnalysisRunLog представляет запись журнала о запуске цикла анализа
type AnalysisRunLog struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"` // in_progress, success, failed
	OffersFetched   int       `json:"offers_fetched"`
	FlightsAccepted int       `json:"flights_accepted"`
	FlightsRejected int       `json:"flights_rejected"`
	RoutesUpdated   int       `json:"routes_updated"`
	ErrorMessage    string    `json:"error_message,omitempty"`
}
