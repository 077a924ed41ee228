package cleaner

import (
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// Значения по умолчанию для необязательных полей
const (
	DefaultCurrency   = "AUD"
	DefaultDataSource = "amadeus"
)

// RejectReason описывает причину отклонения записи при валидации
type RejectReason string

const (
	RejectMissingField RejectReason = "missing_required_field"
	RejectInvalidPrice RejectReason = "invalid_price"
	RejectInvalidCode  RejectReason = "invalid_airport_code"
	RejectBadDeparture RejectReason = "bad_departure_date"
)

// Result содержит явный исход валидации одной записи:
// либо принятая чистая запись, либо причина отклонения
type Result struct {
	Record   models.CleanFlightRecord
	Rejected bool
	Reason   RejectReason
}

// BatchStats содержит счетчики пакетной очистки по причинам отклонения
type BatchStats struct {
	Accepted int
	Rejected map[RejectReason]int
}

// TotalRejected возвращает суммарное количество отклоненных записей
func (s BatchStats) TotalRejected() int {
	total := 0
	for _, count := range s.Rejected {
		total += count
	}
	return total
}

// Поддерживаемые форматы дат провайдера
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp разбирает строку даты провайдера в абсолютную метку времени
func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Clean валидирует и нормализует одну сырую запись о рейсе.
// Отклонение — ожидаемый исход, а не ошибка: причина возвращается явно,
// чтобы вызывающая сторона могла вести счетчики.
func Clean(raw models.RawFlightRecord) Result {
	// Обязательные поля: origin, destination, departure_date, price
	if raw.Origin == "" || raw.Destination == "" || raw.DepartureDate == "" {
		return Result{Rejected: true, Reason: RejectMissingField}
	}

	// Цена должна быть положительной
	if raw.Price <= 0 {
		return Result{Rejected: true, Reason: RejectInvalidPrice}
	}

	// Коды аэропортов — ровно 3 символа
	if len(raw.Origin) != 3 || len(raw.Destination) != 3 {
		return Result{Rejected: true, Reason: RejectInvalidCode}
	}

	// Дата вылета обязана разбираться
	departure, ok := parseTimestamp(raw.DepartureDate)
	if !ok {
		return Result{Rejected: true, Reason: RejectBadDeparture}
	}

	record := models.CleanFlightRecord{
		Origin:        raw.Origin,
		Destination:   raw.Destination,
		DepartureDate: departure,
		Airline:       raw.Airline,
		FlightNumber:  raw.FlightNumber,
		AircraftType:  raw.AircraftType,
		BookingClass:  raw.BookingClass,
		Price:         raw.Price,
		Currency:      raw.Currency,
		Availability:  raw.Availability,
		IsDomestic:    raw.IsDomestic,
		DataSource:    raw.DataSource,
		RawPayload:    raw.RawPayload,
	}

	// Неразбираемая дата возврата обнуляется, запись не отклоняется
	if raw.ReturnDate != "" {
		if returnDate, ok := parseTimestamp(raw.ReturnDate); ok {
			record.ReturnDate = &returnDate
		}
	}

	// Значения по умолчанию
	if record.Currency == "" {
		record.Currency = DefaultCurrency
	}
	if record.DataSource == "" {
		record.DataSource = DefaultDataSource
	}

	return Result{Record: record}
}

// CleanBatch обрабатывает последовательность сырых записей и возвращает
// только принятые чистые записи вместе со статистикой отклонений
func CleanBatch(raws []models.RawFlightRecord, logger *utils.AnalysisLogger) ([]models.CleanFlightRecord, BatchStats) {
	accepted := make([]models.CleanFlightRecord, 0, len(raws))
	stats := BatchStats{Rejected: make(map[RejectReason]int)}

	for _, raw := range raws {
		result := Clean(raw)
		if result.Rejected {
			stats.Rejected[result.Reason]++
			if logger != nil {
				logger.Debug("Запись отклонена (%s): %s -> %s", result.Reason, raw.Origin, raw.Destination)
			}
			continue
		}

		accepted = append(accepted, result.Record)
		stats.Accepted++
	}

	if logger != nil {
		logger.Info("Очистка завершена: принято %d, отклонено %d", stats.Accepted, stats.TotalRejected())
	}

	return accepted, stats
}
