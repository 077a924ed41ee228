package amadeus

import (
	"encoding/json"
	"strconv"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

// ParseOffer преобразует предложение Amadeus в сырую запись о рейсе.
// Отсутствующие или неразбираемые поля остаются пустыми: валидацией
// занимается пакетная очистка, парсер не отклоняет записи.
func ParseOffer(offer FlightOffer) models.RawFlightRecord {
	record := models.RawFlightRecord{
		Availability: offer.NumberOfBookableSeats,
		Currency:     offer.Price.Currency,
		DataSource:   "amadeus",
	}

	// Цена приходит строкой; неразбираемая цена остается нулевой
	if offer.Price.Total != "" {
		if price, err := strconv.ParseFloat(offer.Price.Total, 64); err == nil {
			record.Price = price
		}
	}

	// Берем первый сегмент первого маршрута
	if len(offer.Itineraries) > 0 && len(offer.Itineraries[0].Segments) > 0 {
		segment := offer.Itineraries[0].Segments[0]

		record.Origin = segment.Departure.IataCode
		record.Destination = segment.Arrival.IataCode
		record.DepartureDate = segment.Departure.At
		record.ArrivalDate = segment.Arrival.At
		record.Airline = segment.CarrierCode
		record.FlightNumber = segment.Number
		record.AircraftType = segment.Aircraft.Code
		record.BookingClass = segment.BookingClass
	}

	// Сохраняем исходное предложение для слоя персистентности
	if payload, err := json.Marshal(offer); err == nil {
		record.RawPayload = payload
	}

	return record
}
