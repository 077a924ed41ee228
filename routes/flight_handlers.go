// routes/flight_handlers.go
package routes

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shubhra2160/Airline-market-demand-analysis/database"
)

const (
	defaultFlightsLimit = 100
	maxFlightsLimit     = 500
)

// FetchFlightsHandler запускает цикл анализа в фоне.
// Повторный запрос во время выполняющегося цикла безопасен: лишний
// запуск будет пропущен конвейером.
func FetchFlightsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		go func() {
			if err := deps.Pipeline.Execute(context.Background()); err != nil {
				deps.Logger.Error("Ошибка при запуске цикла анализа по запросу API: %v", err)
			}
		}()

		respondJSON(w, http.StatusAccepted, map[string]string{
			"status":  "accepted",
			"message": "Цикл анализа запущен, следите за прогрессом через /ws/status",
		})
	}
}

// GetFlightsHandler возвращает оцененные рейсы с фильтрацией и пагинацией
func GetFlightsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := database.FlightFilter{
			Origin:      query.Get("origin"),
			Destination: query.Get("destination"),
			Limit:       defaultFlightsLimit,
		}

		if domesticStr := query.Get("domestic"); domesticStr != "" {
			domestic, err := strconv.ParseBool(domesticStr)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Неверный формат параметра domestic")
				return
			}
			filter.IsDomestic = &domestic
		}

		if limitStr := query.Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit <= 0 {
				respondError(w, http.StatusBadRequest, "Неверный формат параметра limit")
				return
			}
			if limit > maxFlightsLimit {
				limit = maxFlightsLimit
			}
			filter.Limit = limit
		}

		if offsetStr := query.Get("offset"); offsetStr != "" {
			offset, err := strconv.Atoi(offsetStr)
			if err != nil || offset < 0 {
				respondError(w, http.StatusBadRequest, "Неверный формат параметра offset")
				return
			}
			filter.Offset = offset
		}

		flights, err := deps.FlightRepo.GetFlights(filter)
		if err != nil {
			deps.Logger.Error("Ошибка при получении рейсов: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при получении рейсов")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"flights": flights,
			"count":   len(flights),
			"limit":   filter.Limit,
			"offset":  filter.Offset,
		})
	}
}
