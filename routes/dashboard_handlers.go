// routes/dashboard_handlers.go
package routes

import (
	"net/http"
	"time"
)

// DashboardSummaryHandler возвращает сводную статистику для дашборда
// вместе с данными о последнем успешном запуске анализа
func DashboardSummaryHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := deps.FlightRepo.GetDashboardStats()
		if err != nil {
			deps.Logger.Error("Ошибка при получении статистики дашборда: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при получении статистики")
			return
		}

		lastRun, err := deps.RunLogRepo.GetLastSuccessfulRun()
		if err != nil {
			deps.Logger.Error("Ошибка при получении последнего запуска: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при получении статистики")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"stats":    stats,
			"last_run": lastRun,
		})
	}
}

// HealthHandler сообщает о живости сервиса
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	}
}
