// routes/api_routes.go
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/shubhra2160/Airline-market-demand-analysis/analysis"
	"github.com/shubhra2160/Airline-market-demand-analysis/database"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
	"github.com/shubhra2160/Airline-market-demand-analysis/websocket"
)

// Dependencies содержит зависимости обработчиков API
type Dependencies struct {
	Pipeline    *analysis.Pipeline
	FlightRepo  *database.MySQLFlightRepository
	RouteRepo   *database.MySQLRouteRepository
	InsightRepo *database.MySQLInsightRepository
	RunLogRepo  *database.MySQLRunLogRepository
	WSManager   *websocket.Manager
	Logger      *utils.AnalysisLogger
}

// SetupRoutes настраивает все маршруты API и WebSocket
func SetupRoutes(router *mux.Router, deps Dependencies) http.Handler {
	// WebSocket статуса анализа для дашборда
	router.HandleFunc("/ws/status", deps.WSManager.HandleConnections)

	// Запуск цикла анализа
	router.HandleFunc("/api/fetch-flights", FetchFlightsHandler(deps)).Methods("POST", "OPTIONS")

	// API рейсов
	router.HandleFunc("/api/flights", GetFlightsHandler(deps)).Methods("GET", "OPTIONS")

	// API маршрутов
	router.HandleFunc("/api/routes", GetRoutesHandler(deps)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/forecast", ForecastHandler(deps)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/export/routes", ExportRoutesHandler(deps)).Methods("GET", "OPTIONS")

	// API инсайтов
	router.HandleFunc("/api/insights", GetInsightsHandler(deps)).Methods("GET", "OPTIONS")
	router.HandleFunc("/api/insights/generate", GenerateInsightsHandler(deps)).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/insights/routes", AnalyzeRoutesHandler(deps)).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/insights/price-trends", AnalyzePriceTrendsHandler(deps)).Methods("POST", "OPTIONS")

	// Сводка дашборда
	router.HandleFunc("/api/dashboard/summary", DashboardSummaryHandler(deps)).Methods("GET", "OPTIONS")

	// Проверка живости
	router.HandleFunc("/health", HealthHandler()).Methods("GET")

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return corsHandler.Handler(router)
}

// respondJSON сериализует payload и отправляет его с заданным статусом
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		return
	}
}

// respondError отправляет ошибку в едином JSON-формате
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
