// routes/insight_handlers.go
package routes

import (
	"net/http"
	"strconv"
)

const defaultInsightsLimit = 20

// GetInsightsHandler возвращает активные инсайты, сгенерированные языковой моделью
func GetInsightsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultInsightsLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				respondError(w, http.StatusBadRequest, "Неверный формат параметра limit")
				return
			}
			limit = parsed
		}

		items, err := deps.InsightRepo.GetActiveInsights(limit)
		if err != nil {
			deps.Logger.Error("Ошибка при получении инсайтов: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при получении инсайтов")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"insights": items,
			"count":    len(items),
		})
	}
}

// GenerateInsightsHandler запрашивает свежие инсайты у языковой модели
// по накопленным данным и сохраняет их
func GenerateInsightsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := deps.Pipeline.GenerateInsights(r.Context(), nil)
		if err != nil {
			deps.Logger.Error("Ошибка при генерации инсайтов по запросу API: %v", err)
			respondError(w, http.StatusServiceUnavailable, "Генерация инсайтов недоступна")
			return
		}

		respondJSON(w, http.StatusOK, response)
	}
}

// AnalyzeRoutesHandler запрашивает у языковой модели анализ
// эффективности маршрутов по текущим сводкам
func AnalyzeRoutesHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := deps.Pipeline.AnalyzeRoutes(r.Context())
		if err != nil {
			deps.Logger.Error("Ошибка при анализе маршрутов по запросу API: %v", err)
			respondError(w, http.StatusServiceUnavailable, "Анализ маршрутов недоступен")
			return
		}

		respondJSON(w, http.StatusOK, response)
	}
}

// AnalyzePriceTrendsHandler запрашивает у языковой модели анализ
// ценовых трендов по текущим сводкам маршрутов
func AnalyzePriceTrendsHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response, err := deps.Pipeline.AnalyzePriceTrends(r.Context())
		if err != nil {
			deps.Logger.Error("Ошибка при анализе ценовых трендов по запросу API: %v", err)
			respondError(w, http.StatusServiceUnavailable, "Анализ ценовых трендов недоступен")
			return
		}

		respondJSON(w, http.StatusOK, response)
	}
}
