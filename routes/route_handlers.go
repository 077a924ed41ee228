// routes/route_handlers.go
package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

const (
	defaultRoutesLimit = 50
	maxRoutesLimit     = 200
)

// GetRoutesHandler возвращает агрегированные сводки маршрутов
func GetRoutesHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		limit := defaultRoutesLimit
		if limitStr := query.Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				respondError(w, http.StatusBadRequest, "Неверный формат параметра limit")
				return
			}
			limit = parsed
			if limit > maxRoutesLimit {
				limit = maxRoutesLimit
			}
		}

		offset := 0
		if offsetStr := query.Get("offset"); offsetStr != "" {
			parsed, err := strconv.Atoi(offsetStr)
			if err != nil || parsed < 0 {
				respondError(w, http.StatusBadRequest, "Неверный формат параметра offset")
				return
			}
			offset = parsed
		}

		summaries, err := deps.RouteRepo.GetSummaries(limit, offset)
		if err != nil {
			deps.Logger.Error("Ошибка при получении сводок маршрутов: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при получении маршрутов")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"routes": summaries,
			"count":  len(summaries),
			"limit":  limit,
			"offset": offset,
		})
	}
}

// ForecastHandler строит линейный прогноз цен для одного маршрута
func ForecastHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		origin := strings.ToUpper(strings.TrimSpace(query.Get("origin")))
		destination := strings.ToUpper(strings.TrimSpace(query.Get("destination")))

		if len(origin) != 3 || len(destination) != 3 {
			respondError(w, http.StatusBadRequest, "Параметры origin и destination обязательны (IATA-код из 3 букв)")
			return
		}

		forecast, err := deps.Pipeline.RouteForecast(origin, destination)
		if err != nil {
			deps.Logger.Error("Ошибка при построении прогноза %s -> %s: %v", origin, destination, err)
			respondError(w, http.StatusNotFound, "Недостаточно истории цен для прогноза по маршруту")
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"origin":      origin,
			"destination": destination,
			"forecast":    forecast,
		})
	}
}

// routesExportHeaders задает порядок колонок экспорта
var routesExportHeaders = []string{
	"Origin", "Destination", "Total Flights", "Average Price",
	"Price Variance", "Average Demand Score", "Popularity Score",
	"Price Trend", "Domestic",
}

// buildRoutesWorkbook формирует книгу Excel со сводками маршрутов.
// Вызывающая сторона закрывает книгу.
func buildRoutesWorkbook(summaries []models.RouteSummary) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Routes"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("ошибка при создании листа экспорта: %w", err)
	}
	f.SetActiveSheet(index)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("ошибка при удалении листа по умолчанию: %w", err)
	}

	for i, name := range routesExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	for rowIdx, summary := range summaries {
		values := []interface{}{
			summary.Origin,
			summary.Destination,
			summary.TotalFlights,
			summary.AveragePrice,
			summary.PriceVariance,
			summary.AverageDemandScore,
			summary.RoutePopularityScore,
			summary.PriceTrend,
			summary.IsDomestic,
		}
		for colIdx, val := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	return f, nil
}

// ExportRoutesHandler выгружает сводки маршрутов в файл Excel
func ExportRoutesHandler(deps Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := deps.RouteRepo.GetSummaries(maxRoutesLimit, 0)
		if err != nil {
			deps.Logger.Error("Ошибка при получении сводок для экспорта: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при получении маршрутов")
			return
		}

		f, err := buildRoutesWorkbook(summaries)
		if err != nil {
			deps.Logger.Error("Ошибка при формировании файла экспорта: %v", err)
			respondError(w, http.StatusInternalServerError, "Ошибка при формировании файла экспорта")
			return
		}
		defer f.Close()

		filename := fmt.Sprintf("routes_%s.xlsx", time.Now().Format("2006-01-02"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := f.Write(w); err != nil {
			deps.Logger.Error("Ошибка при отправке файла экспорта: %v", err)
		}
	}
}
