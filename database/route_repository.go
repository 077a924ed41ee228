package database

import (
	"database/sql"
	"fmt"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// MySQLRouteRepository реализует хранение сводок по маршрутам в MySQL
type MySQLRouteRepository struct {
	db     *sql.DB
	logger *utils.AnalysisLogger
}

// NewMySQLRouteRepository создает новый экземпляр MySQLRouteRepository
func NewMySQLRouteRepository(db *sql.DB, logger *utils.AnalysisLogger) *MySQLRouteRepository {
	return &MySQLRouteRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSummaries сохраняет сводки по маршрутам, обновляя существующие записи
func (r *MySQLRouteRepository) UpsertSummaries(summaries map[models.RouteKey]models.RouteSummary) error {
	if len(summaries) == 0 {
		return nil
	}

	// Используем транзакцию для атомарной записи
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка при создании транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO routes
		(origin, destination, total_flights, average_price, price_variance,
		 average_demand_score, search_frequency, booking_frequency,
		 route_popularity_score, price_trend, is_domestic)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
		total_flights = VALUES(total_flights),
		average_price = VALUES(average_price),
		price_variance = VALUES(price_variance),
		average_demand_score = VALUES(average_demand_score),
		search_frequency = VALUES(search_frequency),
		booking_frequency = VALUES(booking_frequency),
		route_popularity_score = VALUES(route_popularity_score),
		price_trend = VALUES(price_trend),
		is_domestic = VALUES(is_domestic)
	`)
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса: %w", err)
	}
	defer stmt.Close()

	for key, summary := range summaries {
		var priceTrend interface{}
		if summary.PriceTrend != "" {
			priceTrend = summary.PriceTrend
		}

		if _, err = stmt.Exec(
			summary.Origin,
			summary.Destination,
			summary.TotalFlights,
			summary.AveragePrice,
			summary.PriceVariance,
			summary.AverageDemandScore,
			summary.SearchFrequency,
			summary.BookingFrequency,
			summary.RoutePopularityScore,
			priceTrend,
			summary.IsDomestic,
		); err != nil {
			return fmt.Errorf("ошибка при сохранении сводки маршрута %s -> %s: %w", key.Origin, key.Destination, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	r.logger.Info("Сохранено сводок по маршрутам: %d", len(summaries))
	return nil
}

// GetSummaries возвращает сводки по маршрутам с пагинацией
func (r *MySQLRouteRepository) GetSummaries(limit, offset int) ([]models.RouteSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT origin, destination, total_flights, average_price, price_variance,
		       average_demand_score, search_frequency, booking_frequency,
		       route_popularity_score, IFNULL(price_trend, ''), is_domestic, last_updated
		FROM routes
		ORDER BY total_flights DESC, origin, destination
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе сводок маршрутов: %w", err)
	}
	defer rows.Close()

	summaries := make([]models.RouteSummary, 0)
	for rows.Next() {
		var summary models.RouteSummary

		err := rows.Scan(
			&summary.Origin,
			&summary.Destination,
			&summary.TotalFlights,
			&summary.AveragePrice,
			&summary.PriceVariance,
			&summary.AverageDemandScore,
			&summary.SearchFrequency,
			&summary.BookingFrequency,
			&summary.RoutePopularityScore,
			&summary.PriceTrend,
			&summary.IsDomestic,
			&summary.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании сводки маршрута: %w", err)
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по сводкам: %w", err)
	}

	return summaries, nil
}
