package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/processor"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// FlightFilter содержит параметры выборки рейсов
type FlightFilter struct {
	Origin      string
	Destination string
	IsDomestic  *bool
	Limit       int
	Offset      int
}

// TopRoute представляет маршрут в сводке дашборда
type TopRoute struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	FlightCount int    `json:"flight_count"`
}

// DashboardStats содержит сводную статистику для дашборда
type DashboardStats struct {
	TotalFlights         int        `json:"total_flights"`
	DomesticFlights      int        `json:"domestic_flights"`
	InternationalFlights int        `json:"international_flights"`
	AveragePrice         float64    `json:"average_price"`
	MinPrice             float64    `json:"min_price"`
	MaxPrice             float64    `json:"max_price"`
	FlightsLastWeek      int        `json:"flights_last_week"`
	AverageDemandScore   float64    `json:"average_demand_score"`
	TopRoutes            []TopRoute `json:"top_routes"`
}

// MySQLFlightRepository реализует хранение рейсов и метрик спроса в MySQL
type MySQLFlightRepository struct {
	db     *sql.DB
	logger *utils.AnalysisLogger
}

// NewMySQLFlightRepository создает новый экземпляр MySQLFlightRepository
func NewMySQLFlightRepository(db *sql.DB, logger *utils.AnalysisLogger) *MySQLFlightRepository {
	return &MySQLFlightRepository{
		db:     db,
		logger: logger,
	}
}

// SaveScoredFlights сохраняет оцененные записи и их метрики спроса.
// Исходный JSON предложения сжимается перед записью.
func (r *MySQLFlightRepository) SaveScoredFlights(records []models.ScoredFlightRecord) error {
	if len(records) == 0 {
		return nil
	}

	// Используем транзакцию для атомарной записи рейсов и метрик
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка при создании транзакции: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	flightStmt, err := tx.Prepare(`
		INSERT INTO flights
		(origin, destination, departure_date, return_date, airline, flight_number,
		 aircraft_type, booking_class, price, currency, availability, is_domestic,
		 data_source, raw_payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса вставки рейса: %w", err)
	}
	defer flightStmt.Close()

	metricStmt, err := tx.Prepare(`
		INSERT INTO demand_metrics
		(flight_id, demand_score, season, is_holiday_period, is_weekend,
		 score_fallback, search_volume, booking_volume, price_trend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("ошибка при подготовке запроса вставки метрики: %w", err)
	}
	defer metricStmt.Close()

	for _, record := range records {
		var returnDate interface{}
		if record.ReturnDate != nil {
			returnDate = *record.ReturnDate
		}

		var payload []byte
		if len(record.RawPayload) > 0 {
			payload = processor.CompressPayload(record.RawPayload)
		}

		// Присваиваем во внешний err, чтобы отложенный откат сработал при ошибке
		var result sql.Result
		result, err = flightStmt.Exec(
			record.Origin,
			record.Destination,
			record.DepartureDate,
			returnDate,
			record.Airline,
			record.FlightNumber,
			record.AircraftType,
			record.BookingClass,
			record.Price,
			record.Currency,
			record.Availability,
			record.IsDomestic,
			record.DataSource,
			payload,
		)
		if err != nil {
			return fmt.Errorf("ошибка при вставке рейса %s -> %s: %w", record.Origin, record.Destination, err)
		}

		var flightID int64
		flightID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("ошибка при получении ID рейса: %w", err)
		}

		var priceTrend interface{}
		if record.PriceTrend != "" {
			priceTrend = record.PriceTrend
		}

		if _, err = metricStmt.Exec(
			flightID,
			record.DemandScore,
			record.Season,
			record.IsHolidayPeriod,
			record.IsWeekend,
			record.ScoreFallback,
			record.SearchVolume,
			record.BookingVolume,
			priceTrend,
		); err != nil {
			return fmt.Errorf("ошибка при вставке метрики для рейса %d: %w", flightID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	r.logger.Info("Сохранено рейсов с метриками: %d", len(records))
	return nil
}

// GetFlights возвращает рейсы с метриками по фильтру
func (r *MySQLFlightRepository) GetFlights(filter FlightFilter) ([]models.ScoredFlightRecord, error) {
	query := `
		SELECT f.origin, f.destination, f.departure_date, f.return_date,
		       f.airline, f.flight_number, f.aircraft_type, f.booking_class,
		       f.price, f.currency, f.availability, f.is_domestic, f.data_source,
		       m.demand_score, m.season, m.is_holiday_period, m.is_weekend,
		       m.score_fallback, m.search_volume, m.booking_volume,
		       IFNULL(m.price_trend, '')
		FROM flights f
		JOIN demand_metrics m ON m.flight_id = f.id
		WHERE 1=1`

	args := make([]interface{}, 0, 5)

	if filter.Origin != "" {
		query += " AND f.origin = ?"
		args = append(args, filter.Origin)
	}
	if filter.Destination != "" {
		query += " AND f.destination = ?"
		args = append(args, filter.Destination)
	}
	if filter.IsDomestic != nil {
		query += " AND f.is_domestic = ?"
		args = append(args, *filter.IsDomestic)
	}

	query += " ORDER BY f.id DESC"

	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе рейсов: %w", err)
	}
	defer rows.Close()

	return scanScoredFlights(rows)
}

// GetAllScored возвращает все рейсы с метриками для построения дайджеста
func (r *MySQLFlightRepository) GetAllScored() ([]models.ScoredFlightRecord, error) {
	return r.GetFlights(FlightFilter{})
}

// GetDailyAveragePrices возвращает средние дневные цены маршрута за период
func (r *MySQLFlightRepository) GetDailyAveragePrices(origin, destination string, days int) (map[time.Time]float64, error) {
	startDate := time.Now().AddDate(0, 0, -days)

	rows, err := r.db.Query(`
		SELECT DATE(departure_date) as day, AVG(price) as avg_price
		FROM flights
		WHERE origin = ? AND destination = ?
		  AND departure_date >= ?
		  AND price > 0
		GROUP BY DATE(departure_date)
		ORDER BY day ASC
	`, origin, destination, startDate)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе дневных цен: %w", err)
	}
	defer rows.Close()

	prices := make(map[time.Time]float64)
	for rows.Next() {
		var day string
		var avgPrice float64
		if err := rows.Scan(&day, &avgPrice); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании дневной цены: %w", err)
		}

		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		prices[date] = avgPrice
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по дневным ценам: %w", err)
	}

	return prices, nil
}

// GetDashboardStats возвращает сводную статистику для дашборда
func (r *MySQLFlightRepository) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       IFNULL(SUM(is_domestic), 0),
		       IFNULL(AVG(NULLIF(price, 0)), 0),
		       IFNULL(MIN(NULLIF(price, 0)), 0),
		       IFNULL(MAX(price), 0)
		FROM flights
	`).Scan(&stats.TotalFlights, &stats.DomesticFlights, &stats.AveragePrice, &stats.MinPrice, &stats.MaxPrice)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе статистики рейсов: %w", err)
	}
	stats.InternationalFlights = stats.TotalFlights - stats.DomesticFlights

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM flights WHERE created_at >= ?`, weekAgo).
		Scan(&stats.FlightsLastWeek); err != nil {
		return nil, fmt.Errorf("ошибка при запросе недавних рейсов: %w", err)
	}

	if err := r.db.QueryRow(`SELECT IFNULL(AVG(demand_score), 0) FROM demand_metrics`).
		Scan(&stats.AverageDemandScore); err != nil {
		return nil, fmt.Errorf("ошибка при запросе среднего скора спроса: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT origin, destination, COUNT(*) as flight_count
		FROM flights
		GROUP BY origin, destination
		ORDER BY flight_count DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе популярных маршрутов: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var route TopRoute
		if err := rows.Scan(&route.Origin, &route.Destination, &route.FlightCount); err != nil {
			return nil, fmt.Errorf("ошибка при сканировании маршрута: %w", err)
		}
		stats.TopRoutes = append(stats.TopRoutes, route)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по маршрутам: %w", err)
	}

	return stats, nil
}

// scanScoredFlights сканирует строки выборки рейсов с метриками
func scanScoredFlights(rows *sql.Rows) ([]models.ScoredFlightRecord, error) {
	records := make([]models.ScoredFlightRecord, 0)

	for rows.Next() {
		var record models.ScoredFlightRecord
		var returnDate sql.NullTime

		err := rows.Scan(
			&record.Origin,
			&record.Destination,
			&record.DepartureDate,
			&returnDate,
			&record.Airline,
			&record.FlightNumber,
			&record.AircraftType,
			&record.BookingClass,
			&record.Price,
			&record.Currency,
			&record.Availability,
			&record.IsDomestic,
			&record.DataSource,
			&record.DemandScore,
			&record.Season,
			&record.IsHolidayPeriod,
			&record.IsWeekend,
			&record.ScoreFallback,
			&record.SearchVolume,
			&record.BookingVolume,
			&record.PriceTrend,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании рейса: %w", err)
		}

		if returnDate.Valid {
			record.ReturnDate = &returnDate.Time
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по рейсам: %w", err)
	}

	return records, nil
}
