package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// MySQLRunLogRepository реализует журнал запусков цикла анализа в MySQL
type MySQLRunLogRepository struct {
	db     *sql.DB
	logger *utils.AnalysisLogger
}

// NewMySQLRunLogRepository создает новый экземпляр MySQLRunLogRepository
func NewMySQLRunLogRepository(db *sql.DB, logger *utils.AnalysisLogger) *MySQLRunLogRepository {
	return &MySQLRunLogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLogEntry создает запись о начале запуска и возвращает ее ID
func (r *MySQLRunLogRepository) CreateLogEntry(startTime time.Time) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO analysis_run_log (start_time, status)
		VALUES (?, 'in_progress')
	`, startTime)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании записи журнала: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ошибка при получении ID записи журнала: %w", err)
	}

	return id, nil
}

// UpdateLogEntrySuccess обновляет запись журнала при успешном завершении
func (r *MySQLRunLogRepository) UpdateLogEntrySuccess(id int64, endTime time.Time, fetched, accepted, rejected, routes int) error {
	_, err := r.db.Exec(`
		UPDATE analysis_run_log
		SET end_time = ?, status = 'success',
		    offers_fetched = ?, flights_accepted = ?,
		    flights_rejected = ?, routes_updated = ?
		WHERE id = ?
	`, endTime, fetched, accepted, rejected, routes, id)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи журнала: %w", err)
	}

	return nil
}

// UpdateLogEntryFailure обновляет запись журнала при ошибке
func (r *MySQLRunLogRepository) UpdateLogEntryFailure(id int64, endTime time.Time, errorMessage string) error {
	_, err := r.db.Exec(`
		UPDATE analysis_run_log
		SET end_time = ?, status = 'failed', error_message = ?
		WHERE id = ?
	`, endTime, errorMessage, id)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении записи журнала: %w", err)
	}

	return nil
}

// GetLastSuccessfulRun возвращает последний успешный запуск цикла анализа
func (r *MySQLRunLogRepository) GetLastSuccessfulRun() (*models.AnalysisRunLog, error) {
	var runLog models.AnalysisRunLog
	var endTime sql.NullTime
	var errorMessage sql.NullString

	err := r.db.QueryRow(`
		SELECT id, start_time, end_time, status,
		       offers_fetched, flights_accepted, flights_rejected,
		       routes_updated, error_message
		FROM analysis_run_log
		WHERE status = 'success'
		ORDER BY end_time DESC
		LIMIT 1
	`).Scan(
		&runLog.ID,
		&runLog.StartTime,
		&endTime,
		&runLog.Status,
		&runLog.OffersFetched,
		&runLog.FlightsAccepted,
		&runLog.FlightsRejected,
		&runLog.RoutesUpdated,
		&errorMessage,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе последнего запуска: %w", err)
	}

	if endTime.Valid {
		runLog.EndTime = endTime.Time
	}
	if errorMessage.Valid {
		runLog.ErrorMessage = errorMessage.String
	}

	return &runLog, nil
}
