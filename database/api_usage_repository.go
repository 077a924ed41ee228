package database

import (
	"database/sql"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// MySQLApiUsageRepository фиксирует обращения к внешним API в MySQL
type MySQLApiUsageRepository struct {
	db     *sql.DB
	logger *utils.AnalysisLogger
}

// NewMySQLApiUsageRepository создает новый экземпляр MySQLApiUsageRepository
func NewMySQLApiUsageRepository(db *sql.DB, logger *utils.AnalysisLogger) *MySQLApiUsageRepository {
	return &MySQLApiUsageRepository{
		db:     db,
		logger: logger,
	}
}

// RecordUsage сохраняет факт обращения к внешнему API.
// Учет некритичен: ошибка записи логируется и не распространяется.
func (r *MySQLApiUsageRepository) RecordUsage(apiName, endpoint, method string, statusCode int, responseTime time.Duration) {
	_, err := r.db.Exec(`
		INSERT INTO api_usage (api_name, endpoint, method, status_code, response_time_ms)
		VALUES (?, ?, ?, ?, ?)
	`, apiName, endpoint, method, statusCode, responseTime.Milliseconds())
	if err != nil {
		r.logger.Error("Ошибка при записи учета API %s: %v", apiName, err)
	}
}
