package database

import (
	"database/sql"
	"fmt"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// MySQLInsightRepository реализует хранение сгенерированных инсайтов в MySQL
type MySQLInsightRepository struct {
	db     *sql.DB
	logger *utils.AnalysisLogger
}

// NewMySQLInsightRepository создает новый экземпляр MySQLInsightRepository
func NewMySQLInsightRepository(db *sql.DB, logger *utils.AnalysisLogger) *MySQLInsightRepository {
	return &MySQLInsightRepository{
		db:     db,
		logger: logger,
	}
}

// SaveInsight сохраняет инсайт
func (r *MySQLInsightRepository) SaveInsight(insight models.Insight) error {
	_, err := r.db.Exec(`
		INSERT INTO insights
		(id, title, content, insight_type, category, priority,
		 confidence_score, data_points_used, is_active, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		insight.ID,
		insight.Title,
		insight.Content,
		insight.InsightType,
		insight.Category,
		insight.Priority,
		insight.ConfidenceScore,
		insight.DataPointsUsed,
		insight.IsActive,
		insight.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении инсайта: %w", err)
	}

	return nil
}

// GetActiveInsights возвращает активные инсайты, новые первыми
func (r *MySQLInsightRepository) GetActiveInsights(limit int) ([]models.Insight, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, title, content, insight_type, IFNULL(category, ''), priority,
		       IFNULL(confidence_score, 0), IFNULL(data_points_used, 0),
		       is_active, generated_at
		FROM insights
		WHERE is_active = TRUE
		ORDER BY generated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при запросе инсайтов: %w", err)
	}
	defer rows.Close()

	insights := make([]models.Insight, 0)
	for rows.Next() {
		var insight models.Insight

		err := rows.Scan(
			&insight.ID,
			&insight.Title,
			&insight.Content,
			&insight.InsightType,
			&insight.Category,
			&insight.Priority,
			&insight.ConfidenceScore,
			&insight.DataPointsUsed,
			&insight.IsActive,
			&insight.GeneratedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка при сканировании инсайта: %w", err)
		}

		insights = append(insights, insight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при итерации по инсайтам: %w", err)
	}

	return insights, nil
}
