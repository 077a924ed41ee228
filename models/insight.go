package models

import (
	"time"
)

// Insight представляет сгенерированный языковой моделью инсайт о рынке
type Insight struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	InsightType     string    `json:"insight_type"` // trend, recommendation, alert
	Category        string    `json:"category"`     // pricing, demand, routes, seasonal
	Priority        string    `json:"priority"`     // high, medium, low
	ConfidenceScore float64   `json:"confidence_score"`
	DataPointsUsed  int       `json:"data_points_used"`
	IsActive        bool      `json:"is_active"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// StructuredInsight представляет один извлеченный из текста модели пункт.
// Извлечение выполняется по лучшему усилию и носит рекомендательный характер.
type StructuredInsight struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Type    string `json:"type"`
}
