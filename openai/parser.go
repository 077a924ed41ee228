package openai

import (
	"strings"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

// Максимальная длина заголовка извлеченного инсайта
const insightTitleLimit = 100

// ParseInsights извлекает из текста модели пункты, похожие на список:
// строки, начинающиеся с цифры или дефиса, открывают новый пункт,
// последующие строки присоединяются к его содержимому.
// Извлечение по лучшему усилию, текст модели не валидируется.
func ParseInsights(text string) []models.StructuredInsight {
	insights := make([]models.StructuredInsight, 0)

	var current *models.StructuredInsight
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if isBulletLine(line) {
			if current != nil {
				insights = append(insights, *current)
			}

			title := line
			if len(title) > insightTitleLimit {
				title = title[:insightTitleLimit]
			}

			current = &models.StructuredInsight{
				Title:   title,
				Content: line,
				Type:    "insight",
			}
			continue
		}

		if current != nil {
			current.Content += "\n" + line
		}
	}

	if current != nil {
		insights = append(insights, *current)
	}

	return insights
}

// isBulletLine проверяет, открывает ли строка новый пункт списка
func isBulletLine(line string) bool {
	if strings.HasPrefix(line, "-") {
		return true
	}
	first := line[0]
	return first >= '0' && first <= '9'
}

// ExtractRecommendations извлекает строки-рекомендации из текста анализа
func ExtractRecommendations(text string) []string {
	return extractMatchingLines(text, []string{"recommend", "should", "suggest"}, 5)
}

// ExtractOpportunities извлекает строки о рыночных возможностях
func ExtractOpportunities(text string) []string {
	return extractMatchingLines(text, []string{"opportunity", "potential", "growth"}, 5)
}

// extractMatchingLines возвращает первые limit строк, содержащих любое из ключевых слов
func extractMatchingLines(text string, keywords []string, limit int) []string {
	matched := make([]string, 0, limit)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				matched = append(matched, line)
				break
			}
		}

		if len(matched) >= limit {
			break
		}
	}

	return matched
}

// CalculateConfidence оценивает уверенность в инсайтах по качеству данных.
// Базовое значение 0.5 повышается за полноту данных, результат в [0, 1].
func CalculateConfidence(digest models.MarketDigest) float64 {
	score := 0.5

	// Полнота данных
	if digest.TotalFlights > 100 {
		score += 0.2
	} else if digest.TotalFlights > 50 {
		score += 0.1
	}

	// Разнообразие маршрутов
	if len(digest.PopularRoutes) > 5 {
		score += 0.1
	}

	// Качество ценовых данных
	if digest.AveragePrice > 0 {
		score += 0.1
	}

	// Наличие сезонных данных
	if len(digest.SeasonalPatterns) > 0 {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
