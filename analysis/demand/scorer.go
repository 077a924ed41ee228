package demand

import (
	"math"

	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/classifier"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/popularity"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

// RoundToHundredth округляет число до сотых (2 знака после запятой)
func RoundToHundredth(value float64) float64 {
	return math.Round(value*100) / 100
}

// Scorer вычисляет демандный скор для записей о рейсах
type Scorer struct {
	config     Config
	classifier *classifier.Classifier
}

// NewScorer создает новый экземпляр Scorer
func NewScorer(config Config, cls *classifier.Classifier) *Scorer {
	return &Scorer{
		config:     config,
		classifier: cls,
	}
}

// Score вычисляет демандный скор записи в диапазоне [0, 100].
// Функция детерминирована и никогда не паникует: при внутреннем сбое
// возвращается нейтральный результат с базовым значением.
func (s *Scorer) Score(record models.CleanFlightRecord) (result ScoreResult) {
	// Страховка: любой внутренний сбой дает нейтральный результат,
	// конвейер скоринга не должен прерываться из-за одной записи
	defer func() {
		if r := recover(); r != nil {
			result = ScoreResult{
				Score:    s.config.BaseScore,
				Season:   classifier.SeasonUnknown,
				Fallback: true,
			}
		}
	}()

	score := s.config.BaseScore

	// Фактор цены: низкая цена — выше потенциальный спрос.
	// Цена нормализуется на предполагаемый диапазон [100, 2000].
	if record.Price > 0 {
		priceFactor := s.priceFactor(record.Price)
		score += (priceFactor - 50) * s.config.PriceWeight
	}

	// Фактор доступности: мало свободных мест — высокий спрос
	if record.Availability > 0 {
		availabilityFactor := clamp(100-float64(record.Availability)/2, 0, 100)
		score += (availabilityFactor - 50) * s.config.AvailabilityWeight
	}

	// Фактор популярности маршрута применяется всегда
	routeScore := popularity.Tier(record.Origin, record.Destination)
	score += (routeScore - 50) * s.config.RouteWeight

	season := classifier.SeasonOf(record.DepartureDate)
	isHoliday := false
	isWeekend := false

	if !record.DepartureDate.IsZero() {
		// Сезонный фактор
		seasonalScore := s.seasonalScore(season)
		score += (seasonalScore - 50) * s.config.SeasonalWeight

		// Праздничный бонус
		isHoliday = s.classifier.IsHolidayPeriod(record.DepartureDate)
		if isHoliday {
			score += s.config.HolidayBonus
		}

		// Бонус выходного дня
		isWeekend = classifier.IsWeekend(record.DepartureDate)
		if isWeekend {
			score += s.config.WeekendBonus
		}
	}

	return ScoreResult{
		Score:           RoundToHundredth(clamp(score, 0, 100)),
		Season:          season,
		IsHolidayPeriod: isHoliday,
		IsWeekend:       isWeekend,
	}
}

// priceFactor линейно отображает цену из рабочего диапазона на [0, 100]
// с насыщением на границах
func (s *Scorer) priceFactor(price float64) float64 {
	span := s.config.PriceRangeMax - s.config.PriceRangeMin
	factor := 100 - (price-s.config.PriceRangeMin)/(span/100)
	return clamp(factor, 0, 100)
}

// seasonalScore возвращает сезонную оценку спроса, 50 для неизвестного сезона
func (s *Scorer) seasonalScore(season string) float64 {
	if score, ok := s.config.SeasonalScores[season]; ok {
		return score
	}
	return 50.0
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
