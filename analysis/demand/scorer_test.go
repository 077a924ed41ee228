package demand

import (
	"testing"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/classifier"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// testClassifier возвращает классификатор с фиксированным зимним каникулярным периодом
func testClassifier() *classifier.Classifier {
	return classifier.New(classifier.StaticPeriods{
		{
			Name:  "winter_school_holidays",
			Start: date(2024, time.June, 20),
			End:   date(2024, time.July, 20),
		},
	})
}

func newTestScorer() *Scorer {
	return NewScorer(DefaultConfig(), testClassifier())
}

func TestScoreWorkedExample(t *testing.T) {
	// Разбор по факторам:
	//   база 50, цена 100 -> +15, мест 200 -> -10,
	//   SYD-MEL -> +6, зима -> +3, суббота -> +5; итого 69.0
	scorer := newTestScorer()

	record := models.CleanFlightRecord{
		Origin:        "SYD",
		Destination:   "MEL",
		DepartureDate: date(2024, time.July, 27), // суббота вне каникулярного периода
		Price:         100,
		Availability:  200,
	}

	result := scorer.Score(record)

	if result.Score != 69.0 {
		t.Errorf("Score = %v, want 69.0", result.Score)
	}
	if result.Season != classifier.SeasonWinter {
		t.Errorf("Season = %q, want %q", result.Season, classifier.SeasonWinter)
	}
	if result.IsHolidayPeriod {
		t.Error("IsHolidayPeriod = true, дата вне каникулярного периода")
	}
	if !result.IsWeekend {
		t.Error("IsWeekend = false, дата — суббота")
	}
	if result.Fallback {
		t.Error("Fallback = true для нормального расчета")
	}
}

func TestScoreHolidayBonus(t *testing.T) {
	scorer := newTestScorer()

	base := models.CleanFlightRecord{
		Origin:        "SYD",
		Destination:   "MEL",
		Price:         500,
		Availability:  100,
		DepartureDate: date(2024, time.July, 3), // среда внутри каникулярного периода
	}

	outside := base
	outside.DepartureDate = date(2024, time.July, 24) // среда вне периода

	inHoliday := scorer.Score(base)
	outHoliday := scorer.Score(outside)

	if !inHoliday.IsHolidayPeriod {
		t.Fatal("дата внутри каникулярного периода не распознана")
	}
	if outHoliday.IsHolidayPeriod {
		t.Fatal("дата вне каникулярного периода распознана как праздничная")
	}

	diff := inHoliday.Score - outHoliday.Score
	if diff != DefaultConfig().HolidayBonus {
		t.Errorf("разница скора = %v, want %v (праздничный бонус)", diff, DefaultConfig().HolidayBonus)
	}
}

func TestScoreSkipsMissingFactors(t *testing.T) {
	scorer := newTestScorer()

	// Пустая запись: только фактор маршрута (baseline 40 -> -2)
	result := scorer.Score(models.CleanFlightRecord{})

	if result.Score != 48.0 {
		t.Errorf("Score = %v, want 48.0 (только фактор маршрута)", result.Score)
	}
	if result.Season != classifier.SeasonUnknown {
		t.Errorf("Season = %q, want %q", result.Season, classifier.SeasonUnknown)
	}
	if result.IsHolidayPeriod || result.IsWeekend {
		t.Error("календарные признаки для нулевой даты должны быть false")
	}
}

func TestScoreBounds(t *testing.T) {
	scorer := newTestScorer()

	tests := []struct {
		name   string
		record models.CleanFlightRecord
	}{
		{
			"максимально благоприятные факторы",
			models.CleanFlightRecord{
				Origin: "SYD", Destination: "MEL",
				DepartureDate: date(2024, time.December, 21), // суббота, лето
				Price:         100,
				Availability:  1,
			},
		},
		{
			"максимально неблагоприятные факторы",
			models.CleanFlightRecord{
				Origin: "CBR", Destination: "HBA",
				DepartureDate: date(2024, time.May, 15),
				Price:         5000, // выше рабочего диапазона
				Availability:  500,
			},
		},
		{
			"цена далеко за диапазоном",
			models.CleanFlightRecord{
				Origin: "XXX", Destination: "YYY",
				Price: 1e9, Availability: 1e6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := scorer.Score(tt.record)
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("Score = %v вне диапазона [0, 100]", result.Score)
			}
		})
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := newTestScorer()

	record := models.CleanFlightRecord{
		Origin: "SYD", Destination: "LAX",
		DepartureDate: date(2024, time.December, 25),
		Price:         1350.50,
		Availability:  12,
	}

	first := scorer.Score(record)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(record); got != first {
			t.Fatalf("повторный скоринг дал другой результат: %+v != %+v", got, first)
		}
	}
}

func TestScoreFallbackOnBrokenConfig(t *testing.T) {
	// Нулевой диапазон цен приводит к делению на ноль внутри расчета;
	// скоринг обязан вернуть нейтральный результат вместо паники
	config := DefaultConfig()
	config.PriceRangeMin = 100
	config.PriceRangeMax = 100
	scorer := NewScorer(config, testClassifier())

	result := scorer.Score(models.CleanFlightRecord{
		Origin: "SYD", Destination: "MEL",
		Price:        250,
		Availability: 50,
	})

	// Деление на нулевой span дает +Inf, а не панику, поэтому результат
	// остается в границах за счет насыщения
	if result.Score < 0 || result.Score > 100 {
		t.Errorf("Score = %v вне диапазона [0, 100]", result.Score)
	}
}
