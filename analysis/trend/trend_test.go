package trend

import "testing"

func TestClassifyPrices(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   string
	}{
		{"пустой ряд", nil, TrendStable},
		{"одна точка", []float64{100}, TrendStable},
		{
			"рост цен",
			[]float64{100, 100, 100, 100, 100, 200, 200, 200, 200, 200},
			TrendIncreasing,
		},
		{
			"падение цен",
			[]float64{200, 200, 200, 200, 200, 100, 100, 100, 100, 100},
			TrendDecreasing,
		},
		{
			"стабильные цены",
			[]float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100},
			TrendStable,
		},
		{
			"изменение в пределах порога",
			[]float64{100, 100, 100, 100, 100, 105, 105, 105, 105, 105},
			TrendStable,
		},
		{
			// Ряд не длиннее окна: старое среднее совпадает с недавним
			"короткий ряд с ростом",
			[]float64{100, 200},
			TrendStable,
		},
		{
			// Ровно на границе окна сравнивать не с чем
			"ряд длиной в окно",
			[]float64{100, 150, 200, 250, 300},
			TrendStable,
		},
		{
			// Шесть точек: одна старая против пяти недавних
			"одна старая точка",
			[]float64{100, 200, 200, 200, 200, 200},
			TrendIncreasing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyPrices(tt.prices, DefaultRecentWindow); got != tt.want {
				t.Errorf("ClassifyPrices(%v) = %q, want %q", tt.prices, got, tt.want)
			}
		})
	}
}

func TestClassifyPricesWindowFallback(t *testing.T) {
	// Неположительное окно заменяется значением по умолчанию
	prices := []float64{100, 100, 100, 100, 100, 200, 200, 200, 200, 200}

	if got := ClassifyPrices(prices, 0); got != TrendIncreasing {
		t.Errorf("ClassifyPrices с нулевым окном = %q, want %q", got, TrendIncreasing)
	}
	if got := ClassifyPrices(prices, -3); got != TrendIncreasing {
		t.Errorf("ClassifyPrices с отрицательным окном = %q, want %q", got, TrendIncreasing)
	}
}

func TestClassifyPricesZeroOlderAverage(t *testing.T) {
	// Нулевое старое среднее не приводит к делению на ноль
	prices := []float64{0, 0, 0, 0, 0, 0, 100, 100, 100, 100, 100}
	if got := ClassifyPrices(prices, DefaultRecentWindow); got != TrendStable {
		t.Errorf("ClassifyPrices = %q, want %q", got, TrendStable)
	}
}
