package trend

// Направления ценового тренда
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// DefaultRecentWindow — размер окна недавних наблюдений по умолчанию
const DefaultRecentWindow = 5

// Порог изменения цены в процентах для классификации тренда
const changeThresholdPercent = 10.0

// ClassifyPrices сравнивает среднее последних recentWindow точек со средним
// более старых точек и классифицирует траекторию цены маршрута.
// Менее двух точек или нулевое старое среднее дают "stable".
func ClassifyPrices(historicalPrices []float64, recentWindow int) string {
	if len(historicalPrices) < 2 {
		return TrendStable
	}

	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}

	// Среднее последних точек (или всех, если точек меньше окна)
	recentStart := len(historicalPrices) - recentWindow
	if recentStart < 0 {
		recentStart = 0
	}
	recentAvg := mean(historicalPrices[recentStart:])

	// Среднее более старых точек; при коротком ряде совпадает с недавним
	olderAvg := recentAvg
	if len(historicalPrices) > recentWindow {
		olderAvg = mean(historicalPrices[:recentStart])
	}

	// Защита от деления на ноль
	if olderAvg == 0 {
		return TrendStable
	}

	changePercent := (recentAvg - olderAvg) / olderAvg * 100

	switch {
	case changePercent > changeThresholdPercent:
		return TrendIncreasing
	case changePercent < -changeThresholdPercent:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
