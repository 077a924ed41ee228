package routes

import (
	"testing"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
)

func TestBuildRoutesWorkbook(t *testing.T) {
	summaries := []models.RouteSummary{
		{
			Origin:               "SYD",
			Destination:          "MEL",
			TotalFlights:         3,
			AveragePrice:         150,
			PriceVariance:        1666.67,
			AverageDemandScore:   70,
			RoutePopularityScore: 80,
			PriceTrend:           "stable",
			IsDomestic:           true,
		},
		{
			Origin:       "SYD",
			Destination:  "LAX",
			TotalFlights: 1,
			AveragePrice: 1200,
		},
	}

	f, err := buildRoutesWorkbook(summaries)
	if err != nil {
		t.Fatalf("формирование книги: %v", err)
	}
	defer f.Close()

	// Служебный лист по умолчанию удален, остался только лист с данными
	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Routes" {
		t.Fatalf("листы книги = %v, ожидается [Routes]", sheets)
	}

	header, err := f.GetCellValue("Routes", "A1")
	if err != nil {
		t.Fatalf("чтение заголовка: %v", err)
	}
	if header != "Origin" {
		t.Errorf("заголовок A1 = %q, ожидается Origin", header)
	}

	origin, _ := f.GetCellValue("Routes", "A2")
	if origin != "SYD" {
		t.Errorf("ячейка A2 = %q, ожидается SYD", origin)
	}

	trend, _ := f.GetCellValue("Routes", "H2")
	if trend != "stable" {
		t.Errorf("ячейка H2 = %q, ожидается stable", trend)
	}

	secondDest, _ := f.GetCellValue("Routes", "B3")
	if secondDest != "LAX" {
		t.Errorf("ячейка B3 = %q, ожидается LAX", secondDest)
	}
}

func TestBuildRoutesWorkbookEmpty(t *testing.T) {
	f, err := buildRoutesWorkbook(nil)
	if err != nil {
		t.Fatalf("формирование пустой книги: %v", err)
	}
	defer f.Close()

	// Строка заголовков присутствует даже без данных
	header, _ := f.GetCellValue("Routes", "I1")
	if header != "Domestic" {
		t.Errorf("заголовок I1 = %q, ожидается Domestic", header)
	}
}
