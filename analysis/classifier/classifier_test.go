package classifier

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSeasonOf(t *testing.T) {
	// Сезоны Южного полушария: лето — декабрь/январь/февраль
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"декабрь — лето", date(2024, time.December, 25), SeasonSummer},
		{"январь — лето", date(2024, time.January, 15), SeasonSummer},
		{"февраль — лето", date(2024, time.February, 1), SeasonSummer},
		{"март — осень", date(2024, time.March, 10), SeasonAutumn},
		{"май — осень", date(2024, time.May, 31), SeasonAutumn},
		{"июнь — зима", date(2024, time.June, 1), SeasonWinter},
		{"июль — зима", date(2024, time.July, 27), SeasonWinter},
		{"август — зима", date(2024, time.August, 15), SeasonWinter},
		{"сентябрь — весна", date(2024, time.September, 1), SeasonSpring},
		{"ноябрь — весна", date(2024, time.November, 30), SeasonSpring},
		{"нулевая дата — unknown", time.Time{}, SeasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeasonOf(tt.date); got != tt.want {
				t.Errorf("SeasonOf(%v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"суббота", date(2024, time.July, 27), true},
		{"воскресенье", date(2024, time.July, 28), true},
		{"понедельник", date(2024, time.July, 29), false},
		{"пятница", date(2024, time.July, 26), false},
		{"нулевая дата", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekend(tt.date); got != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestPeriodContains(t *testing.T) {
	period := Period{
		Name:  "test_period",
		Start: date(2024, time.June, 20),
		End:   date(2024, time.July, 20),
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"начало диапазона включено", date(2024, time.June, 20), true},
		{"конец диапазона включен", date(2024, time.July, 20), true},
		{"середина диапазона", date(2024, time.July, 1), true},
		{"день до начала", date(2024, time.June, 19), false},
		{"день после конца", date(2024, time.July, 21), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := period.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsHolidayPeriod(t *testing.T) {
	source := StaticPeriods{
		{Name: "winter_school_holidays", Start: date(2024, time.June, 20), End: date(2024, time.July, 20)},
		{Name: "christmas", Start: date(2024, time.December, 20), End: date(2025, time.January, 10)},
	}
	cls := New(source)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"внутри первого периода", date(2024, time.July, 1), true},
		{"внутри второго периода", date(2024, time.December, 31), true},
		{"вне периодов", date(2024, time.March, 15), false},
		{"сразу после периода", date(2024, time.July, 21), false},
		{"нулевая дата", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cls.IsHolidayPeriod(tt.date); got != tt.want {
				t.Errorf("IsHolidayPeriod(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsHolidayPeriodWithoutSource(t *testing.T) {
	// Классификатор без источника периодов никогда не считает дату праздничной
	cls := New(nil)
	if cls.IsHolidayPeriod(date(2024, time.December, 25)) {
		t.Error("классификатор без источника периодов вернул true")
	}
}
