package popularity

import "testing"

func TestTier(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		want        float64
	}{
		{"основной внутренний маршрут", "SYD", "MEL", TierMajorDomestic},
		{"обратное внутреннее направление", "MEL", "SYD", TierMajorDomestic},
		{"международный из хаба", "SYD", "LAX", TierInternationalHub},
		{"международный из Мельбурна", "MEL", "SIN", TierInternationalHub},
		{"хаб только с одной стороны", "SYD", "CBR", TierMajorHubEndpoint},
		{"хаб со стороны назначения", "CBR", "MEL", TierMajorHubEndpoint},
		{"маршрут без хабов", "CBR", "HBA", TierBaseline},
		{"неизвестные коды", "XXX", "YYY", TierBaseline},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tier(tt.origin, tt.destination); got != tt.want {
				t.Errorf("Tier(%s, %s) = %v, want %v", tt.origin, tt.destination, got, tt.want)
			}
		})
	}
}

func TestTierDomesticSymmetry(t *testing.T) {
	// Все основные внутренние маршруты симметричны: A->B и B->A в одном уровне
	for route := range majorDomesticRoutes {
		reverse := routePair{origin: route.destination, destination: route.origin}
		if !majorDomesticRoutes[reverse] {
			t.Errorf("маршрут %s->%s без обратного направления", route.origin, route.destination)
		}
	}
}

func TestTierTotal(t *testing.T) {
	// Tier возвращает один из четырех известных уровней для любых входов
	known := map[float64]bool{
		TierMajorDomestic:    true,
		TierInternationalHub: true,
		TierMajorHubEndpoint: true,
		TierBaseline:         true,
	}

	codes := []string{"SYD", "MEL", "BNE", "PER", "LAX", "CBR", "", "X"}
	for _, origin := range codes {
		for _, destination := range codes {
			if !known[Tier(origin, destination)] {
				t.Errorf("Tier(%q, %q) вернул неизвестный уровень", origin, destination)
			}
		}
	}
}
