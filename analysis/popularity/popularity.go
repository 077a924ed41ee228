package popularity

// Уровни популярности маршрутов
const (
	TierMajorDomestic    = 80.0
	TierInternationalHub = 70.0
	TierMajorHubEndpoint = 60.0
	TierBaseline         = 40.0
)

type routePair struct {
	origin      string
	destination string
}

// Основные внутренние маршруты Австралии (включая обратные направления)
var majorDomesticRoutes = map[routePair]bool{
	{"SYD", "MEL"}: true, {"MEL", "SYD"}: true,
	{"SYD", "BNE"}: true, {"BNE", "SYD"}: true,
	{"SYD", "PER"}: true, {"PER", "SYD"}: true,
	{"MEL", "BNE"}: true, {"BNE", "MEL"}: true,
	{"MEL", "PER"}: true, {"PER", "MEL"}: true,
	{"BNE", "PER"}: true, {"PER", "BNE"}: true,
}

// Международные маршруты из крупных хабов
var internationalHubRoutes = map[routePair]bool{
	{"SYD", "LAX"}: true, {"MEL", "LAX"}: true,
	{"SYD", "LHR"}: true, {"MEL", "LHR"}: true,
	{"SYD", "NRT"}: true, {"MEL", "NRT"}: true,
	{"SYD", "SIN"}: true, {"MEL", "SIN"}: true,
	{"BNE", "LAX"}: true, {"BNE", "NRT"}: true,
}

// Крупнейшие хабы Австралии
var majorHubs = map[string]bool{
	"SYD": true,
	"MEL": true,
	"BNE": true,
}

// Tier возвращает уровень популярности для направленного маршрута.
// Функция тотальна: для любой пары кодов возвращается один из четырех уровней.
func Tier(origin, destination string) float64 {
	route := routePair{origin: origin, destination: destination}

	if majorDomesticRoutes[route] {
		return TierMajorDomestic
	}

	if internationalHubRoutes[route] {
		return TierInternationalHub
	}

	if majorHubs[origin] || majorHubs[destination] {
		return TierMajorHubEndpoint
	}

	return TierBaseline
}
