package amadeus

// tokenResponse представляет ответ OAuth2-эндпоинта Amadeus
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// flightOffersResponse представляет ответ поиска предложений
type flightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

// FlightOffer представляет одно предложение рейса из ответа Amadeus
type FlightOffer struct {
	ID                    string      `json:"id"`
	NumberOfBookableSeats int         `json:"numberOfBookableSeats"`
	Itineraries           []Itinerary `json:"itineraries"`
	Price                 OfferPrice  `json:"price"`
}

// Itinerary представляет маршрут предложения
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment представляет сегмент маршрута
type Segment struct {
	Departure    SegmentPoint `json:"departure"`
	Arrival      SegmentPoint `json:"arrival"`
	CarrierCode  string       `json:"carrierCode"`
	Number       string       `json:"number"`
	Aircraft     Aircraft     `json:"aircraft"`
	BookingClass string       `json:"class"`
}

// SegmentPoint представляет точку вылета или прилета сегмента
type SegmentPoint struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

// Aircraft представляет тип воздушного судна
type Aircraft struct {
	Code string `json:"code"`
}

// OfferPrice представляет стоимость предложения.
// Amadeus возвращает сумму строкой.
type OfferPrice struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// SearchParams содержит параметры поиска предложений
type SearchParams struct {
	Origin        string
	Destination   string
	DepartureDate string // формат 2006-01-02
	ReturnDate    string
	Adults        int
	MaxResults    int
}
