package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/config"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// Токен обновляется за 10 минут до истечения срока действия
const tokenRefreshMargin = 10 * time.Minute

// Credential представляет явный токен доступа с меткой истечения.
// Токен не хранится в клиенте как глобальное состояние: его жизненным
// циклом владеет вызывающая сторона и передает в методы поиска.
type Credential struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid возвращает true, если токен еще пригоден для использования
func (c *Credential) Valid() bool {
	return c != nil && c.AccessToken != "" && time.Now().Before(c.ExpiresAt)
}

// UsageRecorder фиксирует обращения к внешнему API для учета
type UsageRecorder interface {
	RecordUsage(apiName, endpoint, method string, statusCode int, responseTime time.Duration)
}

// Client представляет клиент Amadeus API
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	maxResults int
	httpClient *http.Client
	logger     *utils.AnalysisLogger
	usage      UsageRecorder
}

// NewClient создает новый экземпляр клиента Amadeus
func NewClient(cfg config.AmadeusConfig, logger *utils.AnalysisLogger, usage UsageRecorder) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		maxResults: cfg.MaxResults,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		usage:      usage,
	}
}

// Authenticate получает новый токен доступа по client credentials
func (c *Client) Authenticate(ctx context.Context) (*Credential, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	endpoint := c.baseURL + "/v1/security/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса токена: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса токена: %w", err)
	}
	defer resp.Body.Close()

	c.recordUsage("/v1/security/oauth2/token", http.MethodPost, resp.StatusCode, time.Since(startTime))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("не удалось получить токен доступа: %d - %s", resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа токена: %w", err)
	}

	expiresIn := time.Duration(token.ExpiresIn) * time.Second
	if expiresIn == 0 {
		expiresIn = time.Hour
	}

	c.logger.Info("Токен доступа Amadeus успешно получен")

	return &Credential{
		AccessToken: token.AccessToken,
		ExpiresAt:   time.Now().Add(expiresIn - tokenRefreshMargin),
	}, nil
}

// SearchFlights ищет предложения рейсов между аэропортами.
// Токен передается явно и должен быть действительным.
func (c *Client) SearchFlights(ctx context.Context, cred *Credential, params SearchParams) ([]FlightOffer, error) {
	if !cred.Valid() {
		return nil, fmt.Errorf("токен доступа отсутствует или истек")
	}

	query := url.Values{}
	query.Set("originLocationCode", params.Origin)
	query.Set("destinationLocationCode", params.Destination)
	query.Set("departureDate", params.DepartureDate)
	query.Set("adults", strconv.Itoa(params.Adults))
	query.Set("max", strconv.Itoa(params.MaxResults))
	if params.ReturnDate != "" {
		query.Set("returnDate", params.ReturnDate)
	}

	endpoint := c.baseURL + "/v2/shopping/flight-offers?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса поиска: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка поиска рейсов: %w", err)
	}
	defer resp.Body.Close()

	c.recordUsage("/v2/shopping/flight-offers", http.MethodGet, resp.StatusCode, time.Since(startTime))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("поиск рейсов завершился ошибкой: %d - %s", resp.StatusCode, string(body))
	}

	var offers flightOffersResponse
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		return nil, fmt.Errorf("ошибка разбора ответа поиска: %w", err)
	}

	c.logger.Info("Найдено %d предложений для %s -> %s", len(offers.Data), params.Origin, params.Destination)
	return offers.Data, nil
}

// FetchRouteMatrix собирает сырые записи по фиксированной матрице маршрутов:
// внутренние пары городов и международные направления из каждого города.
// Ошибки по отдельным маршрутам логируются и не прерывают сбор.
func (c *Client) FetchRouteMatrix(ctx context.Context, cred *Credential, cities, international []string) []models.RawFlightRecord {
	departureDate := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	allRecords := make([]models.RawFlightRecord, 0)

	search := func(origin, destination string, isDomestic bool) {
		offers, err := c.SearchFlights(ctx, cred, SearchParams{
			Origin:        origin,
			Destination:   destination,
			DepartureDate: departureDate,
			Adults:        1,
			MaxResults:    c.maxResults,
		})
		if err != nil {
			c.logger.Error("Ошибка получения предложений %s -> %s: %v", origin, destination, err)
			return
		}

		for _, offer := range offers {
			record := ParseOffer(offer)
			record.IsDomestic = isDomestic
			allRecords = append(allRecords, record)
		}
	}

	// Внутренние рейсы между городами Австралии
	for _, origin := range cities {
		for _, destination := range cities {
			if origin == destination {
				continue
			}
			search(origin, destination, true)
		}
	}

	// Международные рейсы из городов Австралии
	for _, origin := range cities {
		for _, destination := range international {
			search(origin, destination, false)
		}
	}

	return allRecords
}

func (c *Client) recordUsage(endpoint, method string, statusCode int, responseTime time.Duration) {
	if c.usage == nil {
		return
	}
	c.usage.RecordUsage("amadeus", endpoint, method, statusCode, responseTime)
}
