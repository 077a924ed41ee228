package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/config"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

const completionsURL = "https://api.openai.com/v1/chat/completions"

// chatMessage представляет сообщение диалога chat completions
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// InsightResponse содержит ответ генератора инсайтов.
// Извлеченные пункты носят рекомендательный характер:
// исходный текст модели остается первичным содержимым.
type InsightResponse struct {
	RawInsight         string                     `json:"raw_insight"`
	StructuredInsights []models.StructuredInsight `json:"structured_insights"`
	ConfidenceScore    float64                    `json:"confidence_score"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}

// Client представляет клиент генерации текстовых инсайтов
type Client struct {
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     *utils.AnalysisLogger
}

// NewClient создает новый экземпляр клиента OpenAI
func NewClient(cfg config.OpenAIConfig, logger *utils.AnalysisLogger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Enabled возвращает true, если клиент сконфигурирован ключом API
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GenerateMarketInsights генерирует рыночные инсайты по дайджесту данных
func (c *Client) GenerateMarketInsights(ctx context.Context, digest models.MarketDigest) (*InsightResponse, error) {
	prompt := buildInsightsPrompt(digest)

	text, err := c.complete(ctx,
		"You are an expert aviation market analyst. Provide clear, actionable insights about airline booking trends and market demand.",
		prompt, 0.7)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации рыночных инсайтов: %w", err)
	}

	return &InsightResponse{
		RawInsight:         text,
		StructuredInsights: ParseInsights(text),
		ConfidenceScore:    CalculateConfidence(digest),
		GeneratedAt:        time.Now(),
	}, nil
}

// AnalyzeRoutePerformance анализирует эффективность маршрутов
func (c *Client) AnalyzeRoutePerformance(ctx context.Context, summaries []models.RouteSummary) (*InsightResponse, error) {
	prompt := buildRoutePerformancePrompt(summaries)

	text, err := c.complete(ctx,
		"You are a route performance analyst. Identify high-performing routes and growth opportunities.",
		prompt, 0.6)
	if err != nil {
		return nil, fmt.Errorf("ошибка анализа эффективности маршрутов: %w", err)
	}

	return &InsightResponse{
		RawInsight:         text,
		StructuredInsights: ParseInsights(text),
		GeneratedAt:        time.Now(),
	}, nil
}

// AnalyzePriceTrends анализирует ценовые тренды маршрутов
func (c *Client) AnalyzePriceTrends(ctx context.Context, summaries []models.RouteSummary) (*InsightResponse, error) {
	prompt := buildPriceTrendPrompt(summaries)

	text, err := c.complete(ctx,
		"You are an airline pricing analyst. Explain price movements and their likely direction.",
		prompt, 0.6)
	if err != nil {
		return nil, fmt.Errorf("ошибка анализа ценовых трендов: %w", err)
	}

	return &InsightResponse{
		RawInsight:         text,
		StructuredInsights: ParseInsights(text),
		GeneratedAt:        time.Now(),
	}, nil
}

// complete выполняет один запрос chat completions и возвращает текст ответа
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	request := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, completionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка запроса к OpenAI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("OpenAI вернул ошибку: %d - %s", resp.StatusCode, string(respBody))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("ошибка разбора ответа OpenAI: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("пустой ответ OpenAI")
	}

	c.logger.Debug("Получен ответ OpenAI длиной %d символов", len(response.Choices[0].Message.Content))
	return response.Choices[0].Message.Content, nil
}
