package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/shubhra2160/Airline-market-demand-analysis/amadeus"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/aggregate"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/cleaner"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/demand"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/insights"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/trend"
	"github.com/shubhra2160/Airline-market-demand-analysis/config"
	"github.com/shubhra2160/Airline-market-demand-analysis/database"
	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/openai"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// StatusNotifier получает события хода анализа для трансляции подписчикам
type StatusNotifier interface {
	BroadcastStatus(stage, message string)
}

// Pipeline координирует полный цикл анализа:
// fetch -> clean -> score -> persist -> aggregate -> insights
type Pipeline struct {
	config      config.AppConfig
	logger      *utils.AnalysisLogger
	amadeus     *amadeus.Client
	openai      *openai.Client
	scorer      *demand.Scorer
	flightRepo  *database.MySQLFlightRepository
	routeRepo   *database.MySQLRouteRepository
	insightRepo *database.MySQLInsightRepository
	runLogRepo  *database.MySQLRunLogRepository
	notifier    StatusNotifier

	// Токен провайдера: им владеет конвейер и обновляет по мере истечения
	credential *amadeus.Credential

	// Гарантия не более одного цикла анализа одновременно
	running *atomic.Bool
}

// NewPipeline создает новый экземпляр конвейера анализа
func NewPipeline(
	cfg config.AppConfig,
	logger *utils.AnalysisLogger,
	amadeusClient *amadeus.Client,
	openaiClient *openai.Client,
	scorer *demand.Scorer,
	flightRepo *database.MySQLFlightRepository,
	routeRepo *database.MySQLRouteRepository,
	insightRepo *database.MySQLInsightRepository,
	runLogRepo *database.MySQLRunLogRepository,
	notifier StatusNotifier,
) *Pipeline {
	return &Pipeline{
		config:      cfg,
		logger:      logger,
		amadeus:     amadeusClient,
		openai:      openaiClient,
		scorer:      scorer,
		flightRepo:  flightRepo,
		routeRepo:   routeRepo,
		insightRepo: insightRepo,
		runLogRepo:  runLogRepo,
		notifier:    notifier,
		running:     atomic.NewBool(false),
	}
}

// Execute выполняет полный цикл анализа рыночного спроса.
// Повторный вызов во время выполняющегося цикла пропускается.
func (p *Pipeline) Execute(ctx context.Context) error {
	if !p.beginRun() {
		p.logger.Info("Цикл анализа уже выполняется, запуск пропущен")
		return nil
	}
	defer p.endRun()

	startTime := time.Now()
	p.logger.LogRunStart()
	p.notify("run_started", "Запущен цикл анализа спроса")

	logID, err := p.runLogRepo.CreateLogEntry(startTime)
	if err != nil {
		p.logger.Error("Ошибка при создании записи журнала: %v", err)
		return fmt.Errorf("ошибка при создании записи журнала: %w", err)
	}

	fail := func(stage string, err error) error {
		message := fmt.Sprintf("Ошибка на фазе %s: %v", stage, err)
		p.logger.Error(message)
		p.notify("run_failed", message)
		if logErr := p.runLogRepo.UpdateLogEntryFailure(logID, time.Now(), message); logErr != nil {
			p.logger.Error("Ошибка при обновлении записи журнала: %v", logErr)
		}
		return fmt.Errorf("ошибка на фазе %s: %w", stage, err)
	}

	// 1. Получение предложений от провайдера
	fetchStart := time.Now()
	if !p.credential.Valid() {
		credential, err := p.amadeus.Authenticate(ctx)
		if err != nil {
			return fail("Fetch", err)
		}
		p.credential = credential
	}

	rawRecords := p.amadeus.FetchRouteMatrix(ctx, p.credential,
		p.config.AustralianCities, p.config.InternationalDestinations)
	p.logger.LogFetchComplete(len(rawRecords), time.Since(fetchStart))
	p.notify("fetch", fmt.Sprintf("Получено предложений: %d", len(rawRecords)))

	if len(rawRecords) == 0 {
		p.logger.Info("Нет новых данных для обработки")
		p.notify("run_finished", "Нет новых данных")
		if err := p.runLogRepo.UpdateLogEntrySuccess(logID, time.Now(), 0, 0, 0, 0); err != nil {
			p.logger.Error("Ошибка при обновлении записи журнала: %v", err)
		}
		return nil
	}

	// 2. Очистка и валидация
	cleanRecords, stats := cleaner.CleanBatch(rawRecords, p.logger)
	p.notify("clean", fmt.Sprintf("Принято записей: %d, отклонено: %d", stats.Accepted, stats.TotalRejected()))

	// 3. Скоринг спроса
	scored := p.scoreRecords(cleanRecords)
	p.notify("score", fmt.Sprintf("Оценено записей: %d", len(scored)))

	// 4. Персистентность рейсов и метрик
	if err := p.flightRepo.SaveScoredFlights(scored); err != nil {
		return fail("Persist", err)
	}

	// 5. Агрегация по маршрутам и ценовые тренды
	summaries := aggregate.Routes(scored)
	p.attachPriceTrends(summaries)

	if err := p.routeRepo.UpsertSummaries(summaries); err != nil {
		return fail("Aggregate", err)
	}
	p.notify("aggregate", fmt.Sprintf("Обновлено маршрутов: %d", len(summaries)))

	// 6. Генерация инсайтов — некритичный шаг, ошибка не прерывает цикл
	if p.openai.Enabled() {
		if _, err := p.GenerateInsights(ctx, scored); err != nil {
			p.logger.Error("Ошибка при генерации инсайтов: %v", err)
		} else {
			p.notify("insights", "Инсайты обновлены")
		}
	}

	if err := p.runLogRepo.UpdateLogEntrySuccess(logID, time.Now(),
		len(rawRecords), stats.Accepted, stats.TotalRejected(), len(summaries)); err != nil {
		p.logger.Error("Ошибка при обновлении записи журнала: %v", err)
	}

	p.logger.LogRunComplete(startTime, len(rawRecords), stats.Accepted, len(summaries))
	p.notify("run_finished", fmt.Sprintf("Цикл анализа завершен за %v", time.Since(startTime).Round(time.Second)))
	return nil
}

// beginRun захватывает флаг выполняющегося цикла; false, если цикл уже идет
func (p *Pipeline) beginRun() bool {
	return p.running.CompareAndSwap(false, true)
}

// endRun освобождает флаг выполняющегося цикла
func (p *Pipeline) endRun() {
	p.running.Store(false)
}

// scoreRecords вычисляет метрики спроса для чистых записей
func (p *Pipeline) scoreRecords(records []models.CleanFlightRecord) []models.ScoredFlightRecord {
	scored := make([]models.ScoredFlightRecord, 0, len(records))
	fallbacks := 0

	for _, record := range records {
		result := p.scorer.Score(record)
		if result.Fallback {
			fallbacks++
		}

		scored = append(scored, models.ScoredFlightRecord{
			CleanFlightRecord: record,
			DemandScore:       result.Score,
			Season:            result.Season,
			IsHolidayPeriod:   result.IsHolidayPeriod,
			IsWeekend:         result.IsWeekend,
			ScoreFallback:     result.Fallback,
		})
	}

	if fallbacks > 0 {
		p.logger.Info("Скоринг вернул нейтральное значение для %d записей", fallbacks)
	}

	return scored
}

// attachPriceTrends классифицирует ценовой тренд каждого маршрута
// по истории средних дневных цен
func (p *Pipeline) attachPriceTrends(summaries map[models.RouteKey]models.RouteSummary) {
	for key, summary := range summaries {
		dailyPrices, err := p.flightRepo.GetDailyAveragePrices(key.Origin, key.Destination, trend.DefaultConfig().AnalysisPeriodDays)
		if err != nil {
			p.logger.Error("Ошибка при получении истории цен %s -> %s: %v", key.Origin, key.Destination, err)
			continue
		}

		summary.PriceTrend = trend.ClassifyPrices(orderedPrices(dailyPrices), trend.DefaultRecentWindow)
		summaries[key] = summary
	}
}

// GenerateInsights строит дайджест по оцененным записям и запрашивает
// текстовые инсайты у языковой модели. При records == nil записи
// загружаются из хранилища.
func (p *Pipeline) GenerateInsights(ctx context.Context, records []models.ScoredFlightRecord) (*openai.InsightResponse, error) {
	if !p.openai.Enabled() {
		return nil, fmt.Errorf("клиент OpenAI не сконфигурирован")
	}

	if records == nil {
		stored, err := p.flightRepo.GetAllScored()
		if err != nil {
			return nil, fmt.Errorf("ошибка при загрузке записей для дайджеста: %w", err)
		}
		records = stored
	}

	digest := insights.BuildDigest(records)
	if digest.TotalFlights == 0 {
		return nil, fmt.Errorf("нет данных для генерации инсайтов")
	}

	response, err := p.openai.GenerateMarketInsights(ctx, digest)
	if err != nil {
		return nil, err
	}

	p.saveInsights(response, digest)
	return response, nil
}

// saveInsights сохраняет извлеченные пункты инсайтов; без извлеченных
// пунктов сохраняется сырой текст модели целиком
func (p *Pipeline) saveInsights(response *openai.InsightResponse, digest models.MarketDigest) {
	items := response.StructuredInsights
	if len(items) == 0 {
		items = []models.StructuredInsight{{
			Title:   fmt.Sprintf("Market insights %s", response.GeneratedAt.Format("2006-01-02")),
			Content: response.RawInsight,
			Type:    "insight",
		}}
	}

	for _, item := range items {
		insight := models.Insight{
			ID:              uuid.NewString(),
			Title:           item.Title,
			Content:         item.Content,
			InsightType:     item.Type,
			Category:        "market",
			Priority:        "medium",
			ConfidenceScore: response.ConfidenceScore,
			DataPointsUsed:  digest.TotalFlights,
			IsActive:        true,
			GeneratedAt:     response.GeneratedAt,
		}

		if err := p.insightRepo.SaveInsight(insight); err != nil {
			p.logger.Error("Ошибка при сохранении инсайта: %v", err)
		}
	}
}

// AnalyzeRoutes запрашивает у языковой модели анализ эффективности
// маршрутов по сохраненным сводкам
func (p *Pipeline) AnalyzeRoutes(ctx context.Context) (*openai.InsightResponse, error) {
	if !p.openai.Enabled() {
		return nil, fmt.Errorf("клиент OpenAI не сконфигурирован")
	}

	summaries, err := p.routeRepo.GetSummaries(0, 0)
	if err != nil {
		return nil, fmt.Errorf("ошибка при загрузке сводок маршрутов: %w", err)
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("нет сводок маршрутов для анализа")
	}

	return p.openai.AnalyzeRoutePerformance(ctx, summaries)
}

// AnalyzePriceTrends запрашивает у языковой модели анализ ценовых
// трендов по сохраненным сводкам маршрутов
func (p *Pipeline) AnalyzePriceTrends(ctx context.Context) (*openai.InsightResponse, error) {
	if !p.openai.Enabled() {
		return nil, fmt.Errorf("клиент OpenAI не сконфигурирован")
	}

	summaries, err := p.routeRepo.GetSummaries(0, 0)
	if err != nil {
		return nil, fmt.Errorf("ошибка при загрузке сводок маршрутов: %w", err)
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("нет сводок маршрутов для анализа")
	}

	return p.openai.AnalyzePriceTrends(ctx, summaries)
}

// RouteForecast строит линейный прогноз цен для маршрута по истории
// средних дневных цен
func (p *Pipeline) RouteForecast(origin, destination string) (*trend.ForecastResult, error) {
	forecastConfig := trend.DefaultConfig()

	dailyPrices, err := p.flightRepo.GetDailyAveragePrices(origin, destination, forecastConfig.AnalysisPeriodDays)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении истории цен: %w", err)
	}

	points := trend.BuildDailySeries(dailyPrices)
	if len(points) < 2 {
		return nil, fmt.Errorf("недостаточно истории цен для прогноза %s -> %s", origin, destination)
	}

	return trend.ForecastPrices(points, forecastConfig)
}

// StartScheduler запускает планировщик регулярного выполнения цикла анализа.
// Блокируется до отмены контекста.
func (p *Pipeline) StartScheduler(ctx context.Context) {
	scheduler := gocron.NewScheduler(time.UTC)

	p.logger.Info("Запуск планировщика анализа с интервалом %v", p.config.RunInterval)

	_, err := scheduler.Every(p.config.RunInterval).Do(func() {
		p.logger.Info("Запланированный запуск цикла анализа")
		if err := p.Execute(ctx); err != nil {
			p.logger.Error("Ошибка при выполнении запланированного цикла: %v", err)
		}
	})
	if err != nil {
		p.logger.Error("Ошибка при настройке планировщика: %v", err)
		return
	}

	scheduler.StartAsync()

	<-ctx.Done()

	scheduler.Stop()
	p.logger.Info("Планировщик анализа остановлен")
}

// notify отправляет событие статуса, если нотификатор настроен
func (p *Pipeline) notify(stage, message string) {
	if p.notifier == nil {
		return
	}
	p.notifier.BroadcastStatus(stage, message)
}

// orderedPrices возвращает значения дневных цен в хронологическом порядке
func orderedPrices(dailyPrices map[time.Time]float64) []float64 {
	dates := make([]time.Time, 0, len(dailyPrices))
	for date := range dailyPrices {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	prices := make([]float64, 0, len(dates))
	for _, date := range dates {
		prices = append(prices, dailyPrices[date])
	}
	return prices
}
