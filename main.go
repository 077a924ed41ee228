// main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"

	"github.com/shubhra2160/Airline-market-demand-analysis/amadeus"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/classifier"
	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/demand"
	"github.com/shubhra2160/Airline-market-demand-analysis/config"
	"github.com/shubhra2160/Airline-market-demand-analysis/database"
	"github.com/shubhra2160/Airline-market-demand-analysis/openai"
	"github.com/shubhra2160/Airline-market-demand-analysis/routes"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
	"github.com/shubhra2160/Airline-market-demand-analysis/websocket"
)

func main() {
	// Режим работы:
	//   server   - HTTP API + планировщик регулярного анализа
	//   once     - один цикл анализа и выход
	//   forecast - прогноз цен по маршруту и выход
	mode := flag.String("mode", "server", "Режим работы: server, once или forecast")
	origin := flag.String("origin", "", "IATA-код аэропорта вылета (для режима forecast)")
	destination := flag.String("destination", "", "IATA-код аэропорта прилета (для режима forecast)")
	flag.Parse()

	fmt.Println("Запуск сервиса анализа спроса на авиаперелеты...")

	cfg := config.GetConfig()
	logger := utils.NewAnalysisLogger(cfg.EnableDetailedLogging)
	defer logger.Close()

	// Подключение к базе данных
	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Не удалось подключиться к базе данных: %v", err)
	}
	defer config.CloseDatabase(db)

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("❌ Не удалось инициализировать схему базы данных: %v", err)
	}

	// Репозитории
	flightRepo := database.NewMySQLFlightRepository(db, logger)
	routeRepo := database.NewMySQLRouteRepository(db, logger)
	insightRepo := database.NewMySQLInsightRepository(db, logger)
	runLogRepo := database.NewMySQLRunLogRepository(db, logger)
	usageRepo := database.NewMySQLApiUsageRepository(db, logger)

	// Праздничные периоды с горячей перезагрузкой из файла
	holidayStore := config.NewHolidayStore(cfg.HolidayConfigPath, logger)

	// Скоринг спроса
	scorer := demand.NewScorer(demand.DefaultConfig(), classifier.New(holidayStore))

	// Внешние клиенты
	amadeusClient := amadeus.NewClient(cfg.Amadeus, logger, usageRepo)
	openaiClient := openai.NewClient(cfg.OpenAI, logger)

	// Менеджер WebSocket-подписчиков статуса
	wsManager := websocket.NewManager()

	pipeline := analysis.NewPipeline(cfg, logger, amadeusClient, openaiClient, scorer,
		flightRepo, routeRepo, insightRepo, runLogRepo, wsManager)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch *mode {
	case "once":
		if err := pipeline.Execute(ctx); err != nil {
			log.Fatalf("❌ Ошибка выполнения цикла анализа: %v", err)
		}
		log.Println("✅ Цикл анализа выполнен")
		return

	case "forecast":
		if *origin == "" || *destination == "" {
			log.Fatalf("❌ Для режима forecast требуются флаги -origin и -destination")
		}
		forecast, err := pipeline.RouteForecast(*origin, *destination)
		if err != nil {
			log.Fatalf("❌ Ошибка построения прогноза: %v", err)
		}
		encoded, _ := json.MarshalIndent(forecast, "", "  ")
		fmt.Println(string(encoded))
		return

	case "server":
		// Основной режим, продолжаем ниже
	default:
		log.Fatalf("❌ Неизвестный режим работы: %s", *mode)
	}

	// Запускаем менеджер WebSocket
	go wsManager.Run()

	// Наблюдение за файлом праздничных периодов
	go func() {
		if err := holidayStore.Watch(ctx); err != nil {
			logger.Error("Наблюдение за файлом праздничных периодов остановлено: %v", err)
		}
	}()

	// Планировщик регулярного анализа
	go pipeline.StartScheduler(ctx)

	// Маршруты API
	router := mux.NewRouter()
	handler := routes.SetupRoutes(router, routes.Dependencies{
		Pipeline:    pipeline,
		FlightRepo:  flightRepo,
		RouteRepo:   routeRepo,
		InsightRepo: insightRepo,
		RunLogRepo:  runLogRepo,
		WSManager:   wsManager,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Запускаем сервер в отдельной горутине
	go func() {
		log.Printf("✅ Сервер запущен на http://localhost%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Ошибка запуска сервера: %v", err)
		}
	}()

	// Канал для сигналов завершения
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("⚠️ Получен сигнал завершения, закрываем соединения...")

	cancel()

	if err := server.Shutdown(context.Background()); err != nil {
		log.Printf("❌ Ошибка остановки сервера: %v", err)
	}

	log.Println("👋 Сервис остановлен")
}
