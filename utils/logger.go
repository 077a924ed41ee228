package utils

import (
	"fmt"
	"log"
	"os"
	"time"
)

// AnalysisLogger представляет логгер для процесса анализа спроса
type AnalysisLogger struct {
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	isVerbose   bool
	file        *os.File
}

// NewAnalysisLogger создает новый экземпляр логгера анализа
func NewAnalysisLogger(verbose bool) *AnalysisLogger {
	// Создаем или открываем лог-файл для записи
	currentTime := time.Now().Format("2006-01-02")
	logFileName := fmt.Sprintf("analysis_log_%s.log", currentTime)

	file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatalf("Не удалось открыть или создать файл лога: %v", err)
	}

	// Инициализируем логгеры для разных уровней
	infoLogger := log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	errorLogger := log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	debugLogger := log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

	return &AnalysisLogger{
		infoLogger:  infoLogger,
		errorLogger: errorLogger,
		debugLogger: debugLogger,
		isVerbose:   verbose,
		file:        file,
	}
}

// Close закрывает файл лога
func (l *AnalysisLogger) Close() error {
	return l.file.Close()
}

// Info логирует информационное сообщение
func (l *AnalysisLogger) Info(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.infoLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("INFO:", msg)
}

// Error логирует сообщение об ошибке
func (l *AnalysisLogger) Error(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.errorLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("ERROR:", msg)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *AnalysisLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.debugLogger.Println(msg)

	// Также выводим в стандартный вывод
	log.Println("DEBUG:", msg)
}

// LogRunStart логирует начало цикла анализа
func (l *AnalysisLogger) LogRunStart() {
	l.Info("Начало цикла анализа рыночного спроса")
}

// LogRunComplete логирует завершение цикла анализа
func (l *AnalysisLogger) LogRunComplete(startTime time.Time, fetched int, accepted int, routes int) {
	duration := time.Since(startTime)
	l.Info("Цикл анализа завершён. Длительность: %v", duration)
	l.Info("Обработано: %d предложений получено, %d принято, %d маршрутов агрегировано", fetched, accepted, routes)
}

// LogFetchComplete логирует завершение фазы получения данных
func (l *AnalysisLogger) LogFetchComplete(offers int, duration time.Duration) {
	l.Info("Фаза Fetch завершена. Длительность: %v", duration)
	l.Info("Получено предложений: %d", offers)
}
