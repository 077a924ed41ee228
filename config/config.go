package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig содержит полную конфигурацию сервиса анализа спроса
type AppConfig struct {
	// Конфигурация HTTP-сервера
	Server ServerConfig `json:"server"`

	// Конфигурация подключения к базе данных
	Database DatabaseConfig `json:"database"`

	// Конфигурация провайдера данных о рейсах (Amadeus)
	Amadeus AmadeusConfig `json:"amadeus"`

	// Конфигурация генератора инсайтов (OpenAI)
	OpenAI OpenAIConfig `json:"openai"`

	// Интервал запуска цикла анализа
	RunInterval time.Duration `json:"run_interval"`

	// Города Австралии для внутренних рейсов (три крупнейших)
	AustralianCities []string `json:"australian_cities"`

	// Международные направления из Австралии
	InternationalDestinations []string `json:"international_destinations"`

	// Путь к файлу с праздничными периодами
	HolidayConfigPath string `json:"holiday_config_path"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// ServerConfig содержит настройки HTTP-сервера
type ServerConfig struct {
	Addr         string        `json:"addr"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
}

// AmadeusConfig содержит настройки клиента Amadeus API
type AmadeusConfig struct {
	BaseURL   string        `json:"base_url"`
	APIKey    string        `json:"api_key"`
	APISecret string        `json:"api_secret"`
	Timeout   time.Duration `json:"timeout"`

	// Максимальное количество предложений на один запрос поиска
	MaxResults int `json:"max_results"`
}

// OpenAIConfig содержит настройки клиента OpenAI API
type OpenAIConfig struct {
	APIKey    string        `json:"api_key"`
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Timeout   time.Duration `json:"timeout"`
}

// Значения конфигурации по умолчанию
var (
	DefaultDatabaseConfig = DatabaseConfig{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "",
		DBName:   "airline_demand",
	}

	DefaultAppConfig = AppConfig{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DefaultDatabaseConfig,
		Amadeus: AmadeusConfig{
			BaseURL:    "https://test.api.amadeus.com",
			Timeout:    30 * time.Second,
			MaxResults: 20,
		},
		OpenAI: OpenAIConfig{
			Model:     "gpt-3.5-turbo",
			MaxTokens: 1000,
			Timeout:   60 * time.Second,
		},
		RunInterval:               1 * time.Hour,
		AustralianCities:          []string{"SYD", "MEL", "BNE"},
		InternationalDestinations: []string{"LAX", "LHR", "SIN"},
		HolidayConfigPath:         "holidays.yaml",
		EnableDetailedLogging:     true,
	}
)

// GetConfig возвращает конфигурацию сервиса с учетом переменных окружения
func GetConfig() AppConfig {
	config := DefaultAppConfig

	if v := os.Getenv("SERVER_ADDR"); v != "" {
		config.Server.Addr = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		config.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		config.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		config.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		config.Database.DBName = v
	}
	if v := os.Getenv("AMADEUS_API_KEY"); v != "" {
		config.Amadeus.APIKey = v
	}
	if v := os.Getenv("AMADEUS_API_SECRET"); v != "" {
		config.Amadeus.APISecret = v
	}
	if v := os.Getenv("AMADEUS_BASE_URL"); v != "" {
		config.Amadeus.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		config.OpenAI.APIKey = v
	}
	if v := os.Getenv("HOLIDAY_CONFIG_PATH"); v != "" {
		config.HolidayConfigPath = v
	}
	if v := os.Getenv("RUN_INTERVAL"); v != "" {
		if interval, err := time.ParseDuration(v); err == nil {
			config.RunInterval = interval
		}
	}

	return config
}
