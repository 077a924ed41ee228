package database

import (
	"database/sql"
	"fmt"
)

// Таблицы сервиса анализа спроса
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS flights (
		id INT AUTO_INCREMENT PRIMARY KEY,
		origin CHAR(3) NOT NULL,
		destination CHAR(3) NOT NULL,
		departure_date DATETIME NOT NULL,
		return_date DATETIME NULL,
		airline VARCHAR(100) NULL,
		flight_number VARCHAR(20) NULL,
		aircraft_type VARCHAR(50) NULL,
		booking_class VARCHAR(4) NULL,
		price DOUBLE NOT NULL,
		currency CHAR(3) NOT NULL DEFAULT 'AUD',
		availability INT NOT NULL DEFAULT 0,
		is_domestic BOOLEAN NOT NULL DEFAULT TRUE,
		data_source VARCHAR(50) NOT NULL DEFAULT 'amadeus',
		raw_payload MEDIUMBLOB NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_flights_route (origin, destination),
		INDEX idx_flights_departure (departure_date)
	)`,
	`CREATE TABLE IF NOT EXISTS demand_metrics (
		id INT AUTO_INCREMENT PRIMARY KEY,
		flight_id INT NOT NULL,
		demand_score DOUBLE NOT NULL,
		season VARCHAR(20) NOT NULL,
		is_holiday_period BOOLEAN NOT NULL DEFAULT FALSE,
		is_weekend BOOLEAN NOT NULL DEFAULT FALSE,
		score_fallback BOOLEAN NOT NULL DEFAULT FALSE,
		search_volume INT NOT NULL DEFAULT 0,
		booking_volume INT NOT NULL DEFAULT 0,
		price_trend VARCHAR(20) NULL,
		analysis_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (flight_id) REFERENCES flights(id)
	)`,
	`CREATE TABLE IF NOT EXISTS routes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		origin CHAR(3) NOT NULL,
		destination CHAR(3) NOT NULL,
		total_flights INT NOT NULL DEFAULT 0,
		average_price DOUBLE NOT NULL DEFAULT 0,
		price_variance DOUBLE NOT NULL DEFAULT 0,
		average_demand_score DOUBLE NOT NULL DEFAULT 0,
		search_frequency INT NOT NULL DEFAULT 0,
		booking_frequency INT NOT NULL DEFAULT 0,
		route_popularity_score DOUBLE NOT NULL DEFAULT 0,
		price_trend VARCHAR(20) NULL,
		is_domestic BOOLEAN NOT NULL DEFAULT TRUE,
		last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uniq_route (origin, destination)
	)`,
	`CREATE TABLE IF NOT EXISTS insights (
		id CHAR(36) PRIMARY KEY,
		title VARCHAR(200) NOT NULL,
		content TEXT NOT NULL,
		insight_type VARCHAR(50) NOT NULL,
		category VARCHAR(50) NULL,
		priority VARCHAR(20) NOT NULL DEFAULT 'medium',
		confidence_score DOUBLE NULL,
		data_points_used INT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		generated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS api_usage (
		id INT AUTO_INCREMENT PRIMARY KEY,
		api_name VARCHAR(50) NOT NULL,
		endpoint VARCHAR(100) NOT NULL,
		method VARCHAR(10) NOT NULL,
		status_code INT NULL,
		response_time_ms INT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS analysis_run_log (
		id INT AUTO_INCREMENT PRIMARY KEY,
		start_time DATETIME NOT NULL,
		end_time DATETIME NULL,
		status VARCHAR(20) NOT NULL,
		offers_fetched INT NOT NULL DEFAULT 0,
		flights_accepted INT NOT NULL DEFAULT 0,
		flights_rejected INT NOT NULL DEFAULT 0,
		routes_updated INT NOT NULL DEFAULT 0,
		error_message TEXT NULL
	)`,
}

// EnsureSchema создает таблицы сервиса, если они еще не существуют
func EnsureSchema(db *sql.DB) error {
	for _, statement := range schemaStatements {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("ошибка при создании таблицы: %w", err)
		}
	}
	return nil
}
