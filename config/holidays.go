package config

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/shubhra2160/Airline-market-demand-analysis/analysis/classifier"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// holidayFile описывает формат YAML-файла с праздничными периодами
type holidayFile struct {
	Periods []holidayEntry `yaml:"periods"`
}

type holidayEntry struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"` // формат 2006-01-02
	End   string `yaml:"end"`
}

// DefaultHolidayPeriods возвращает праздничные периоды по умолчанию:
// Рождество/Новый год, Пасха и два окна школьных каникул
func DefaultHolidayPeriods() []classifier.Period {
	return []classifier.Period{
		{
			Name:  "christmas_new_year",
			Start: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 1, 10, 23, 59, 59, 0, time.UTC),
		},
		{
			Name:  "easter",
			Start: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 4, 5, 23, 59, 59, 0, time.UTC),
		},
		{
			Name:  "winter_school_holidays",
			Start: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 7, 20, 23, 59, 59, 0, time.UTC),
		},
		{
			Name:  "spring_school_holidays",
			Start: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 10, 5, 23, 59, 59, 0, time.UTC),
		},
	}
}

// LoadHolidayPeriods загружает праздничные периоды из YAML-файла
func LoadHolidayPeriods(path string) ([]classifier.Period, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла праздничных периодов: %w", err)
	}

	var file holidayFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ошибка разбора файла праздничных периодов: %w", err)
	}

	periods := make([]classifier.Period, 0, len(file.Periods))
	for _, entry := range file.Periods {
		start, err := time.Parse("2006-01-02", entry.Start)
		if err != nil {
			return nil, fmt.Errorf("неверная дата начала периода %q: %w", entry.Name, err)
		}

		end, err := time.Parse("2006-01-02", entry.End)
		if err != nil {
			return nil, fmt.Errorf("неверная дата окончания периода %q: %w", entry.Name, err)
		}

		if end.Before(start) {
			return nil, fmt.Errorf("период %q: дата окончания раньше даты начала", entry.Name)
		}

		periods = append(periods, classifier.Period{
			Name:  entry.Name,
			Start: start,
			// Конец периода включительно, до конца дня
			End: end.Add(24*time.Hour - time.Second),
		})
	}

	return periods, nil
}

// HolidayStore хранит актуальный набор праздничных периодов и
// перезагружает его при изменении конфигурационного файла
type HolidayStore struct {
	mu      sync.RWMutex
	periods []classifier.Period
	path    string
	logger  *utils.AnalysisLogger
}

// NewHolidayStore создает хранилище периодов. Если файл недоступен,
// используются периоды по умолчанию.
func NewHolidayStore(path string, logger *utils.AnalysisLogger) *HolidayStore {
	store := &HolidayStore{
		path:   path,
		logger: logger,
	}

	periods, err := LoadHolidayPeriods(path)
	if err != nil {
		logger.Info("Файл праздничных периодов недоступен (%v), используются значения по умолчанию", err)
		periods = DefaultHolidayPeriods()
	} else {
		logger.Info("Загружено праздничных периодов: %d", len(periods))
	}

	store.periods = periods
	return store
}

// Periods возвращает текущий набор праздничных периодов
func (s *HolidayStore) Periods() []classifier.Period {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.periods
}

// Reload перечитывает периоды из файла
func (s *HolidayStore) Reload() error {
	periods, err := LoadHolidayPeriods(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.periods = periods
	s.mu.Unlock()

	s.logger.Info("Праздничные периоды перезагружены: %d", len(periods))
	return nil
}

// Watch отслеживает изменения файла периодов и перезагружает его при записи.
// Блокируется до отмены контекста.
func (s *HolidayStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ошибка создания наблюдателя за файлом: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.path); err != nil {
		return fmt.Errorf("ошибка добавления файла в наблюдение: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				if err := s.Reload(); err != nil {
					s.logger.Error("Ошибка перезагрузки праздничных периодов: %v", err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("Ошибка наблюдателя за файлом периодов: %v", err)
		}
	}
}
