// Package imports разбор CSV-файлов с кандидатами площадок и событий.
// Ядро сервиса сырой текст не видит: наружу отдаются готовые доменные
// записи-кандидаты, строки с ошибками собираются в отчет по номерам строк.
package imports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avlko/GMA-BookingService/internal/domain"
)

// Колонки CSV площадок: name,capacity,price_per_hour,category,venue_types
// venue_types - список через ';', например "Gig;Festival"
const venueColumns = 5

// Колонки CSV событий: name,artist,date,start_time,duration_hours,required_capacity,event_type,category,client_name
const eventColumns = 9

// VenueCandidate кандидат площадки из строки CSV
type VenueCandidate struct {
	Line  int
	Venue domain.Venue
}

// EventCandidate кандидат события из строки CSV.
// Клиент указан именем: сопоставление с id (find-or-create) делает вызывающий.
type EventCandidate struct {
	Line       int
	Event      domain.Event
	ClientName string
}

// RowError ошибка разбора одной строки
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ReadVenues читает CSV с площадками. Первая строка - заголовок, пропускается.
// Некорректные строки не прерывают импорт, а попадают в список ошибок.
func ReadVenues(r io.Reader) ([]VenueCandidate, []RowError, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]VenueCandidate, 0, len(rows))
	rowErrors := make([]RowError, 0)

	for i, row := range rows {
		line := i + 2 // +1 за заголовок, +1 за нумерацию с единицы
		venue, err := parseVenueRow(row)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Err: err})
			continue
		}
		candidates = append(candidates, VenueCandidate{Line: line, Venue: venue})
	}

	return candidates, rowErrors, nil
}

// ReadEvents читает CSV с событиями. Первая строка - заголовок, пропускается.
func ReadEvents(r io.Reader) ([]EventCandidate, []RowError, error) {
	rows, err := readAll(r)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]EventCandidate, 0, len(rows))
	rowErrors := make([]RowError, 0)

	for i, row := range rows {
		line := i + 2
		event, clientName, err := parseEventRow(row)
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Err: err})
			continue
		}
		candidates = append(candidates, EventCandidate{Line: line, Event: event, ClientName: clientName})
	}

	return candidates, rowErrors, nil
}

func readAll(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// Количество колонок проверяем сами, чтобы отдать ошибку с номером строки
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	// Пропускаем заголовок
	if len(rows) > 0 {
		rows = rows[1:]
	}

	return rows, nil
}

func parseVenueRow(row []string) (domain.Venue, error) {
	if len(row) != venueColumns {
		return domain.Venue{}, fmt.Errorf("%w: expected %d columns, got %d", ErrInvalidRow, venueColumns, len(row))
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		return domain.Venue{}, fmt.Errorf("%w: venue name is empty", ErrInvalidRow)
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil || capacity <= 0 {
		return domain.Venue{}, fmt.Errorf("%w: capacity must be a positive integer, got %q", ErrInvalidRow, row[1])
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil || price < 0 {
		return domain.Venue{}, fmt.Errorf("%w: price per hour must be a non-negative number, got %q", ErrInvalidRow, row[2])
	}

	category := domain.VenueCategory(strings.ToUpper(strings.TrimSpace(row[3])))
	if !category.IsValid() {
		return domain.Venue{}, fmt.Errorf("%w: unknown category %q", ErrInvalidRow, row[3])
	}

	venueTypes := parseVenueTypes(row[4])
	if len(venueTypes) == 0 {
		return domain.Venue{}, fmt.Errorf("%w: venue types are empty", ErrInvalidRow)
	}

	return domain.Venue{
		Name:             name,
		Capacity:         capacity,
		HirePricePerHour: price,
		Category:         category,
		VenueTypes:       venueTypes,
	}, nil
}

func parseEventRow(row []string) (domain.Event, string, error) {
	if len(row) != eventColumns {
		return domain.Event{}, "", fmt.Errorf("%w: expected %d columns, got %d", ErrInvalidRow, eventColumns, len(row))
	}

	name := strings.TrimSpace(row[0])
	if name == "" {
		return domain.Event{}, "", fmt.Errorf("%w: event name is empty", ErrInvalidRow)
	}

	date, err := ParseDate(row[2])
	if err != nil {
		return domain.Event{}, "", err
	}

	startTime, err := ParseTime(row[3])
	if err != nil {
		return domain.Event{}, "", err
	}

	duration, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil || duration <= 0 {
		return domain.Event{}, "", fmt.Errorf("%w: duration must be a positive integer, got %q", ErrInvalidRow, row[4])
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(row[5]))
	if err != nil || capacity <= 0 {
		return domain.Event{}, "", fmt.Errorf("%w: required capacity must be a positive integer, got %q", ErrInvalidRow, row[5])
	}

	category := domain.VenueCategory(strings.ToUpper(strings.TrimSpace(row[7])))
	if !category.IsValid() {
		return domain.Event{}, "", fmt.Errorf("%w: unknown category %q", ErrInvalidRow, row[7])
	}

	clientName := strings.TrimSpace(row[8])
	if clientName == "" {
		return domain.Event{}, "", fmt.Errorf("%w: client name is empty", ErrInvalidRow)
	}

	return domain.Event{
		Name:             name,
		Artist:           strings.TrimSpace(row[1]),
		Date:             date,
		StartTime:        startTime,
		DurationHours:    duration,
		RequiredCapacity: capacity,
		EventType:        strings.TrimSpace(row[6]),
		Category:         category,
	}, clientName, nil
}

// parseVenueTypes разбирает список типов через ';' с сохранением порядка
// и отбрасыванием дублей без учета регистра
func parseVenueTypes(s string) []string {
	parts := strings.Split(s, ";")
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		t := strings.TrimSpace(part)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, t)
	}

	return result
}
