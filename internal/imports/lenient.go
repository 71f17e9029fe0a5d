package imports

import (
	"fmt"
	"strings"
	"time"

	"github.com/avlko/GMA-BookingService/pkg/types"
)

// Поддерживаемые форматы дат в импортируемых файлах.
// Источники выгружают даты по-разному, поэтому парсинг намеренно лояльный.
var dateLayouts = []string{
	"2-1-06",     // d-M-yy
	"02-01-06",   // dd-MM-yy
	"2/01/2006",  // d/MM/yyyy
	"02/01/2006", // dd/MM/yyyy
}

// Поддерживаемые форматы времени: 12-часовой ("8PM") и 24-часовой ("20:00")
var timeLayouts = []string{
	"15:04",
	"3PM",
	"3:04PM",
}

// ParseDate разбирает дату одним из поддерживаемых лояльных форматов
func ParseDate(s string) (time.Time, error) {
	value := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseTime разбирает время в 12- или 24-часовом формате и нормализует до "HH:MM"
func ParseTime(s string) (types.TimeString, error) {
	value := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return types.NewTimeString(parsed), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
}
