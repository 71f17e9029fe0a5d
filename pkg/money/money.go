// Package money содержит хелперы форматирования денежных сумм и количеств
// для отображения. Округление применяется только на выводе: внутренние расчеты
// (агрегация по клиенту, суммы за период) всегда идут с полной точностью.
package money

import (
	"fmt"
	"math"
)

// Round2 округляет значение до 2 знаков после запятой (для отображения)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount форматирует сумму как денежную строку, например "$330.00"
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", Round2(v))
}

// FormatRate форматирует долю комиссии как проценты, например "10%"
func FormatRate(rate float64) string {
	return fmt.Sprintf("%g%%", Round2(rate*100))
}

// FormatQuantity форматирует целочисленное количество с подписью,
// например "3 bookings" / "1 booking"
func FormatQuantity(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
