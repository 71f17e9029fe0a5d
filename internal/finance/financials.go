// Package finance расчет финансовых показателей бронирования:
// стоимость аренды, комиссия агентства и итоговая сумма.
package finance

import (
	"github.com/avlko/GMA-BookingService/internal/domain"
	"github.com/avlko/GMA-BookingService/pkg/money"
)

// Financials финансовые показатели одного бронирования.
// Значения хранятся с полной точностью; округление до 2 знаков -
// только при отображении, чтобы агрегация по многим бронированиям
// не накапливала ошибку округления.
type Financials struct {
	HirePrice  float64 // Цена площадки за час * длительность в часах
	Commission float64 // HirePrice * ставка комиссии клиента
	Total      float64 // HirePrice + Commission
}

// Rounded возвращает копию с округлением до 2 знаков для отображения
func (f Financials) Rounded() Financials {
	return Financials{
		HirePrice:  money.Round2(f.HirePrice),
		Commission: money.Round2(f.Commission),
		Total:      money.Round2(f.Total),
	}
}

// Compute вычисляет финансовые показатели бронирования по его связям.
// Если какая-либо из связанных сущностей отсутствует (nil), возвращает нулевые
// значения без ошибки: сводные отчеты должны отображаться и с неполными данными.
func Compute(venue *domain.Venue, event *domain.Event, client *domain.Client) Financials {
	if venue == nil || event == nil || client == nil {
		return Financials{}
	}

	hirePrice := venue.HirePricePerHour * float64(event.DurationHours)
	commission := hirePrice * client.CommissionRate

	return Financials{
		HirePrice:  hirePrice,
		Commission: commission,
		Total:      hirePrice + commission,
	}
}

// ComputeForBooking вычисляет финансовые показатели по денормализованному
// окну бронирования. Используется сводками: длительность берется из самого
// бронирования, а не из живого события, которое могло измениться.
func ComputeForBooking(venue *domain.Venue, booking *domain.Booking, client *domain.Client) Financials {
	if venue == nil || booking == nil || client == nil {
		return Financials{}
	}

	hirePrice := venue.HirePricePerHour * float64(booking.DurationHours)
	commission := hirePrice * client.CommissionRate

	return Financials{
		HirePrice:  hirePrice,
		Commission: commission,
		Total:      hirePrice + commission,
	}
}
