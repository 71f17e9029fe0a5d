package create_booking

import (
	"time"

	"github.com/avlko/GMA-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	EventID   int64  // ID события
	VenueID   int64  // ID площадки
	CreatedBy string // Сотрудник, создающий бронирование (для аудита)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	EventID       int64            // ID события
	VenueID       int64            // ID площадки
	ClientID      int64            // ID клиента
	BookingDate   time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	DurationHours int              // Длительность в часах
	Status        string           // Статус бронирования
	CreatedBy     string           // Автор бронирования

	// Денормализованные данные
	EventName string // Название события
	VenueName string // Название площадки

	// Финансовые показатели (округлены до 2 знаков для отображения)
	HirePrice    float64 // Стоимость аренды площадки
	Commission   float64 // Комиссия агентства
	Total        float64 // Итоговая сумма
	TotalDisplay string  // Отформатированная сумма, "$330.00"

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
