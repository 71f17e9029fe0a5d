package match_venues

// Request модель запроса на подбор площадок для события
type Request struct {
	EventID int64

	// MinScore отсекает заведомо неподходящие площадки (0 - вернуть все)
	MinScore int
}

// Match одна площадка в ранжированном списке
type Match struct {
	VenueID   int64
	VenueName string
	Score     int // 0-100

	// Разбивка по проверкам
	Available  bool // Окно свободно от подтвержденных бронирований
	CapacityOK bool // Вместимость покрывает требуемую
	CategoryOK bool // Категория совместима
	TypeOK     bool // Тип события поддерживается

	PerfectMatch bool // Все четыре проверки пройдены

	// Прогноз стоимости при бронировании этой площадки
	// (округлен до 2 знаков для отображения)
	HirePrice    float64
	Commission   float64
	Total        float64
	TotalDisplay string // "$330.00"
}

// Response ранжированный список площадок для события.
// Сортировка: оценка по убыванию, при равной оценке - id площадки
// по возрастанию (стабильный порядок для выдачи).
type Response struct {
	EventID   int64
	EventName string
	Matches   []Match
}
