package domain

// Веса четырех независимых проверок совместимости. Сумма равна 100.
// Частичных баллов нет: каждая проверка либо дает свой вес целиком, либо ноль.
const (
	WeightAvailability = 25
	WeightCapacity     = 25
	WeightCategory     = 25
	WeightVenueType    = 25

	MaxCompatibilityScore = WeightAvailability + WeightCapacity + WeightCategory + WeightVenueType
)

// CompatibilityResult is the ephemeral result of scoring a venue against an event.
// Не персистится, пересчитывается по запросу; флаги нужны вызывающим,
// чтобы подсветить несовпадения.
type CompatibilityResult struct {
	VenueID int64
	EventID int64

	Score int // 0-100, сумма весов прошедших проверок

	Available  bool // Нет подтвержденного бронирования, пересекающегося с окном события
	CapacityOK bool // Вместимость площадки >= требуемой
	CategoryOK bool // Категория площадки подходит категории события
	TypeOK     bool // Тип события поддерживается площадкой
}

// IsPerfectMatch returns true if every sub-check passed
func (r CompatibilityResult) IsPerfectMatch() bool {
	return r.Score == MaxCompatibilityScore
}
