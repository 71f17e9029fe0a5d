package import_catalog

// RowIssue проблема с одной строкой CSV
type RowIssue struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Response итог импорта одного файла.
// Некорректные строки и дубликаты не прерывают импорт:
// файл обрабатывается целиком, проблемы собираются построчно.
type Response struct {
	Imported int        `json:"imported"`
	Skipped  int        `json:"skipped"` // Дубликаты по имени
	Issues   []RowIssue `json:"issues"`
}
