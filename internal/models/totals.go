package models

// Типы строк таблицы итогов заказа
const (
	RowTypePlain    = "plain"
	RowTypeNegative = "negative"
	RowTypePoints   = "points"
	RowTypeTotal    = "total"
)

// OrderTotalsRow - строка таблицы итогов: подпись, отформатированное
// значение и тип отображения.
type OrderTotalsRow struct {
	Label string `json:"Label"`
	Value string `json:"Value"`
	Type  string `json:"Type"`
}
