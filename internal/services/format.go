package services

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidWindowTime = errors.New("invalid fulfilment window time")

// DefaultTimezone - часовой пояс отображения окон по умолчанию
const DefaultTimezone = "Australia/Sydney"

// Поддерживаемые форматы даты/времени бэкенда
var windowTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatAddress собирает строку адреса для отображения: улица, затем
// вторая строка адреса либо пригород, затем почтовый индекс. Пустые поля
// ничего не добавляют.
func FormatAddress(street1 string, street2 string, suburb string, postalCode string) string {
	text := street1
	if street2 != "" {
		text += ", " + street2
	} else if suburb != "" {
		text += ", " + suburb
	}
	if postalCode != "" {
		text += " " + postalCode
	}
	return text
}

// WindowFormatter форматирует окно доставки/самовывоза относительно
// календаря. Часовой пояс передаётся явно и не трогает глобальное
// состояние процесса.
type WindowFormatter struct {
	location *time.Location
	now      func() time.Time
}

// Создание форматтера окон
func NewWindowFormatter(location *time.Location) *WindowFormatter {
	return &WindowFormatter{location: location, now: time.Now}
}

// Format строит строку вида "Tomorrow between 9:00am and 12:00pm".
func (f *WindowFormatter) Format(date string, startTime string, endTime string) (string, error) {
	day, err := f.parseTime(date)
	if err != nil {
		return "", err
	}
	start, err := f.parseTime(startTime)
	if err != nil {
		return "", err
	}
	end, err := f.parseTime(endTime)
	if err != nil {
		return "", err
	}

	return f.calendarDay(day) +
		" between " + start.In(f.location).Format("3:04pm") +
		" and " + end.In(f.location).Format("3:04pm"), nil
}

// parseTime разбирает дату/время бэкенда в часовом поясе форматтера.
func (f *WindowFormatter) parseTime(value string) (time.Time, error) {
	for _, layout := range windowTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, f.location); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidWindowTime, value)
}

// calendarDay возвращает календарно-относительное название дня: Today,
// Tomorrow, название дня недели в пределах недели вперёд, Yesterday,
// "Last <день недели>" в пределах недели назад, иначе дата.
func (f *WindowFormatter) calendarDay(target time.Time) string {
	target = target.In(f.location)
	now := f.now().In(f.location)

	startOfDay := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, f.location)
	}
	// разница в календарных днях, с округлением из-за переходов на летнее время
	diff := startOfDay(target).Sub(startOfDay(now))
	days := int((diff + 12*time.Hour) / (24 * time.Hour))
	if diff < 0 {
		days = -int((-diff + 12*time.Hour) / (24 * time.Hour))
	}

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1 && days < 7:
		return target.Weekday().String()
	case days == -1:
		return "Yesterday"
	case days < -1 && days > -7:
		return "Last " + target.Weekday().String()
	default:
		return target.Format("01/02/2006")
	}
}
