package validators

import (
	"math"
	"strconv"
	"strings"
)

// NonZero проверяет "присутствует и отлично от нуля": указатель задан,
// значение не ноль и не NaN. Нулевая скидка считается отсутствующей.
func NonZero(value *float64) bool {
	return value != nil && *value != 0 && !math.IsNaN(*value)
}

// ParseLeadingNumber разбирает максимальный числовой префикс строки,
// как это делает parseFloat: "3.50 packaging" даёт 3.50, строка без
// числового префикса - NaN.
func ParseLeadingNumber(s string) float64 {
	s = strings.TrimSpace(s)

	end := 0
	seenDigit := false
	seenDot := false
	seenExp := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '+' || c == '-':
			// знак допустим только в начале числа или сразу после экспоненты
			if i != 0 && !(seenExp && (s[i-1] == 'e' || s[i-1] == 'E')) {
				goto done
			}
		case c == '.':
			if seenDot || seenExp {
				goto done
			}
			seenDot = true
		case c == 'e' || c == 'E':
			if seenExp || !seenDigit {
				goto done
			}
			seenExp = true
		default:
			goto done
		}
		end = i + 1
	}

done:
	// откатываем незавершённую экспоненту: "12e" или "12e-"
	for end > 0 {
		c := s[end-1]
		if c == 'e' || c == 'E' || c == '+' || c == '-' {
			end--
			continue
		}
		break
	}

	if !seenDigit || end == 0 {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// NumericLabel проверяет, что подпись начинается с ненулевого числа.
// Используется для условного вывода строки сбора за упаковку.
func NumericLabel(label string) bool {
	value := ParseLeadingNumber(label)
	return value != 0 && !math.IsNaN(value)
}
