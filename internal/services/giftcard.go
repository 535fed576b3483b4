package services

import "github.com/ozretail/checkout-gateway/internal/models"

// giftCardMask - четыре средние точки (U+00B7), маскирующие номер карты
const giftCardMask = "···· "

// MaskGiftCards маскирует номера подарочных карт до последних четырёх
// символов. Возвращается новый срез, входной не изменяется. Номер короче
// четырёх символов остаётся видимым целиком за маской.
func MaskGiftCards(payments []models.GiftCardPayment) []models.GiftCardPayment {
	if len(payments) == 0 {
		return payments
	}

	masked := make([]models.GiftCardPayment, len(payments))
	for i, payment := range payments {
		payment.GiftCardNumber = giftCardMask + lastFour(payment.GiftCardNumber)
		masked[i] = payment
	}
	return masked
}

func lastFour(number string) string {
	if len(number) <= 4 {
		return number
	}
	return number[len(number)-4:]
}
