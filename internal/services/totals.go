package services

import (
	"strconv"

	"github.com/ozretail/checkout-gateway/internal/models"
	"github.com/ozretail/checkout-gateway/internal/validators"
	"github.com/shopspring/decimal"
)

// Подписи строк таблицы итогов
const (
	labelSaved            = "You've saved"
	labelEarn             = "You'll earn"
	labelSubtotal         = "Subtotal"
	labelDeliveryFee      = "Delivery fee"
	labelDeliveryDiscount = "Delivery fee discount"
	labelOrderDiscount    = "Order discount"
	labelTeamDiscount     = "Team member discount"
	labelTotal            = "Total (incl. GST)"
	labelStoreCredit      = "Store credit"
	labelWowRewards       = "Woolworths Rewards"
	labelGiftCard         = "Gift card "
	labelBalance          = "Still to pay"
)

// BuildOrderTotals собирает таблицу итогов заказа: до пяти упорядоченных
// секций (накопления, состав, итог, оплаты, остаток). Пустые секции не
// включаются; секции состава и итога присутствуют всегда.
func BuildOrderTotals(order *models.RawOrder, loyalty *models.Loyalty) [][]models.OrderTotalsRow {
	table := make([][]models.OrderTotalsRow, 0, 5)

	// секция накоплений
	saved := make([]models.OrderTotalsRow, 0, 2)
	if order != nil && validators.NonZero(order.Savings) {
		saved = append(saved, row(labelSaved, currency(*order.Savings), models.RowTypeNegative))
	}
	if loyalty != nil && loyalty.Points != 0 {
		saved = append(saved, row(labelEarn, strconv.FormatInt(loyalty.Points, 10)+" points", models.RowTypePoints))
	}
	if len(saved) > 0 {
		table = append(table, saved)
	}

	subtotal := 0.0
	deliveryFee := 0.0
	total := 0.0
	if order != nil {
		subtotal = valueOrZero(order.Subtotal)
		deliveryFee = valueOrZero(order.DeliveryFee)
		total = valueOrZero(order.TotalIncludingGst)
	}

	// секция состава заказа: Subtotal и Delivery fee выводятся всегда
	main := make([]models.OrderTotalsRow, 0, 6)
	main = append(main, row(labelSubtotal, currency(subtotal), models.RowTypePlain))
	main = append(main, row(labelDeliveryFee, currency(deliveryFee), models.RowTypePlain))
	if order != nil {
		if validators.NumericLabel(order.PackagingFeeLabel) {
			main = append(main, row(order.PackagingFeeLabel, currency(valueOrZero(order.PackagingFee)), models.RowTypePlain))
		}
		if validators.NonZero(order.DeliveryFeeDiscount) {
			main = append(main, row(labelDeliveryDiscount, negativeCurrency(*order.DeliveryFeeDiscount), models.RowTypeNegative))
		}
		if validators.NonZero(order.OrderDiscount) {
			main = append(main, row(labelOrderDiscount, negativeCurrency(*order.OrderDiscount), models.RowTypeNegative))
		}
		if validators.NonZero(order.TeamDiscount) {
			main = append(main, row(labelTeamDiscount, negativeCurrency(*order.TeamDiscount), models.RowTypeNegative))
		}
	}
	table = append(table, main)

	// секция итога
	table = append(table, []models.OrderTotalsRow{row(labelTotal, currency(total), models.RowTypeTotal)})

	// секция оплат
	payments := make([]models.OrderTotalsRow, 0, 3)
	if order != nil {
		if validators.NonZero(order.StoreCreditTotal) {
			payments = append(payments, row(labelStoreCredit, negativeCurrency(*order.StoreCreditTotal), models.RowTypeNegative))
		}
		if validators.NonZero(order.WowRewardsPaymentAmount) {
			payments = append(payments, row(labelWowRewards, negativeCurrency(*order.WowRewardsPaymentAmount), models.RowTypeNegative))
		}
		for _, payment := range order.GiftCardPayments {
			payments = append(payments, row(labelGiftCard+payment.GiftCardNumber, negativeCurrency(payment.Amount), models.RowTypeNegative))
		}
	}
	if len(payments) > 0 {
		table = append(table, payments)
	}

	// секция остатка: только если остаток к оплате отличается от итога
	if order != nil {
		balance := valueOrZero(order.BalanceToPay)
		if balance != total {
			table = append(table, []models.OrderTotalsRow{row(labelBalance, currency(balance), models.RowTypeTotal)})
		}
	}

	return table
}

func row(label string, value string, rowType string) models.OrderTotalsRow {
	return models.OrderTotalsRow{Label: label, Value: value, Type: rowType}
}

// currency выводит сумму строго с двумя знаками и ведущим $
func currency(value float64) string {
	return "$" + decimal.NewFromFloat(value).StringFixed(2)
}

func negativeCurrency(value float64) string {
	return "-" + currency(value)
}

func valueOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
