package models

import "encoding/json"

// RawResponse - ответ вышестоящего API оформления заказа в том виде, в
// котором его вернул callout: HTTP-статус и нетронутое тело результата.
// Result остаётся сырым JSON, чтобы при статусе отличном от 200 он прошёл
// через декоратор байт в байт.
type RawResponse struct {
	HTTPStatusCode int             `json:"httpStatusCode"`
	Result         json.RawMessage `json:"Result,omitempty"`
}

// RawResult - распакованный результат успешного (200) ответа. Все поля
// опциональны: их отсутствие не является ошибкой.
type RawResult struct {
	Window              *RawWindow      `json:"Window,omitempty"`
	Order               *RawOrder       `json:"Order,omitempty"`
	Loyalty             *Loyalty        `json:"Loyalty,omitempty"`
	PrimaryAddress      json.RawMessage `json:"PrimaryAddress,omitempty"`
	Errors              json.RawMessage `json:"Errors,omitempty"`
	CanProceedToPayment *bool           `json:"CanProceedToPayment,omitempty"`
}

// RawWindow - окно доставки/самовывоза из бэкенда. Дата и времена
// передаются строками в формате бэкенда.
type RawWindow struct {
	ID         *int64 `json:"Id,omitempty"`
	WindowDate string `json:"WindowDate,omitempty"`
	StartTime  string `json:"StartTime,omitempty"`
	EndTime    string `json:"EndTime,omitempty"`
}

// RawOrder - запись заказа бэкенда. Денежные поля опциональны, списки
// ограничений передаются дальше без интерпретации.
type RawOrder struct {
	DeliveryMethod      string `json:"DeliveryMethod,omitempty"`
	AddressID           *int64 `json:"AddressId,omitempty"`
	DeliveryStreet1     string `json:"DeliveryStreet1,omitempty"`
	DeliveryStreet2     string `json:"DeliveryStreet2,omitempty"`
	DeliverySuburb      string `json:"DeliverySuburb,omitempty"`
	DeliveryCity        string `json:"DeliveryCity,omitempty"`
	DeliveryPostalCode  string `json:"DeliveryPostalCode,omitempty"`
	DeliveryInstruction string `json:"DeliveryInstruction,omitempty"`
	FulfilmentStoreID   *int64 `json:"FulfilmentStoreId,omitempty"`

	Savings                     *float64 `json:"Savings,omitempty"`
	TeamDiscount                *float64 `json:"TeamDiscount,omitempty"`
	OrderDiscount               *float64 `json:"OrderDiscount,omitempty"`
	Subtotal                    *float64 `json:"Subtotal,omitempty"`
	PackagingFee                *float64 `json:"PackagingFee,omitempty"`
	PackagingFeeLabel           string   `json:"PackagingFeeLabel,omitempty"`
	DeliveryFee                 *float64 `json:"DeliveryFee,omitempty"`
	DeliveryFeeDiscount         *float64 `json:"DeliveryFeeDiscount,omitempty"`
	BalanceToPay                *float64 `json:"BalanceToPay,omitempty"`
	TotalIncludingGst           *float64 `json:"TotalIncludingGst,omitempty"`
	WowRewardsPaymentAmount     *float64 `json:"WowRewardsPaymentAmount,omitempty"`
	RedeemableWowRewardsDollars *float64 `json:"RedeemableWowRewardsDollars,omitempty"`
	DeferredWowRewardsDollars   *float64 `json:"DeferredWowRewardsDollars,omitempty"`
	StoreCreditTotal            *float64 `json:"StoreCreditTotal,omitempty"`

	GiftCardPayments []GiftCardPayment `json:"GiftCardPayments,omitempty"`

	Discounts                          json.RawMessage `json:"Discounts,omitempty"`
	UnavailableOrderItems              json.RawMessage `json:"UnavailableOrderItems,omitempty"`
	RestrictedOrderItems               json.RawMessage `json:"RestrictedOrderItems,omitempty"`
	ExceededSupplyLimitProducts        json.RawMessage `json:"ExceededSupplyLimitProducts,omitempty"`
	RestrictedProductsByDeliveryMethod json.RawMessage `json:"RestrictedProductsByDeliveryMethod,omitempty"`
	RestrictedProductsByDeliPlatter    json.RawMessage `json:"RestrictedProductsByDeliPlatter,omitempty"`
}

// GiftCardPayment - оплата подарочной картой. Номер карты маскируется
// декоратором до последних четырёх символов.
type GiftCardPayment struct {
	GiftCardNumber string  `json:"GiftCardNumber"`
	Amount         float64 `json:"Amount"`
}

// Loyalty - блок программы лояльности. WowRewardsRedeemMessage выводится
// декоратором, в сыром ответе его нет.
type Loyalty struct {
	SaveForLaterPreference  *string `json:"SaveForLaterPreference"`
	Points                  int64   `json:"Points,omitempty"`
	WowRewardsRedeemMessage string  `json:"WowRewardsRedeemMessage,omitempty"`
}
