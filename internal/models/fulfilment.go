package models

import "encoding/json"

// CallerOrder - метка источника, проставляемая декоратором в каждый ответ.
const CallerOrder = "Order"

// Address - адресный объект для отображения: доставка или магазин выдачи.
type Address struct {
	ID   *int64 `json:"Id"`
	Text string `json:"Text"`
}

// Window - окно доставки/самовывоза с готовой к показу строкой Text.
type Window struct {
	ID        *int64 `json:"Id"`
	Text      string `json:"Text"`
	Date      string `json:"Date"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

// Delivery - доставка курьером: адрес получателя и окно.
type Delivery struct {
	Address *Address `json:"Address,omitempty"`
	Window  *Window  `json:"Window,omitempty"`
}

// Pickup - самовывоз: магазин выдачи и окно.
type Pickup struct {
	Store  *Address `json:"Store,omitempty"`
	Window *Window  `json:"Window,omitempty"`
}

// Fulfilment - декорированное представление заказа. Заполняется только
// один из Delivery/Pickup, второй опускается. Отсутствующие у бэкенда
// поля остаются nil/пустыми, наличие никогда не предполагается.
type Fulfilment struct {
	PrimaryAddress json.RawMessage `json:"PrimaryAddress,omitempty"`
	Delivery       *Delivery       `json:"Delivery,omitempty"`
	Pickup         *Pickup         `json:"Pickup,omitempty"`
	Instructions   string          `json:"Instructions"`

	Savings                     *float64 `json:"Savings"`
	TeamDiscount                *float64 `json:"TeamDiscount"`
	OrderDiscount               *float64 `json:"OrderDiscount"`
	Subtotal                    *float64 `json:"Subtotal"`
	PackagingFee                *float64 `json:"PackagingFee"`
	PackagingFeeLabel           string   `json:"PackagingFeeLabel"`
	DeliveryFee                 *float64 `json:"DeliveryFee"`
	DeliveryFeeDiscount         *float64 `json:"DeliveryFeeDiscount"`
	BalanceToPay                *float64 `json:"BalanceToPay"`
	TotalIncludingGst           *float64 `json:"TotalIncludingGst"`
	WowRewardsPaymentAmount     *float64 `json:"WowRewardsPaymentAmount"`
	RedeemableWowRewardsDollars *float64 `json:"RedeemableWowRewardsDollars"`
	DeferredWowRewardsDollars   *float64 `json:"DeferredWowRewardsDollars"`
	StoreCreditTotal            *float64 `json:"StoreCreditTotal"`

	Loyalty *Loyalty `json:"Loyalty,omitempty"`

	Discounts                          json.RawMessage   `json:"Discounts,omitempty"`
	GiftCardPayments                   []GiftCardPayment `json:"GiftCardPayments,omitempty"`
	UnavailableOrderItems              json.RawMessage   `json:"UnavailableOrderItems,omitempty"`
	RestrictedOrderItems               json.RawMessage   `json:"RestrictedOrderItems,omitempty"`
	ExceededSupplyLimitProducts        json.RawMessage   `json:"ExceededSupplyLimitProducts,omitempty"`
	RestrictedProductsByDeliveryMethod json.RawMessage   `json:"RestrictedProductsByDeliveryMethod,omitempty"`
	RestrictedProductsByDeliPlatter    json.RawMessage   `json:"RestrictedProductsByDeliPlatter,omitempty"`

	Errors              json.RawMessage `json:"Errors,omitempty"`
	CanProceedToPayment *bool           `json:"CanProceedToPayment"`
}

// DecoratedResult - результат успешной декорации: заказ и таблица итогов.
type DecoratedResult struct {
	Order                *Fulfilment        `json:"Order"`
	OrderTotalsTableData [][]OrderTotalsRow `json:"OrderTotalsTableData"`
}

// DecoratedResponse - итоговый ответ шлюза. При статусе 200 Result содержит
// *DecoratedResult, иначе - нетронутый json.RawMessage вышестоящего ответа.
type DecoratedResponse struct {
	HTTPStatusCode int    `json:"httpStatusCode"`
	Caller         string `json:"Caller"`
	Result         any    `json:"Result,omitempty"`
}
