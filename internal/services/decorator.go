package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ozretail/checkout-gateway/internal/models"
)

var (
	ErrMalformedResult = errors.New("malformed checkout result")
)

// DeliveryMethodCourier - способ доставки, при котором заказ везёт курьер;
// любое другое значение означает самовывоз из магазина.
const DeliveryMethodCourier = "Courier"

// Decorator превращает сырой ответ API оформления заказа в представление
// для клиента: адреса и окна форматируются, номера подарочных карт
// маскируются, блок лояльности получает сообщение, собирается таблица
// итогов. Чистое преобразование, без ввода-вывода.
type Decorator struct {
	Windows *WindowFormatter
}

// Создание декоратора
func NewDecorator(location *time.Location) *Decorator {
	return &Decorator{Windows: NewWindowFormatter(location)}
}

// Decorate обрабатывает один ответ вышестоящего API. Неуспешный ответ
// (статус отличен от 200) помечается и возвращается без декорации, Result
// проходит насквозь нетронутым. Ошибка возвращается только на
// действительно испорченном входе: некорректный JSON, неразбираемые
// дата/время окна.
func (d *Decorator) Decorate(response *models.RawResponse) (*models.DecoratedResponse, error) {
	decorated := &models.DecoratedResponse{
		HTTPStatusCode: response.HTTPStatusCode,
		Caller:         models.CallerOrder,
	}

	// неуспешный callout дальше не обрабатываем
	if response.HTTPStatusCode != http.StatusOK {
		if len(response.Result) > 0 {
			decorated.Result = response.Result
		}
		return decorated, nil
	}

	var result models.RawResult
	if len(response.Result) > 0 {
		if err := json.Unmarshal(response.Result, &result); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResult, err)
		}
	}

	var window *models.Window
	if result.Window != nil {
		text, err := d.Windows.Format(result.Window.WindowDate, result.Window.StartTime, result.Window.EndTime)
		if err != nil {
			return nil, err
		}
		window = &models.Window{
			ID:        result.Window.ID,
			Text:      text,
			Date:      result.Window.WindowDate,
			StartTime: result.Window.StartTime,
			EndTime:   result.Window.EndTime,
		}
	}

	var (
		delivery *models.Delivery
		pickup   *models.Pickup
	)
	order := models.RawOrder{}
	if result.Order != nil {
		order = *result.Order
		if order.DeliveryMethod == DeliveryMethodCourier {
			delivery = &models.Delivery{
				Address: &models.Address{
					ID:   order.AddressID,
					Text: FormatAddress(order.DeliveryStreet1, order.DeliveryStreet2, order.DeliverySuburb, order.DeliveryPostalCode),
				},
				Window: window,
			}
		} else {
			pickup = &models.Pickup{
				Store:  &models.Address{ID: order.FulfilmentStoreID, Text: order.DeliveryCity},
				Window: window,
			}
		}
		order.GiftCardPayments = MaskGiftCards(order.GiftCardPayments)
	}

	loyalty := ResolveLoyalty(result.Loyalty, order.RedeemableWowRewardsDollars)

	fulfilment := &models.Fulfilment{
		PrimaryAddress: result.PrimaryAddress,
		Delivery:       delivery,
		Pickup:         pickup,
		Instructions:   order.DeliveryInstruction,

		Savings:                     order.Savings,
		TeamDiscount:                order.TeamDiscount,
		OrderDiscount:               order.OrderDiscount,
		Subtotal:                    order.Subtotal,
		PackagingFee:                order.PackagingFee,
		PackagingFeeLabel:           order.PackagingFeeLabel,
		DeliveryFee:                 order.DeliveryFee,
		DeliveryFeeDiscount:         order.DeliveryFeeDiscount,
		BalanceToPay:                order.BalanceToPay,
		TotalIncludingGst:           order.TotalIncludingGst,
		WowRewardsPaymentAmount:     order.WowRewardsPaymentAmount,
		RedeemableWowRewardsDollars: order.RedeemableWowRewardsDollars,
		DeferredWowRewardsDollars:   order.DeferredWowRewardsDollars,
		StoreCreditTotal:            order.StoreCreditTotal,

		Loyalty: loyalty,

		Discounts:                          order.Discounts,
		GiftCardPayments:                   order.GiftCardPayments,
		UnavailableOrderItems:              order.UnavailableOrderItems,
		RestrictedOrderItems:               order.RestrictedOrderItems,
		ExceededSupplyLimitProducts:        order.ExceededSupplyLimitProducts,
		RestrictedProductsByDeliveryMethod: order.RestrictedProductsByDeliveryMethod,
		RestrictedProductsByDeliPlatter:    order.RestrictedProductsByDeliPlatter,

		Errors:              result.Errors,
		CanProceedToPayment: result.CanProceedToPayment,
	}

	var totalsOrder *models.RawOrder
	if result.Order != nil {
		totalsOrder = &order
	}

	decorated.Result = &models.DecoratedResult{
		Order:                fulfilment,
		OrderTotalsTableData: BuildOrderTotals(totalsOrder, loyalty),
	}

	return decorated, nil
}
