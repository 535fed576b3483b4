package services

import (
	"strconv"
	"strings"

	"github.com/ozretail/checkout-gateway/internal/models"
)

// SavePreference - вариант настройки накопления баллов лояльности.
type SavePreference int

const (
	PreferenceAutomatic SavePreference = iota
	PreferenceChristmas
	PreferenceQuarterlyQFF
)

// Канонические значения настройки у бэкенда
const (
	preferenceChristmasValue    = "CHRISTMAS"
	preferenceQuarterlyQFFValue = "QUARTERLY_QFF"
	preferenceAutomaticValue    = "AUTOMATIC"
	preferenceUndefinedValue    = "UNDEFINED"
	preferenceQFFLegacyValue    = "QUARTERLYQFF"
)

// RedeemThreshold - порог в долларах, с которого сообщение переключается
// на "накоплено". Порог включающий: ровно 10 долларов уже "накоплено".
const RedeemThreshold = 10.0

// NormalizePreference приводит настройку накопления к каноническому виду:
// верхний регистр, устаревшее QUARTERLYQFF переписывается в QUARTERLY_QFF,
// UNDEFINED - в AUTOMATIC. nil остаётся nil.
func NormalizePreference(preference *string) *string {
	if preference == nil {
		return nil
	}
	normalized := strings.ToUpper(*preference)
	switch normalized {
	case preferenceQFFLegacyValue:
		normalized = preferenceQuarterlyQFFValue
	case preferenceUndefinedValue:
		normalized = preferenceAutomaticValue
	}
	return &normalized
}

// ParsePreference отображает нормализованную настройку в вариант.
// Любое незнакомое значение, как и отсутствующее, трактуется как Automatic.
func ParsePreference(preference *string) SavePreference {
	if preference == nil {
		return PreferenceAutomatic
	}
	switch strings.ToLower(*preference) {
	case strings.ToLower(preferenceChristmasValue):
		return PreferenceChristmas
	case strings.ToLower(preferenceQuarterlyQFFValue):
		return PreferenceQuarterlyQFF
	default:
		return PreferenceAutomatic
	}
}

// RedeemMessage - полное отображение вариант × достигнут-порог в текст
// сообщения. Сумма выводится как есть, без приведения к двум знакам.
func RedeemMessage(preference SavePreference, redeemableDollars float64) string {
	saved := redeemableDollars >= RedeemThreshold
	amount := strconv.FormatFloat(redeemableDollars, 'f', -1, 64)

	switch preference {
	case PreferenceChristmas:
		if saved {
			return "You've saved $" + amount + " for christmas"
		}
		return "Saving for Christmas"
	case PreferenceQuarterlyQFF:
		if saved {
			return "You've saved $" + amount + " on Qantas"
		}
		return "Saving for Qantas"
	default:
		if saved {
			return "$" + amount + " to spend"
		}
		return "Save $10 every 2000 points"
	}
}

// ResolveLoyalty возвращает свежую копию блока лояльности с нормализованной
// настройкой и подобранным сообщением. Исходный блок не изменяется.
func ResolveLoyalty(loyalty *models.Loyalty, redeemableDollars *float64) *models.Loyalty {
	if loyalty == nil {
		return nil
	}

	resolved := *loyalty
	resolved.SaveForLaterPreference = NormalizePreference(loyalty.SaveForLaterPreference)

	dollars := 0.0
	if redeemableDollars != nil {
		dollars = *redeemableDollars
	}
	resolved.WowRewardsRedeemMessage = RedeemMessage(ParsePreference(resolved.SaveForLaterPreference), dollars)

	return &resolved
}
