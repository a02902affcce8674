// Package i18n holds the Arabic/French message catalog for validation
// and user-facing failure text. Arabic is the store's primary language.
package i18n

import "fmt"

type Lang string

const (
	Arabic Lang = "ar"
	French Lang = "fr"
)

// Pick normalizes a client-supplied language tag, defaulting to Arabic.
func Pick(s string) Lang {
	if s == string(French) || s == "fr-FR" {
		return French
	}
	return Arabic
}

var messages = map[Lang]map[string]string{
	Arabic: {
		"field_required":     "%s مطلوب",
		"number_below_min":   "%s يجب أن يكون %v على الأقل",
		"number_above_max":   "%s يجب ألا يتجاوز %v",
		"name_required":      "الاسم الكامل مطلوب",
		"phone_required":     "رقم الهاتف مطلوب",
		"phone_invalid":      "رقم الهاتف غير صالح",
		"city_required":      "المدينة مطلوبة",
		"address_required":   "العنوان مطلوب",
		"cart_empty":         "سلة التسوق فارغة",
		"submit_in_progress": "يتم إرسال طلبك، يرجى الانتظار",
		"network_error":      "تعذر الاتصال بالخادم، يرجى التحقق من الاتصال والمحاولة مرة أخرى",
		"order_failed":       "تعذر إرسال الطلب، يرجى المحاولة مرة أخرى",
	},
	French: {
		"field_required":     "%s est requis",
		"number_below_min":   "%s doit être au moins %v",
		"number_above_max":   "%s ne doit pas dépasser %v",
		"name_required":      "Le nom complet est requis",
		"phone_required":     "Le numéro de téléphone est requis",
		"phone_invalid":      "Numéro de téléphone invalide",
		"city_required":      "La ville est requise",
		"address_required":   "L'adresse est requise",
		"cart_empty":         "Votre panier est vide",
		"submit_in_progress": "Votre commande est en cours d'envoi, veuillez patienter",
		"network_error":      "Connexion au serveur impossible, vérifiez votre connexion et réessayez",
		"order_failed":       "La commande n'a pas pu être envoyée, veuillez réessayer",
	},
}

// T formats the message for key in lang. Unknown keys come back as the
// key itself so a missing translation shows up instead of hiding.
func T(lang Lang, key string, args ...any) string {
	m, ok := messages[lang]
	if !ok {
		m = messages[Arabic]
	}
	tmpl, ok := m[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
