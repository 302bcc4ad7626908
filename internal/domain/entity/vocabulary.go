package entity

import "strings"

// statusVocabulary maps free-text transaction statuses, including the
// Spanish variants produced by the upstream billing exports, to the
// canonical enumeration.
var statusVocabulary = map[string]string{
	"PENDIENTE":  StatusPending,
	"EN PROCESO": StatusPending,
	"PENDING":    StatusPending,
	"COMPLETADA": StatusCompleted,
	"COMPLETADO": StatusCompleted,
	"PAGADA":     StatusCompleted,
	"COMPLETED":  StatusCompleted,
	"FALLIDA":    StatusFailed,
	"RECHAZADA":  StatusFailed,
	"FAILED":     StatusFailed,
}

// typeVocabulary maps free-text transaction types to the canonical
// enumeration.
var typeVocabulary = map[string]string{
	"PAGO DE FACTURA": TypeInvoicePayment,
	"PAGO":            TypeInvoicePayment,
	"INVOICE_PAYMENT": TypeInvoicePayment,
}

// MapStatus maps a free-text status token to its canonical value. Tokens
// without a table entry pass through uppercased; the fallback is deliberate,
// unknown statuses must not abort an import.
func MapStatus(raw string) string {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if mapped, ok := statusVocabulary[token]; ok {
		return mapped
	}
	return token
}

// MapType maps a free-text type token to its canonical value, with the same
// pass-through fallback as MapStatus.
func MapType(raw string) string {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if mapped, ok := typeVocabulary[token]; ok {
		return mapped
	}
	return token
}
