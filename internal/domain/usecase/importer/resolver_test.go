package importer

import (
	"testing"

	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func TestResolveCustomer(t *testing.T) {
	t.Run("English headers", func(t *testing.T) {
		row := usecase.Row{
			"identification_number": "900123",
			"name":                  "Maria Lopez",
			"address":               "Calle 10 #5-23",
			"phone":                 "3101234567",
			"email":                 "maria@example.com",
		}

		fragment := ResolveCustomer(row)
		assert.Equal(t, "900123", fragment.IdentificationNumber)
		assert.Equal(t, "Maria Lopez", fragment.Name)
		assert.Equal(t, "Calle 10 #5-23", fragment.Address)
		assert.Equal(t, "3101234567", fragment.Phone)
		assert.Equal(t, "maria@example.com", fragment.Email)
	})

	t.Run("Spanish headers", func(t *testing.T) {
		row := usecase.Row{
			"identificacion": "900123",
			"nombre":         "Maria Lopez",
			"direccion":      "Calle 10",
			"telefono":       "3101234567",
			"correo":         "maria@example.com",
		}

		fragment := ResolveCustomer(row)
		assert.Equal(t, "900123", fragment.IdentificationNumber)
		assert.Equal(t, "Maria Lopez", fragment.Name)
		assert.Equal(t, "Calle 10", fragment.Address)
	})

	t.Run("Mojibake headers", func(t *testing.T) {
		row := usecase.Row{
			"identificaciÃ³n": "900123",
			"nombre":          "Maria Lopez",
		}

		fragment := ResolveCustomer(row)
		assert.Equal(t, "900123", fragment.IdentificationNumber)
	})

	t.Run("Earlier alias wins over later", func(t *testing.T) {
		row := usecase.Row{
			"identification_number": "111",
			"cedula":                "222",
		}

		fragment := ResolveCustomer(row)
		assert.Equal(t, "111", fragment.IdentificationNumber)
	})

	t.Run("Empty alias value falls through to next", func(t *testing.T) {
		row := usecase.Row{
			"identification_number": "   ",
			"cedula":                "222",
		}

		fragment := ResolveCustomer(row)
		assert.Equal(t, "222", fragment.IdentificationNumber)
	})

	t.Run("Values are trimmed", func(t *testing.T) {
		row := usecase.Row{"identification_number": "  900123  "}
		fragment := ResolveCustomer(row)
		assert.Equal(t, "900123", fragment.IdentificationNumber)
	})

	t.Run("Missing fields resolve to empty", func(t *testing.T) {
		fragment := ResolveCustomer(usecase.Row{})
		assert.Empty(t, fragment.IdentificationNumber)
		assert.Empty(t, fragment.Name)
	})
}

func TestResolveInvoice(t *testing.T) {
	row := usecase.Row{
		"nÃºmero_factura":  "FAC-001",
		"billing_period":   "2024-05",
		"monto_facturado":  "1500.00",
		"paid_amount":      "750.50",
	}

	fragment := ResolveInvoice(row)
	assert.Equal(t, "FAC-001", fragment.InvoiceNumber)
	assert.Equal(t, "2024-05", fragment.BillingPeriod)
	assert.Equal(t, "1500.00", fragment.InvoicedAmount)
	assert.Equal(t, "750.50", fragment.PaidAmount)
}

func TestResolveTransaction(t *testing.T) {
	row := usecase.Row{
		"id_transaccion": "TXN-9",
		"fecha":          "2024-05-03T10:00:00Z",
		"monto":          "750.50",
		"estado":         "COMPLETADA",
		"tipo":           "PAGO DE FACTURA",
		"plataforma":     "nequi",
	}

	fragment := ResolveTransaction(row)
	assert.Equal(t, "TXN-9", fragment.TransactionID)
	assert.Equal(t, "2024-05-03T10:00:00Z", fragment.Timestamp)
	assert.Equal(t, "750.50", fragment.Amount)
	assert.Equal(t, "COMPLETADA", fragment.Status)
	assert.Equal(t, "PAGO DE FACTURA", fragment.Type)
	assert.Equal(t, "nequi", fragment.Platform)
}
