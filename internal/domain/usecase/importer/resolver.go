package importer

import (
	"strings"

	"github.com/jdvillegas/billing-processor/internal/domain/entity"
	"github.com/jdvillegas/billing-processor/internal/domain/port/usecase"
)

// Ordered alias tables per logical field. Earlier aliases win. The tables
// cover the English headers, the Spanish headers of the upstream billing
// exports, and the mojibake variants produced when those exports are saved
// as Latin-1 and re-read as UTF-8.
var (
	identificationAliases = []string{
		"identification_number",
		"identificacion",
		"identificación",
		"identificaciÃ³n",
		"cedula",
		"cédula",
		"documento",
	}
	nameAliases = []string{
		"name",
		"nombre",
		"customer_name",
		"cliente",
	}
	addressAliases = []string{
		"address",
		"direccion",
		"dirección",
		"direcciÃ³n",
	}
	phoneAliases = []string{
		"phone",
		"telefono",
		"teléfono",
		"telÃ©fono",
		"celular",
	}
	emailAliases = []string{
		"email",
		"correo",
		"correo_electronico",
		"e-mail",
	}
	invoiceNumberAliases = []string{
		"invoice_number",
		"numero_factura",
		"número_factura",
		"nÃºmero_factura",
		"factura",
	}
	billingPeriodAliases = []string{
		"billing_period",
		"periodo_facturacion",
		"período_facturación",
		"perÃ­odo_facturaciÃ³n",
		"periodo",
	}
	invoicedAmountAliases = []string{
		"invoiced_amount",
		"monto_facturado",
		"valor_facturado",
	}
	paidAmountAliases = []string{
		"paid_amount",
		"monto_pagado",
		"valor_pagado",
	}
	transactionIDAliases = []string{
		"transaction_id",
		"id_transaccion",
		"id_transacción",
		"id_transacciÃ³n",
	}
	timestampAliases = []string{
		"timestamp",
		"fecha",
		"fecha_transaccion",
		"date",
	}
	amountAliases = []string{
		"amount",
		"monto",
		"valor",
	}
	statusAliases = []string{
		"status",
		"estado",
	}
	typeAliases = []string{
		"type",
		"tipo",
	}
	platformAliases = []string{
		"platform",
		"plataforma",
		"payment_platform",
		"plataforma_pago",
	}
)

// resolveField returns the first present non-empty alias value, trimmed
func resolveField(row usecase.Row, aliases []string) string {
	for _, alias := range aliases {
		if value, ok := row[alias]; ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// ResolveCustomer extracts the customer fields of one raw row
func ResolveCustomer(row usecase.Row) entity.CustomerFragment {
	return entity.CustomerFragment{
		IdentificationNumber: resolveField(row, identificationAliases),
		Name:                 resolveField(row, nameAliases),
		Address:              resolveField(row, addressAliases),
		Phone:                resolveField(row, phoneAliases),
		Email:                resolveField(row, emailAliases),
	}
}

// ResolveInvoice extracts the invoice fields of one raw row
func ResolveInvoice(row usecase.Row) entity.InvoiceFragment {
	return entity.InvoiceFragment{
		InvoiceNumber:  resolveField(row, invoiceNumberAliases),
		BillingPeriod:  resolveField(row, billingPeriodAliases),
		InvoicedAmount: resolveField(row, invoicedAmountAliases),
		PaidAmount:     resolveField(row, paidAmountAliases),
	}
}

// ResolveTransaction extracts the transaction fields of one raw row
func ResolveTransaction(row usecase.Row) entity.TransactionFragment {
	return entity.TransactionFragment{
		TransactionID: resolveField(row, transactionIDAliases),
		Timestamp:     resolveField(row, timestampAliases),
		Amount:        resolveField(row, amountAliases),
		Status:        resolveField(row, statusAliases),
		Type:          resolveField(row, typeAliases),
		Platform:      resolveField(row, platformAliases),
	}
}
