package models

// Payment method labels. Any non-empty label is accepted; these are the ones the
// cashier screens offer.
const (
	PaymentCash       = "dinheiro"
	PaymentCard       = "cartao"
	PaymentCredit     = "cartao_credito"
	PaymentDebit      = "cartao_debito"
	PaymentPix        = "pix"
	PaymentUnassigned = "outros"
)

// DefaultPaymentMethod is used when a close or an expense carries no method.
const DefaultPaymentMethod = PaymentCash

// KnownPaymentMethods lists the labels offered to staff.
var KnownPaymentMethods = []string{PaymentCash, PaymentCard, PaymentCredit, PaymentDebit, PaymentPix}

// PaymentMethodOrDefault returns m, or the default method when m is blank.
func PaymentMethodOrDefault(m string) string {
	if m == "" {
		return DefaultPaymentMethod
	}
	return m
}
