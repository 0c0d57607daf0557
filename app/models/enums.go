package models

// PaymentStatus defines the status of a payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentStatuses lists every status in the order forms present them.
var PaymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed}
