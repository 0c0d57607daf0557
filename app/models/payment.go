package models

import "fmt"

// Payment records a tuition payment by a student for a course.
type Payment struct {
	StudentEmail string        `json:"student_email" validate:"required,email"`
	Amount       float64       `json:"amount" validate:"required,gt=0"`
	CourseName   string        `json:"course_name" validate:"required"`
	PaymentDate  string        `json:"payment_date" validate:"required"`
	Status       PaymentStatus `json:"status" validate:"required,oneof=pending paid failed"`
}

func (p Payment) AmountDisplay() string {
	return fmt.Sprintf("$%.2f", p.Amount)
}
