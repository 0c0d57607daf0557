package api

import (
	"context"
	"net/http"
	"net/url"

	"mergington-admin/app/models"
)

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.do(ctx, http.MethodGet, "/admin/payments", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, payment models.Payment) (string, error) {
	return c.write(ctx, http.MethodPost, "/admin/payments", payment)
}

// StudentPayments returns the payment records of a single student.
func (c *Client) StudentPayments(ctx context.Context, studentEmail string) ([]models.Payment, error) {
	var payments []models.Payment
	path := "/admin/payments/" + url.PathEscape(studentEmail)
	if err := c.do(ctx, http.MethodGet, path, nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
