package api

import (
	"context"
	"net/http"
	"net/url"

	"mergington-admin/app/models"
)

// ListStudents returns every student keyed by email.
func (c *Client) ListStudents(ctx context.Context) (map[string]models.Student, error) {
	students := make(map[string]models.Student)
	if err := c.do(ctx, http.MethodGet, "/admin/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) CreateStudent(ctx context.Context, student models.Student) (string, error) {
	return c.write(ctx, http.MethodPost, "/admin/students", student)
}

func (c *Client) UpdateStudent(ctx context.Context, email string, student models.Student) (string, error) {
	return c.write(ctx, http.MethodPut, "/admin/students/"+url.PathEscape(email), student)
}

func (c *Client) DeleteStudent(ctx context.Context, email string) (string, error) {
	return c.write(ctx, http.MethodDelete, "/admin/students/"+url.PathEscape(email), nil)
}
