package api

import (
	"context"
	"net/http"
	"net/url"

	"mergington-admin/app/models"
)

func (c *Client) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := c.do(ctx, http.MethodGet, "/admin/enrollments", nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (c *Client) CreateEnrollment(ctx context.Context, enrollment models.Enrollment) (string, error) {
	return c.write(ctx, http.MethodPost, "/admin/enrollments", enrollment)
}

// DeleteEnrollment removes the enrollment identified by the composite
// (student email, course name) key.
func (c *Client) DeleteEnrollment(ctx context.Context, studentEmail, courseName string) (string, error) {
	path := "/admin/enrollments/" + url.PathEscape(studentEmail) + "/" + url.PathEscape(courseName)
	return c.write(ctx, http.MethodDelete, path, nil)
}
