package api

import (
	"context"
	"net/http"
	"net/url"

	"mergington-admin/app/models"
)

// ListCourses returns every course keyed by name.
func (c *Client) ListCourses(ctx context.Context) (map[string]models.Course, error) {
	courses := make(map[string]models.Course)
	if err := c.do(ctx, http.MethodGet, "/admin/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) CreateCourse(ctx context.Context, course models.Course) (string, error) {
	return c.write(ctx, http.MethodPost, "/admin/courses", course)
}

func (c *Client) UpdateCourse(ctx context.Context, name string, course models.Course) (string, error) {
	return c.write(ctx, http.MethodPut, "/admin/courses/"+url.PathEscape(name), course)
}

func (c *Client) DeleteCourse(ctx context.Context, name string) (string, error) {
	return c.write(ctx, http.MethodDelete, "/admin/courses/"+url.PathEscape(name), nil)
}
