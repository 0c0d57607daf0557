package api

import (
	"context"
	"net/http"
	"net/url"

	"mergington-admin/app/models"
)

func (c *Client) ListAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/admin/attendance", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) RecordAttendance(ctx context.Context, record models.AttendanceRecord) (string, error) {
	return c.write(ctx, http.MethodPost, "/admin/attendance", record)
}

// StudentAttendance returns the attendance records of a single student.
func (c *Client) StudentAttendance(ctx context.Context, studentEmail string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	path := "/admin/attendance/" + url.PathEscape(studentEmail)
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
