package api

import (
	"context"
	"net/http"
	"net/url"

	"mergington-admin/app/models"
)

// ListActivities returns every extracurricular activity keyed by name.
func (c *Client) ListActivities(ctx context.Context) (map[string]models.Activity, error) {
	activities := make(map[string]models.Activity)
	if err := c.do(ctx, http.MethodGet, "/activities", nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// SignUpForActivity signs a student up for an activity. The backend takes
// the email as a query parameter.
func (c *Client) SignUpForActivity(ctx context.Context, activityName, email string) (string, error) {
	path := "/activities/" + url.PathEscape(activityName) + "/signup?email=" + url.QueryEscape(email)
	return c.write(ctx, http.MethodPost, path, nil)
}

func (c *Client) UnregisterFromActivity(ctx context.Context, activityName, email string) (string, error) {
	path := "/activities/" + url.PathEscape(activityName) + "/unregister?email=" + url.QueryEscape(email)
	return c.write(ctx, http.MethodDelete, path, nil)
}
