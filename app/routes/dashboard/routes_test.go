package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-admin/app/api"
	"mergington-admin/app/api/apitest"
	"mergington-admin/app/models"
)

func TestFetchCountsFanOut(t *testing.T) {
	backend := apitest.NewServer()
	t.Cleanup(backend.Close)

	backend.Students["ada@x.com"] = models.Student{Name: "Ada", Email: "ada@x.com", Grade: "9"}
	backend.Students["bob@x.com"] = models.Student{Name: "Bob", Email: "bob@x.com", Grade: "11"}
	backend.Courses["Algebra"] = models.Course{Name: "Algebra", Description: "Math", Schedule: "Mon", MaxParticipants: 20}
	backend.Enrollments["ada@x.com_Algebra"] = models.Enrollment{StudentEmail: "ada@x.com", CourseName: "Algebra", EnrollmentDate: "2026-01-10"}
	backend.Payments["p"] = models.Payment{StudentEmail: "ada@x.com", Amount: 50, CourseName: "Algebra", PaymentDate: "2026-03-01", Status: models.PaymentPaid}
	backend.Activities["Chess Club"] = models.Activity{Description: "Strategy", Schedule: "Fridays", MaxParticipants: 12}

	client := api.New(backend.URL, 5*time.Second)
	counts, err := FetchCounts(context.Background(), client)
	require.NoError(t, err)

	assert.Equal(t, 2, counts.Students)
	assert.Equal(t, 1, counts.Courses)
	assert.Equal(t, 1, counts.Enrollments)
	assert.Equal(t, 0, counts.Attendance)
	assert.Equal(t, 1, counts.Payments)
	assert.Equal(t, 1, counts.Activities)
}

func TestFetchCountsPropagatesFailure(t *testing.T) {
	backend := apitest.NewServer()
	backend.Close()

	client := api.New(backend.URL, time.Second)
	_, err := FetchCounts(context.Background(), client)
	require.Error(t, err)

	_, ok := err.(*api.NetworkError)
	assert.True(t, ok, "expected *api.NetworkError, got %T", err)
}
