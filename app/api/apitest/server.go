// Package apitest provides an in-memory stand-in for the Mergington school
// API, with the same endpoints, status codes and error details as the real
// backend. Tests seed its maps directly.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"mergington-admin/app/models"
)

type Server struct {
	*httptest.Server

	mu          sync.Mutex
	Students    map[string]models.Student
	Courses     map[string]models.Course
	Enrollments map[string]models.Enrollment
	Attendance  map[string]models.AttendanceRecord
	Payments    map[string]models.Payment
	Activities  map[string]models.Activity
}

func NewServer() *Server {
	s := &Server{
		Students:    make(map[string]models.Student),
		Courses:     make(map[string]models.Course),
		Enrollments: make(map[string]models.Enrollment),
		Attendance:  make(map[string]models.AttendanceRecord),
		Payments:    make(map[string]models.Payment),
		Activities:  make(map[string]models.Activity),
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

func (s *Server) router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /admin/students", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() { writeJSON(w, 200, s.Students) })
	})
	mux.HandleFunc("POST /admin/students", func(w http.ResponseWriter, r *http.Request) {
		var student models.Student
		if !decode(w, r, &student) {
			return
		}
		s.locked(func() {
			if _, ok := s.Students[student.Email]; ok {
				writeDetail(w, 400, "Student already exists")
				return
			}
			s.Students[student.Email] = student
			writeMessage(w, fmt.Sprintf("Student %s created successfully", student.Name))
		})
	})
	mux.HandleFunc("PUT /admin/students/{email}", func(w http.ResponseWriter, r *http.Request) {
		var student models.Student
		if !decode(w, r, &student) {
			return
		}
		s.locked(func() {
			email := r.PathValue("email")
			if _, ok := s.Students[email]; !ok {
				writeDetail(w, 404, "Student not found")
				return
			}
			s.Students[email] = student
			writeMessage(w, fmt.Sprintf("Student %s updated successfully", student.Name))
		})
	})
	mux.HandleFunc("DELETE /admin/students/{email}", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			email := r.PathValue("email")
			if _, ok := s.Students[email]; !ok {
				writeDetail(w, 404, "Student not found")
				return
			}
			delete(s.Students, email)
			writeMessage(w, fmt.Sprintf("Student %s deleted successfully", email))
		})
	})

	mux.HandleFunc("GET /admin/courses", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() { writeJSON(w, 200, s.Courses) })
	})
	mux.HandleFunc("POST /admin/courses", func(w http.ResponseWriter, r *http.Request) {
		var course models.Course
		if !decode(w, r, &course) {
			return
		}
		s.locked(func() {
			if _, ok := s.Courses[course.Name]; ok {
				writeDetail(w, 400, "Course already exists")
				return
			}
			s.Courses[course.Name] = course
			writeMessage(w, fmt.Sprintf("Course %s created successfully", course.Name))
		})
	})
	mux.HandleFunc("PUT /admin/courses/{name}", func(w http.ResponseWriter, r *http.Request) {
		var course models.Course
		if !decode(w, r, &course) {
			return
		}
		s.locked(func() {
			name := r.PathValue("name")
			if _, ok := s.Courses[name]; !ok {
				writeDetail(w, 404, "Course not found")
				return
			}
			// like the real backend, the map key keeps the pre-rename name
			s.Courses[name] = course
			writeMessage(w, fmt.Sprintf("Course %s updated successfully", course.Name))
		})
	})
	mux.HandleFunc("DELETE /admin/courses/{name}", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			name := r.PathValue("name")
			if _, ok := s.Courses[name]; !ok {
				writeDetail(w, 404, "Course not found")
				return
			}
			delete(s.Courses, name)
			writeMessage(w, fmt.Sprintf("Course %s deleted successfully", name))
		})
	})

	mux.HandleFunc("GET /admin/enrollments", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() { writeJSON(w, 200, values(s.Enrollments)) })
	})
	mux.HandleFunc("POST /admin/enrollments", func(w http.ResponseWriter, r *http.Request) {
		var enrollment models.Enrollment
		if !decode(w, r, &enrollment) {
			return
		}
		s.locked(func() {
			key := enrollment.StudentEmail + "_" + enrollment.CourseName
			if _, ok := s.Enrollments[key]; ok {
				writeDetail(w, 400, "Student already enrolled in this course")
				return
			}
			s.Enrollments[key] = enrollment
			writeMessage(w, fmt.Sprintf("Student %s enrolled in %s", enrollment.StudentEmail, enrollment.CourseName))
		})
	})
	mux.HandleFunc("DELETE /admin/enrollments/{email}/{course}", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			email, course := r.PathValue("email"), r.PathValue("course")
			key := email + "_" + course
			if _, ok := s.Enrollments[key]; !ok {
				writeDetail(w, 404, "Enrollment not found")
				return
			}
			delete(s.Enrollments, key)
			writeMessage(w, fmt.Sprintf("Student %s unenrolled from %s", email, course))
		})
	})

	mux.HandleFunc("GET /admin/attendance", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() { writeJSON(w, 200, values(s.Attendance)) })
	})
	mux.HandleFunc("POST /admin/attendance", func(w http.ResponseWriter, r *http.Request) {
		var record models.AttendanceRecord
		if !decode(w, r, &record) {
			return
		}
		s.locked(func() {
			key := record.StudentEmail + "_" + record.CourseName + "_" + record.Date
			s.Attendance[key] = record
			writeMessage(w, fmt.Sprintf("Attendance recorded for %s", record.StudentEmail))
		})
	})
	mux.HandleFunc("GET /admin/attendance/{email}", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			var records []models.AttendanceRecord
			for _, record := range s.Attendance {
				if record.StudentEmail == r.PathValue("email") {
					records = append(records, record)
				}
			}
			writeJSON(w, 200, records)
		})
	})

	mux.HandleFunc("GET /admin/payments", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() { writeJSON(w, 200, values(s.Payments)) })
	})
	mux.HandleFunc("POST /admin/payments", func(w http.ResponseWriter, r *http.Request) {
		var payment models.Payment
		if !decode(w, r, &payment) {
			return
		}
		s.locked(func() {
			key := payment.StudentEmail + "_" + payment.CourseName + "_" + payment.PaymentDate
			s.Payments[key] = payment
			writeMessage(w, fmt.Sprintf("Payment of $%v recorded for %s", payment.Amount, payment.StudentEmail))
		})
	})
	mux.HandleFunc("GET /admin/payments/{email}", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			var payments []models.Payment
			for _, payment := range s.Payments {
				if payment.StudentEmail == r.PathValue("email") {
					payments = append(payments, payment)
				}
			}
			writeJSON(w, 200, payments)
		})
	})

	mux.HandleFunc("GET /activities", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() { writeJSON(w, 200, s.Activities) })
	})
	mux.HandleFunc("POST /activities/{name}/signup", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			name, email := r.PathValue("name"), r.URL.Query().Get("email")
			activity, ok := s.Activities[name]
			if !ok {
				writeDetail(w, 404, "Activity not found")
				return
			}
			for _, participant := range activity.Participants {
				if participant == email {
					writeDetail(w, 400, "Student is already signed up")
					return
				}
			}
			activity.Participants = append(activity.Participants, email)
			s.Activities[name] = activity
			writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
		})
	})
	mux.HandleFunc("DELETE /activities/{name}/unregister", func(w http.ResponseWriter, r *http.Request) {
		s.locked(func() {
			name, email := r.PathValue("name"), r.URL.Query().Get("email")
			activity, ok := s.Activities[name]
			if !ok {
				writeDetail(w, 404, "Activity not found")
				return
			}
			for i, participant := range activity.Participants {
				if participant == email {
					activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
					s.Activities[name] = activity
					writeMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
					return
				}
			}
			writeDetail(w, 400, "Student is not signed up for this activity")
		})
	})

	return mux
}

func (s *Server) locked(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func decode(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeDetail(w, 422, "Invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, 200, map[string]string{"message": message})
}
