package models

import "io"

// ApplicationCollection holds membership applications submitted from the public form.
const ApplicationCollection = "application"

// Application status values used by convention. Status is free-form and not checked.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application represents a student's membership application.
type Application struct {
	FullName   string   `bson:"full_name" json:"full_name" required:"true"`
	Email      string   `bson:"email" json:"email" required:"true" validate:"email"`
	StudentID  string   `bson:"student_id" json:"student_id" required:"true"`
	Department string   `bson:"department" json:"department" required:"true"`
	Interests  []string `bson:"interests" json:"interests"`
	Motivation *string  `bson:"motivation" json:"motivation"`
	Status     string   `bson:"status" json:"status"`
}

// NewApplication returns an Application carrying the defaults for absent fields.
func NewApplication() *Application {
	return &Application{
		Interests: []string{},
		Status:    StatusPending,
	}
}

// DecodeApplication reads and validates an Application from a JSON body.
func DecodeApplication(r io.Reader) (*Application, error) {
	app := NewApplication()
	if err := decodeInto(r, app); err != nil {
		return nil, err
	}
	return app, nil
}
