package store

import "time"

// TrainingRecord is one course assignment row exactly as the records
// store returns it. Pointer fields are nullable columns.
type TrainingRecord struct {
	ID            string
	UserID        string
	UserName      string
	Department    string
	CourseID      string
	CourseName    string
	Category      string
	Status        string
	Progress      *float64
	Score         *float64
	AssignedAt    time.Time
	StartedAt     *time.Time
	CompletedAt   *time.Time
	DueDate       *time.Time
	CertificateID string
	TimeSpentMin  *float64
}
