package domain

import "time"

// JobStatus represents the status of a deferred completion job
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusProcessed JobStatus = "processed"
)

// BookingJob is a durable deferred-completion record created by a store-side
// trigger when a booking is inserted. Each active booking has at most one
// pending job; once processed a job is never reprocessed.
type BookingJob struct {
	ID        string
	BookingID string
	RunAt     time.Time
	Status    JobStatus

	ProcessedAt *time.Time
	CreatedAt   time.Time
}

// IsDue returns true if the job is pending and its run time has passed
func (j *BookingJob) IsDue(now time.Time) bool {
	return j.Status == JobStatusPending && !j.RunAt.After(now)
}
