package models

import "time"

// ApplicationStatus is the closed set of application states.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// Decision reports whether the status is one faculty may set via an
// update (Pending is entry-only).
func (s ApplicationStatus) Decision() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ApplicationDB represents one student application against a listing.
// At most one record exists per (student, listing) pair.
type ApplicationDB struct {
	ID        int64             `json:"id" db:"id"`                 // Primary key, monotonic
	ListingID int64             `json:"internshipId" db:"listing_id"` // Target listing
	StudentID int64             `json:"studentId" db:"student_id"`  // Applicant account
	ResumeURL string            `json:"resumeUrl" db:"resume_url"`  // Path of the stored resume
	Status    ApplicationStatus `json:"status" db:"status"`         // Pending until faculty decides
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at"`  // Submission timestamp
	UpdatedAt *time.Time        `json:"updatedAt,omitempty" db:"updated_at"` // Set on status change
}

// ApplicationSummary is the faculty-facing view of an application,
// enriched with the applicant's identity.
type ApplicationSummary struct {
	ApplicationID int64             `json:"applicationId"`
	StudentName   string            `json:"studentName"`
	Email         string            `json:"email"`
	ResumeURL     string            `json:"resumeUrl"`
	Status        ApplicationStatus `json:"status"`
}
