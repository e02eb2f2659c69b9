package models

import (
	"encoding/json"
	"time"
)

// SkillList unmarshals either a JSON array of strings or a single
// string, normalizing the latter to a one-element list.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = SkillList{single}
	return nil
}

// ListingDB represents an internship posting.
// Listings are created by faculty accounts and never updated or deleted.
type ListingDB struct {
	ID             int64     `json:"id" db:"id"`                                  // Primary key, monotonic
	Title          string    `json:"title" db:"title"`                            // Position title
	Description    string    `json:"description" db:"description"`                // Full description
	SkillsRequired SkillList `json:"skillsRequired" db:"-"`                       // Ordered skill names
	Stipend        string    `json:"stipend" db:"stipend"`                        // Free-form stipend text
	Deadline       string    `json:"applicationDeadline" db:"application_deadline"` // Opaque date string, not clock-checked
	Location       string    `json:"location" db:"location"`                      // Work location
	CompanyName    string    `json:"companyName" db:"company_name"`               // Hosting company
	Duration       string    `json:"duration" db:"duration"`                      // Free-form duration text
	FacultyID      int64     `json:"facultyId" db:"faculty_id"`                   // Owning faculty account
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`                   // Creation timestamp
}
