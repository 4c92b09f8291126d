package training

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Record tracks one staff member's progress on one skill. Progress is
// a 0-100 integer; CertificationDate is set once the skill is
// certified.
type Record struct {
	ID                uuid.UUID  `json:"id"`
	StaffID           uuid.UUID  `json:"staff_id"`
	SkillName         string     `json:"skill_name"`
	Progress          int        `json:"progress"`
	Certified         bool       `json:"certified"`
	CertificationDate *time.Time `json:"certification_date,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// SkillStatus classifies a single training record.
type SkillStatus string

const (
	StatusCertified  SkillStatus = "certified"
	StatusInProgress SkillStatus = "in_progress"
	StatusNotStarted SkillStatus = "not_started"
)

// Status derives the skill's display status from the record.
func (r Record) Status() SkillStatus {
	switch {
	case r.Certified:
		return StatusCertified
	case r.Progress > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}

// OverallProgress is the rounded mean of the records' progress values,
// zero when there are none.
func OverallProgress(records []Record) int {
	if len(records) == 0 {
		return 0
	}
	var sum int
	for _, rec := range records {
		sum += rec.Progress
	}
	return int(math.Round(float64(sum) / float64(len(records))))
}
