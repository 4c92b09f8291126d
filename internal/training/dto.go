package training

// AddRequest creates a training record for a staff member.
type AddRequest struct {
	StaffID           string  `json:"staff_id" validate:"required,uuid4"`
	SkillName         string  `json:"skill_name" validate:"required,max=120"`
	Progress          int     `json:"progress" validate:"gte=0,lte=100"`
	Certified         bool    `json:"certified"`
	CertificationDate *string `json:"certification_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes             *string `json:"notes,omitempty"`
}

// UpdateRequest edits a training record. The skill name is fixed at
// creation and deliberately absent here.
type UpdateRequest struct {
	Progress          int     `json:"progress" validate:"gte=0,lte=100"`
	Certified         bool    `json:"certified"`
	CertificationDate *string `json:"certification_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes             *string `json:"notes,omitempty"`
}

// SkillView is one record with its derived status.
type SkillView struct {
	Record Record      `json:"record"`
	Status SkillStatus `json:"status"`
}

// StaffProgressView is the staff-with-training read path: all of a
// member's records plus the recomputed overall progress.
type StaffProgressView struct {
	StaffID         string      `json:"staff_id"`
	Skills          []SkillView `json:"skills"`
	OverallProgress int         `json:"overall_progress"`
}
