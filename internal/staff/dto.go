package staff

// SaveRequest carries a staff member's editable fields. The same shape
// serves create and update.
type SaveRequest struct {
	Name     string   `json:"name" validate:"required,max=120"`
	Position string   `json:"position" validate:"max=120"`
	Role     string   `json:"role" validate:"required,oneof=manager chef hall staff"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Phone    string   `json:"phone" validate:"max=32"`
	JoinDate string   `json:"join_date" validate:"required,datetime=2006-01-02"`
	Status   string   `json:"status" validate:"required,oneof=active inactive"`
	Skills   []string `json:"skills" validate:"dive,max=64"`
}
