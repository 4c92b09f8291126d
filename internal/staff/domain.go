package staff

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies a member's job within the store.
type Role string

const (
	RoleManager Role = "manager"
	RoleChef    Role = "chef"
	RoleHall    Role = "hall"
	RoleStaff   Role = "staff"
)

// Status marks whether the member currently works at the store.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Member is one staff record. Skills is an ordered list of free-text
// tags; deletion cascades to the member's training rows in the schema.
type Member struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Role      Role      `json:"role"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	JoinDate  time.Time `json:"join_date"`
	Status    Status    `json:"status"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DistributionBucket is the dashboard grouping for a role.
type DistributionBucket string

const (
	BucketKitchen    DistributionBucket = "kitchen"
	BucketHall       DistributionBucket = "hall"
	BucketManagement DistributionBucket = "management"
	BucketCashier    DistributionBucket = "cashier"
)

// Bucket maps a role to its dashboard distribution bucket. Anything
// outside the named roles counts as cashier.
func (r Role) Bucket() DistributionBucket {
	switch r {
	case RoleChef:
		return BucketKitchen
	case RoleHall:
		return BucketHall
	case RoleManager:
		return BucketManagement
	default:
		return BucketCashier
	}
}

// PositionLabel is the human label shown next to a member on the
// dashboard training summary.
func (r Role) PositionLabel() string {
	switch r {
	case RoleChef:
		return "キッチン"
	case RoleHall:
		return "ホール"
	case RoleManager:
		return "管理"
	default:
		return "その他"
	}
}
