package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleBuckets(t *testing.T) {
	assert.Equal(t, BucketKitchen, RoleChef.Bucket())
	assert.Equal(t, BucketHall, RoleHall.Bucket())
	assert.Equal(t, BucketManagement, RoleManager.Bucket())
	assert.Equal(t, BucketCashier, RoleStaff.Bucket())
	assert.Equal(t, BucketCashier, Role("intern").Bucket(), "unknown roles count as cashier")
}

func TestRolePositionLabels(t *testing.T) {
	assert.Equal(t, "キッチン", RoleChef.PositionLabel())
	assert.Equal(t, "ホール", RoleHall.PositionLabel())
	assert.Equal(t, "管理", RoleManager.PositionLabel())
	assert.Equal(t, "その他", RoleStaff.PositionLabel())
}
