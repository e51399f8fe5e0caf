package domain

import "time"

// Role is the staff privilege level. New registrations default to RoleUser
// unless they are the very first account, which is elevated to RoleSuperAdmin.
type Role string

const (
	RoleUser              Role = "user"
	RoleDeliveryMan       Role = "delivery-man"
	RoleWarehouseManager  Role = "warehouse-manager"
	RoleCheckpointManager Role = "checkpoint-manager"
	RoleAdmin             Role = "admin"
	RoleSuperAdmin        Role = "super-admin"
)

// rolePrivilege defines the total ordering used for privilege checks.
var rolePrivilege = map[Role]int{
	RoleUser:              1,
	RoleDeliveryMan:       2,
	RoleWarehouseManager:  3,
	RoleCheckpointManager: 4,
	RoleAdmin:             5,
	RoleSuperAdmin:        6,
}

// Valid reports whether r is one of the known staff roles.
func (r Role) Valid() bool {
	_, ok := rolePrivilege[r]
	return ok
}

// Privilege returns the numeric rank of r; unknown roles rank lowest.
func (r Role) Privilege() int {
	return rolePrivilege[r]
}

// IsAdmin reports whether r clears the admin gate (admin or super-admin).
func (r Role) IsAdmin() bool {
	return r.Privilege() >= rolePrivilege[RoleAdmin]
}

// StaffUser models a registered staff account (admins, warehouse and
// checkpoint managers). External clients are modelled separately.
type StaffUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
