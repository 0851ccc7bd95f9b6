package domain

// Role identifies what an authenticated actor may do. Customers only
// create and read their own RMAs; staff roles review and transition.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleCSR        Role = "csr"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsStaff reports whether the role may review and transition RMAs.
func (r Role) IsStaff() bool {
	return r == RoleCSR || r == RoleAdmin || r == RoleSuperAdmin
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	return roleRank(r) >= roleRank(min)
}

func roleRank(r Role) int {
	switch r {
	case RoleCustomer:
		return 0
	case RoleCSR:
		return 1
	case RoleAdmin:
		return 2
	case RoleSuperAdmin:
		return 3
	default:
		return -1
	}
}

// StaffUser is a back-office account (CSR, admin or super admin).
type StaffUser struct {
	ID           int32  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"is_active"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
