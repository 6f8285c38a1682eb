package models

// Membership roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity is the minimal signed-in member record held by the session.
type Identity struct {
	ID          string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// User is the extended per-member profile stored in the "users" collection,
// keyed by the identity id.
type User struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	MembershipStatus string `json:"membership_status"`
	MembershipPlan   string `json:"membership_plan"`
	MembershipExpiry string `json:"membership_expiry,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
}
