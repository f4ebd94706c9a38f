package model

// Role is the actor kind the backend authorizes against.
type Role string

const (
	// RoleCustomer is a storefront customer.
	RoleCustomer Role = "USER"
	// RoleStoreOperator is a partner store operator.
	RoleStoreOperator Role = "STORE"
	// RolePlatformAdmin is a platform back-office administrator.
	RolePlatformAdmin Role = "PLATFORM_ADMIN"
)

// User is the authenticated identity record returned by the backend.
type User struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Avatar      string `json:"avatar,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

// AuthResult is a resolved {user, token} pair handed over by login and registration flows.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
