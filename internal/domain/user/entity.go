package user

import "time"

const (
	RoleUser   = "user"
	RoleToko   = "toko"
	RoleVendor = "vendor"
)

// User represents an account of any role in the domain
type User struct {
	ID             string
	Email          string
	PasswordHashed string
	Name           string
	Phone          string
	Address        Address
	Role           string
	ProfileImage   *string
	Description    *string
	OperatingHours *OperatingHours
	ResetNonce     *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Address struct {
	Country string
	City    string
	Detail  string
}

type OperatingHours struct {
	OpenTime  string
	CloseTime string
	StartDay  string
	EndDay    string
}

// IsMerchant reports whether the account is a store or vendor.
func (u *User) IsMerchant() bool {
	return u.Role == RoleToko || u.Role == RoleVendor
}

// IsListingRole reports whether role has a public directory.
func IsListingRole(role string) bool {
	return role == RoleToko || role == RoleVendor
}
