package models

// PrivilegedUser is the deduplicated rollup record for a user reached
// through one or more privileged directory roles. Roles is the ordered
// materialization of the role-name set; a user granted the same role twice
// appears with that role once.
type PrivilegedUser struct {
	ID                string   `json:"id"`
	DisplayName       *string  `json:"displayName"`
	Mail              *string  `json:"mail"`
	UserPrincipalName *string  `json:"userPrincipalName"`
	GivenName         *string  `json:"givenName"`
	Surname           *string  `json:"surname"`
	JobTitle          *string  `json:"jobTitle"`
	OfficeLocation    *string  `json:"officeLocation"`
	BusinessPhones    []string `json:"businessPhones"`
	MobilePhone       *string  `json:"mobilePhone"`
	Roles             []string `json:"roles"`
}

// MFAStatus summarizes one user's registered authentication methods.
// MFAEnabled is true when any non-password method is registered.
type MFAStatus struct {
	UserID      string                 `json:"userId"`
	MFAEnabled  bool                   `json:"mfaEnabled"`
	MethodCount int                    `json:"methodCount"`
	Methods     []AuthenticationMethod `json:"methods"`
}

// MemberMFAStatus is the per-member record of a group MFA rollup. When the
// member's status fetch failed, MFAEnabled, MethodCount, and Methods are null
// and Error carries the failure message; identity fields are populated either
// way so the rollup stays complete.
type MemberMFAStatus struct {
	UserID            string                 `json:"userId"`
	DisplayName       *string                `json:"displayName"`
	UserPrincipalName *string                `json:"userPrincipalName"`
	Mail              *string                `json:"mail"`
	MFAEnabled        *bool                  `json:"mfaEnabled"`
	MethodCount       *int                   `json:"methodCount"`
	Methods           []AuthenticationMethod `json:"methods"`
	Error             *string                `json:"error"`
}

// User creation outcome markers.
const (
	UserStatusCreated       = "created"
	UserStatusAlreadyExists = "already_exists"
)

// CreatedUser is the result of a create-user call. Status distinguishes a
// fresh creation from an existing principal short-circuit.
type CreatedUser struct {
	ID                string     `json:"id"`
	DisplayName       *string    `json:"displayName"`
	UserPrincipalName *string    `json:"userPrincipalName"`
	Mail              *string    `json:"mail"`
	GivenName         *string    `json:"givenName"`
	Surname           *string    `json:"surname"`
	JobTitle          *string    `json:"jobTitle"`
	Department        *string    `json:"department"`
	OfficeLocation    *string    `json:"officeLocation"`
	AccountEnabled    *bool      `json:"accountEnabled"`
	CreatedDateTime   *Timestamp `json:"createdDateTime"`
	Status            string     `json:"status"`
}

// OperationResult reports a side-effecting operation with no resource body.
type OperationResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
