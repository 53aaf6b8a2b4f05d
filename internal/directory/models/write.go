package models

// UserWrite is the outbound payload for user create and update calls.
// Unlike the read models, fields here use omitempty: Graph PATCH semantics
// update exactly the properties present in the body.
type UserWrite struct {
	DisplayName       *string          `json:"displayName,omitempty"`
	UserPrincipalName *string          `json:"userPrincipalName,omitempty"`
	MailNickname      *string          `json:"mailNickname,omitempty"`
	GivenName         *string          `json:"givenName,omitempty"`
	Surname           *string          `json:"surname,omitempty"`
	JobTitle          *string          `json:"jobTitle,omitempty"`
	Department        *string          `json:"department,omitempty"`
	OfficeLocation    *string          `json:"officeLocation,omitempty"`
	BusinessPhones    []string         `json:"businessPhones,omitempty"`
	MobilePhone       *string          `json:"mobilePhone,omitempty"`
	Mail              *string          `json:"mail,omitempty"`
	AccountEnabled    *bool            `json:"accountEnabled,omitempty"`
	UsageLocation     *string          `json:"usageLocation,omitempty"`
	CompanyName       *string          `json:"companyName,omitempty"`
	PreferredLanguage *string          `json:"preferredLanguage,omitempty"`
	PasswordProfile   *PasswordProfile `json:"passwordProfile,omitempty"`
}

type PasswordProfile struct {
	Password                      string `json:"password"`
	ForceChangePasswordNextSignIn bool   `json:"forceChangePasswordNextSignIn"`
}
