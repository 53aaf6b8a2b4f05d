package service

// CreateUserInput carries the caller-supplied properties for a new user.
// Validation tags name fields by their JSON form so failure messages match
// the wire shape.
type CreateUserInput struct {
	DisplayName                   string   `json:"displayName" validate:"required,notblank"`
	UserPrincipalName             string   `json:"userPrincipalName" validate:"required,notblank"`
	MailNickname                  string   `json:"mailNickname" validate:"required,notblank"`
	Password                      string   `json:"password" validate:"required"`
	AccountEnabled                *bool    `json:"accountEnabled"`
	ForceChangePasswordNextSignIn *bool    `json:"forceChangePasswordNextSignIn"`
	GivenName                     *string  `json:"givenName"`
	Surname                       *string  `json:"surname"`
	JobTitle                      *string  `json:"jobTitle"`
	Department                    *string  `json:"department"`
	UsageLocation                 *string  `json:"usageLocation"`
	OfficeLocation                *string  `json:"officeLocation"`
	BusinessPhones                []string `json:"businessPhones"`
	MobilePhone                   *string  `json:"mobilePhone"`
}

// UpdateUserInput is a sparse patch: nil fields are left untouched. Manager
// is handled through the manager reference endpoints, not a property patch;
// a non-nil empty Manager removes the current manager.
type UpdateUserInput struct {
	DisplayName       *string  `json:"displayName"`
	GivenName         *string  `json:"givenName"`
	Surname           *string  `json:"surname"`
	JobTitle          *string  `json:"jobTitle"`
	Department        *string  `json:"department"`
	OfficeLocation    *string  `json:"officeLocation"`
	BusinessPhones    []string `json:"businessPhones"`
	MobilePhone       *string  `json:"mobilePhone"`
	Mail              *string  `json:"mail"`
	UserPrincipalName *string  `json:"userPrincipalName"`
	AccountEnabled    *bool    `json:"accountEnabled"`
	UsageLocation     *string  `json:"usageLocation"`
	CompanyName       *string  `json:"companyName"`
	PreferredLanguage *string  `json:"preferredLanguage"`
	Manager           *string  `json:"manager"`
}
