// Package models holds typed views of Microsoft Graph directory resources.
//
// Optional upstream fields are pointer-typed and serialized without
// omitempty, so every record in a view carries the same field set with
// explicit nulls for values the upstream did not populate.
package models

// ObjectKind is the tagged variant behind Graph's @odata.type discriminator
// on heterogeneous directory object collections.
type ObjectKind int

const (
	KindOther ObjectKind = iota
	KindUser
	KindGroup
	KindDirectoryRole
	KindServicePrincipal
)

// Graph @odata.type discriminator values.
const (
	ODataTypeUser             = "#microsoft.graph.user"
	ODataTypeGroup            = "#microsoft.graph.group"
	ODataTypeDirectoryRole    = "#microsoft.graph.directoryRole"
	ODataTypeServicePrincipal = "#microsoft.graph.servicePrincipal"

	ODataTypePasswordMethod = "#microsoft.graph.passwordAuthenticationMethod"
)

// User is a directory user record.
type User struct {
	ID                string     `json:"id"`
	DisplayName       *string    `json:"displayName"`
	Mail              *string    `json:"mail"`
	UserPrincipalName *string    `json:"userPrincipalName"`
	GivenName         *string    `json:"givenName"`
	Surname           *string    `json:"surname"`
	JobTitle          *string    `json:"jobTitle"`
	Department        *string    `json:"department"`
	OfficeLocation    *string    `json:"officeLocation"`
	BusinessPhones    []string   `json:"businessPhones"`
	MobilePhone       *string    `json:"mobilePhone"`
	AccountEnabled    *bool      `json:"accountEnabled"`
	UsageLocation     *string    `json:"usageLocation"`
	CompanyName       *string    `json:"companyName"`
	PreferredLanguage *string    `json:"preferredLanguage"`
	CreatedDateTime   *Timestamp `json:"createdDateTime"`
}

// Group is a directory group record.
type Group struct {
	ID          string   `json:"id"`
	DisplayName *string  `json:"displayName"`
	Mail        *string  `json:"mail"`
	GroupTypes  []string `json:"groupTypes"`
	Description *string  `json:"description"`
}

// DirectoryRole is an activated directory role.
type DirectoryRole struct {
	ID             string  `json:"id"`
	DisplayName    *string `json:"displayName"`
	Description    *string `json:"description"`
	RoleTemplateID *string `json:"roleTemplateId"`
}

// DirectoryObject is a heterogeneous member/membership record. Its concrete
// kind is carried by the @odata.type discriminator; identity fields beyond
// id are populated only for kinds that have them.
type DirectoryObject struct {
	ODataType         string   `json:"@odata.type"`
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
}

// Kind maps the @odata.type discriminator to a tagged variant so callers
// switch explicitly instead of probing attribute presence.
func (o DirectoryObject) Kind() ObjectKind {
	switch o.ODataType {
	case ODataTypeUser:
		return KindUser
	case ODataTypeGroup:
		return KindGroup
	case ODataTypeDirectoryRole:
		return KindDirectoryRole
	case ODataTypeServicePrincipal:
		return KindServicePrincipal
	default:
		return KindOther
	}
}
