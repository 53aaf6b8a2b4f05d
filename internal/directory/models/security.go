package models

// AuthenticationMethod is one registered authentication method for a user.
// Method-specific fields (phone number, email address) are populated only on
// the method kinds that carry them.
type AuthenticationMethod struct {
	ID           string  `json:"id"`
	ODataType    string  `json:"@odata.type"`
	PhoneNumber  *string `json:"phoneNumber"`
	PhoneType    *string `json:"phoneType"`
	EmailAddress *string `json:"emailAddress"`
}

// IsPassword reports whether the method is a plain password credential, which
// does not count toward MFA posture.
func (m AuthenticationMethod) IsPassword() bool {
	return m.ODataType == ODataTypePasswordMethod
}

// SignInEvent is one entry from the sign-in audit log.
type SignInEvent struct {
	ID                      string          `json:"id"`
	CreatedDateTime         *Timestamp      `json:"createdDateTime"`
	UserDisplayName         *string         `json:"userDisplayName"`
	UserPrincipalName       *string         `json:"userPrincipalName"`
	UserID                  *string         `json:"userId"`
	AppDisplayName          *string         `json:"appDisplayName"`
	AppID                   *string         `json:"appId"`
	IPAddress               *string         `json:"ipAddress"`
	ClientAppUsed           *string         `json:"clientAppUsed"`
	ConditionalAccessStatus *string         `json:"conditionalAccessStatus"`
	IsInteractive           *bool           `json:"isInteractive"`
	RiskDetail              *string         `json:"riskDetail"`
	RiskLevelAggregated     *string         `json:"riskLevelAggregated"`
	RiskLevelDuringSignIn   *string         `json:"riskLevelDuringSignIn"`
	RiskState               *string         `json:"riskState"`
	DeviceDetail            *DeviceDetail   `json:"deviceDetail"`
	Location                *SignInLocation `json:"location"`
	Status                  *SignInStatus   `json:"status"`
}

type DeviceDetail struct {
	DeviceID        *string `json:"deviceId"`
	DisplayName     *string `json:"displayName"`
	OperatingSystem *string `json:"operatingSystem"`
	Browser         *string `json:"browser"`
	IsCompliant     *bool   `json:"isCompliant"`
	IsManaged       *bool   `json:"isManaged"`
	TrustType       *string `json:"trustType"`
}

type SignInLocation struct {
	City            *string         `json:"city"`
	State           *string         `json:"state"`
	CountryOrRegion *string         `json:"countryOrRegion"`
	GeoCoordinates  *GeoCoordinates `json:"geoCoordinates"`
}

type GeoCoordinates struct {
	Altitude  *float64 `json:"altitude"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type SignInStatus struct {
	ErrorCode         *int    `json:"errorCode"`
	FailureReason     *string `json:"failureReason"`
	AdditionalDetails *string `json:"additionalDetails"`
}
