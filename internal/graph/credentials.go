package graph

import (
	"fmt"
	"strings"
)

// DefaultScope is requested when the caller does not configure scopes.
const DefaultScope = "https://graph.microsoft.com/.default"

// Credentials is the minimal set required to construct an authenticated Graph
// client. Either ClientSecret or CertificatePath must be provided alongside
// TenantID and ClientID.
type Credentials struct {
	TenantID            string
	ClientID            string
	ClientSecret        string
	CertificatePath     string
	CertificatePassword string
	Scopes              []string
}

// MissingCredentialError reports every required credential field that is
// absent, not just the first one found, so callers see the complete
// deficiency in a single report.
type MissingCredentialError struct {
	Fields []string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing required credentials: %s", strings.Join(e.Fields, ", "))
}

// Validate checks that tenant, client id, and one secret-or-certificate
// material are present. Secret values themselves are never included in the
// returned error.
func (c Credentials) Validate() error {
	var missing []string
	if strings.TrimSpace(c.TenantID) == "" {
		missing = append(missing, "tenant_id")
	}
	if strings.TrimSpace(c.ClientID) == "" {
		missing = append(missing, "client_id")
	}
	if strings.TrimSpace(c.ClientSecret) == "" && strings.TrimSpace(c.CertificatePath) == "" {
		missing = append(missing, "client_secret")
	}
	if len(missing) > 0 {
		return &MissingCredentialError{Fields: missing}
	}
	return nil
}
