package config

import (
	"os"
	"strings"
)

// Server captures process-level configuration. Credentials are carried as-is;
// validation happens in the graph package before a client is constructed.
type Server struct {
	// Addr enables the streamable HTTP transport (plus /metrics and /healthz)
	// when non-empty. Empty means stdio only.
	Addr string

	TenantID            string
	ClientID            string
	ClientSecret        string
	CertificatePath     string
	CertificatePassword string
	Scopes              []string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	var scopes []string
	if raw := os.Getenv("ENTRAID_SCOPES"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scopes = append(scopes, s)
			}
		}
	}

	return Server{
		Addr:                os.Getenv("ENTRAGRAPH_ADDR"),
		TenantID:            os.Getenv("ENTRAID_TENANT_ID"),
		ClientID:            os.Getenv("ENTRAID_CLIENT_ID"),
		ClientSecret:        os.Getenv("ENTRAID_CLIENT_SECRET"),
		CertificatePath:     os.Getenv("ENTRAID_CERTIFICATE_PATH"),
		CertificatePassword: os.Getenv("ENTRAID_CERTIFICATE_PWD"),
		Scopes:              scopes,
	}
}
