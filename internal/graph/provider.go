package graph

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	dErrors "entragraph/pkg/domain-errors"
)

// Provider lazily constructs and memoizes one authenticated Graph client for
// the process lifetime. Construction happens at most once even under
// concurrent first callers; both the handle and any construction failure are
// retained, so a failed provider stays failed without re-validating.
type Provider struct {
	creds  Credentials
	logger *slog.Logger
	build  func(Credentials) (*Client, error)

	once   sync.Once
	client *Client
	err    error
}

type ProviderOption func(*Provider)

func WithProviderLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) { p.logger = l }
}

// WithBuilder overrides client construction. Intended for tests.
func WithBuilder(build func(Credentials) (*Client, error)) ProviderOption {
	return func(p *Provider) { p.build = build }
}

func NewProvider(creds Credentials, clientOpts []ClientOption, opts ...ProviderOption) *Provider {
	p := &Provider{
		creds:  creds,
		logger: slog.Default(),
		build: func(c Credentials) (*Client, error) {
			cred, err := newTokenCredential(c)
			if err != nil {
				return nil, err
			}
			return NewClient(cred, c.Scopes, clientOpts...), nil
		},
	}
	for _, opt := range opts {
		opt(p)
	}

	// Presence-only logging: never the values themselves.
	p.logger.Info("initializing graph credential provider",
		"tenant_id_set", creds.TenantID != "",
		"client_id_set", creds.ClientID != "",
		"client_secret_set", creds.ClientSecret != "",
		"certificate_path_set", creds.CertificatePath != "",
	)
	return p
}

// Client returns the memoized client handle, constructing it on first call.
// Validation failures surface as missing_credentials errors before any
// construction is attempted; construction failures surface as a single
// authentication_failed error. Neither is retried.
func (p *Provider) Client() (*Client, error) {
	p.once.Do(func() {
		if err := p.creds.Validate(); err != nil {
			p.logger.Error("credential validation failed", "error", err)
			p.err = dErrors.Wrap(err, dErrors.CodeMissingCredentials, err.Error())
			return
		}
		client, err := p.build(p.creds)
		if err != nil {
			p.logger.Error("failed to create graph client", "error", err)
			p.err = dErrors.Wrap(err, dErrors.CodeAuthentication,
				fmt.Sprintf("failed to create Graph client: %v", err))
			return
		}
		p.logger.Info("created graph client")
		p.client = client
	})
	return p.client, p.err
}

// newTokenCredential builds an azidentity credential from the credential set.
// A client secret wins when both secret and certificate material are present.
func newTokenCredential(c Credentials) (azcore.TokenCredential, error) {
	if c.ClientSecret != "" {
		return azidentity.NewClientSecretCredential(c.TenantID, c.ClientID, c.ClientSecret, nil)
	}

	data, err := os.ReadFile(c.CertificatePath)
	if err != nil {
		return nil, fmt.Errorf("reading certificate: %w", err)
	}
	var password []byte
	if c.CertificatePassword != "" {
		password = []byte(c.CertificatePassword)
	}
	certs, key, err := azidentity.ParseCertificates(data, password)
	if err != nil {
		return nil, fmt.Errorf("parsing certificate: %w", err)
	}
	return azidentity.NewClientCertificateCredential(c.TenantID, c.ClientID, certs, key, nil)
}
