package cms

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"care-site-backend/config"
)

// State is either Configured, holding an API handle, or Unconfigured.
// It is immutable and safe to share.
type State struct {
	api API
}

// Configured returns a state backed by api.
func Configured(api API) State {
	return State{api: api}
}

// Unconfigured returns a state with no remote handle; reads are served locally.
func Unconfigured() State {
	return State{}
}

// Client returns the API handle and whether one is configured.
func (s State) Client() (API, bool) {
	return s.api, s.api != nil
}

// IsConfigured reports whether a remote handle is present.
func (s State) IsConfigured() bool {
	return s.api != nil
}

// NewState builds the process-wide CMS state from configuration. With both
// credentials present it returns a Configured state. Otherwise the policy
// decides: PolicyFallback logs a warning and returns Unconfigured,
// PolicyFail returns ErrMissingCredentials. No request is made here.
func NewState(cfg config.CMSConfig) (State, error) {
	if cfg.HasCredentials() {
		return Configured(NewClient(cfg)), nil
	}

	if cfg.Policy == config.PolicyFail {
		return Unconfigured(), fmt.Errorf("%w (set SERVICE_DOMAIN and API_KEY)", ErrMissingCredentials)
	}

	log.Warn().
		Bool("service_domain_set", cfg.ServiceDomain != "").
		Bool("api_key_set", cfg.APIKey != "").
		Msg("cms: SERVICE_DOMAIN / API_KEY not set; serving placeholder data")
	return Unconfigured(), nil
}
