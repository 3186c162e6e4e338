package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ClientConfig holds the WordPress connection settings for cart mirroring
// and pre-order countdowns. All of it is optional: an empty SiteURL runs
// the showroom fully offline (the decorative cart still works from local
// persistence).
type ClientConfig struct {
	// SiteURL is the WordPress site root, e.g. "https://skyyrose.co".
	SiteURL string `yaml:"siteUrl"`

	// AjaxPath is the admin-ajax endpoint path.
	AjaxPath string `yaml:"ajaxPath"`

	// Nonce is the WordPress AJAX nonce sent with cart mutations.
	Nonce string `yaml:"nonce"`

	// RequestTimeout bounds each fire-and-forget request.
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// LoadClientConfig reads client settings from a YAML file. A missing file
// is not an error; defaults are returned so the showroom runs offline.
func LoadClientConfig(path string) (*ClientConfig, error) {
	cfg := DefaultClientConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read client config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse client config YAML from %s: %w", path, err)
	}

	applyClientDefaults(cfg)

	if err := validateClientConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid client config in %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultClientConfig returns the offline default configuration.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		AjaxPath:       "/wp-admin/admin-ajax.php",
		RequestTimeout: 5 * time.Second,
	}
}

func applyClientDefaults(cfg *ClientConfig) {
	if cfg.AjaxPath == "" {
		cfg.AjaxPath = "/wp-admin/admin-ajax.php"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
}

func validateClientConfig(cfg *ClientConfig) error {
	if cfg.SiteURL == "" {
		return nil // offline mode
	}
	u, err := url.Parse(cfg.SiteURL)
	if err != nil {
		return fmt.Errorf("invalid site URL %q: %w", cfg.SiteURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site URL %q must use http or https", cfg.SiteURL)
	}
	return nil
}

// AjaxURL joins the site root and ajax path, or returns "" in offline mode.
func (c *ClientConfig) AjaxURL() string {
	if c.SiteURL == "" {
		return ""
	}
	return c.SiteURL + c.AjaxPath
}
