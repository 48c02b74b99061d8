package report

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

const defaultOutput = "okta_user_source_report.xlsx"

// Config carries the identifiers the job needs plus the output path.
// AppId is preferred when known; AppLabel drives a search otherwise.
type Config struct {
	Domain   string
	Token    string
	AppId    string
	AppLabel string
	Output   string
}

// LoadConfig reads a .env file when one exists, letting real environment
// variables win, and validates the result before any network call.
func LoadConfig() (*Config, error) {
	var v = viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	v.AutomaticEnv()

	var cfg = &Config{
		Domain:   v.GetString("OKTA_DOMAIN"),
		Token:    v.GetString("OKTA_API_TOKEN"),
		AppId:    v.GetString("BOB_APP_ID"),
		AppLabel: v.GetString("BOB_APP_LABEL"),
		Output:   v.GetString("REPORT_OUTPUT"),
	}
	return cfg, cfg.normalize()
}

// normalize applies the domain normalization and defaulting shared by all
// config sources.
func (c *Config) normalize() error {
	c.Domain = strings.TrimRight(strings.TrimSpace(c.Domain), "/")
	if c.Domain == "" || c.Token == "" {
		return &ConfigError{Reason: "missing OKTA_DOMAIN or OKTA_API_TOKEN"}
	}
	if !strings.HasPrefix(c.Domain, "http://") && !strings.HasPrefix(c.Domain, "https://") {
		c.Domain = "https://" + c.Domain
	}
	if c.Output == "" {
		c.Output = defaultOutput
	}
	return nil
}
