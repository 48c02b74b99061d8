package report

import (
	"errors"
	"fmt"
	"os"

	ksm "github.com/keeper-security/secrets-manager-go/core"
)

const (
	// KsmConfigEnv selects Keeper Secrets Manager as the credential source
	// when set; used by the cloud-function deployments where no .env exists.
	KsmConfigEnv = "KSM_CONFIG_BASE64"
	ksmRecordEnv = "KSM_RECORD_UID"
)

// LoadConfigFromKSM builds the job configuration from a Keeper Secrets
// Manager login record: the Okta org url and API token come from the
// record's url and password fields, the bob app identity from the
// "Bob App ID" / "Bob App Label" custom fields.
func LoadConfigFromKSM() (*Config, error) {
	var configBase64 = os.Getenv(KsmConfigEnv)
	if configBase64 == "" {
		return nil, &ConfigError{Reason: fmt.Sprintf("environment variable %q is not set", KsmConfigEnv)}
	}

	var storage = ksm.NewMemoryKeyValueStorage(configBase64)
	var sm = ksm.NewSecretsManager(&ksm.ClientOptions{Config: storage})

	var filter []string
	if recordUid := os.Getenv(ksmRecordEnv); recordUid != "" {
		filter = append(filter, recordUid)
	}
	records, err := sm.GetSecrets(filter)
	if err != nil {
		return nil, err
	}

	var oktaRecord *ksm.Record
	for _, r := range records {
		if r.Type() != "login" {
			continue
		}
		if r.GetFieldValueByType("url") == "" || r.Password() == "" {
			continue
		}
		oktaRecord = r
		break
	}
	if oktaRecord == nil {
		return nil, errors.New("Okta record was not found. Make sure a login record with url and password is shared to the KSM application")
	}

	var cfg = &Config{
		Domain: oktaRecord.GetFieldValueByType("url"),
		Token:  oktaRecord.Password(),
	}
	cfg.AppId, _ = customFieldString(oktaRecord.GetCustomFieldsByLabel("Bob App ID"))
	cfg.AppLabel, _ = customFieldString(oktaRecord.GetCustomFieldsByLabel("Bob App Label"))
	cfg.Output, _ = customFieldString(oktaRecord.GetCustomFieldsByLabel("Report Output"))
	return cfg, cfg.normalize()
}

// customFieldString extracts the first non-empty string from a KSM custom
// field, whose value is stored either as a string or as a list.
func customFieldString(fields []map[string]any) (string, bool) {
	for _, field := range fields {
		switch v := field["value"].(type) {
		case string:
			if v != "" {
				return v, true
			}
		case []any:
			for _, e := range v {
				if s, ok := e.(string); ok && s != "" {
					return s, true
				}
			}
		}
	}
	return "", false
}
