package report

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"
)

const appSubstring = "bob"

// resolveAppId returns the Okta application id of the bob integration,
// either straight from configuration or by label search. Exact
// (case-insensitive) label matches win over substring matches so that
// similarly named apps ("HiBob" vs "hibob-test") cannot shadow each other.
func (j *job) resolveAppId() (string, error) {
	if j.cfg.AppId != "" {
		return j.cfg.AppId, nil
	}
	if j.cfg.AppLabel == "" {
		return "", &ConfigError{Reason: "set BOB_APP_ID or BOB_APP_LABEL to identify the bob app"}
	}

	var searchUrl = fmt.Sprintf("%s/api/v1/apps?q=%s&limit=%d",
		j.cfg.Domain, url.QueryEscape(j.cfg.AppLabel), pageLimit)
	apps, err := j.client.fetchAll(searchUrl)
	if err != nil {
		return "", err
	}
	log.Debug().Int("apps", len(apps)).Str("label", j.cfg.AppLabel).Msg("app search complete")

	var want = foldLabel(j.cfg.AppLabel)
	for _, app := range apps {
		id, ok := toString(app["id"])
		if !ok || id == "" {
			continue
		}
		if label, ok := toString(app["label"]); ok && foldLabel(label) == want {
			return id, nil
		}
	}
	for _, app := range apps {
		id, ok := toString(app["id"])
		if !ok || id == "" {
			continue
		}
		if label, ok := toString(app["label"]); ok && strings.Contains(foldLabel(label), appSubstring) {
			return id, nil
		}
	}
	return "", &ResolutionError{Label: j.cfg.AppLabel}
}

// foldLabel lower-cases a label after NFC normalization, so composed and
// decomposed spellings of the same accented label compare equal.
func foldLabel(label string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(label)))
}
