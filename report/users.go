package report

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

const pageLimit = 200

// UserRecord is one Okta account, reduced to the fields the report needs.
type UserRecord struct {
	Id           string
	FirstName    string
	LastName     string
	Email        string
	ProviderType string
	ProviderName string
}

// collectUsers fetches every user in the org, in the order the API returns
// them. Rows in the final report keep this order.
func (j *job) collectUsers() (users []*UserRecord, err error) {
	var listUrl = fmt.Sprintf("%s/api/v1/users?limit=%d", j.cfg.Domain, pageLimit)
	err = j.client.fetchPaginated(listUrl, func(page []map[string]any) {
		for _, item := range page {
			if u := parseUser(item); u != nil {
				users = append(users, u)
			}
		}
	})
	if err == nil {
		log.Info().Int("users", len(users)).Msg("collected Okta users")
	}
	return
}

func parseUser(userObject map[string]any) (result *UserRecord) {
	var id, ok = toString(userObject["id"])
	if !ok || id == "" {
		return
	}
	result = &UserRecord{Id: id}
	if profile, ok := userObject["profile"].(map[string]any); ok {
		result.FirstName, _ = toString(profile["firstName"])
		result.LastName, _ = toString(profile["lastName"])
		result.Email, _ = toString(profile["email"])
	}
	if credentials, ok := userObject["credentials"].(map[string]any); ok {
		if provider, ok := credentials["provider"].(map[string]any); ok {
			result.ProviderType, _ = toString(provider["type"])
			result.ProviderName, _ = toString(provider["name"])
		}
	}
	return
}
