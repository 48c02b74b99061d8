package report

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const userIdPrefix = "00u"

// collectAppUserIds builds the set of Okta user ids assigned to the bob
// application. Membership records carry the owning user as a relational
// link, so one paginated pass over /apps/{id}/users covers the whole
// population without a per-user lookup.
func (j *job) collectAppUserIds(appId string) (ids Set[string], err error) {
	ids = NewSet[string]()
	var listUrl = fmt.Sprintf("%s/api/v1/apps/%s/users?limit=%d", j.cfg.Domain, appId, pageLimit)
	err = j.client.fetchPaginated(listUrl, func(page []map[string]any) {
		for _, item := range page {
			if id, ok := appUserLinkId(item); ok {
				ids.Add(id)
			}
		}
	})
	if err == nil {
		log.Info().Int("ids", len(ids)).Str("appId", appId).Msg("collected app user links")
	}
	return
}

// appUserLinkId reduces one membership record to the owning user's id.
// Resolution order is fixed: the _links.user.href path segment is the most
// stable across application types; the embedded user object and the
// record's own id are fallbacks.
func appUserLinkId(item map[string]any) (string, bool) {
	if href, ok := userLinkHref(item); ok {
		if i := strings.LastIndex(href, "/users/"); i >= 0 {
			if id := href[i+len("/users/"):]; id != "" {
				return id, true
			}
		}
	}
	if embedded, ok := item["_embedded"].(map[string]any); ok {
		if user, ok := embedded["user"].(map[string]any); ok {
			if id, _ := toString(user["id"]); id != "" {
				return id, true
			}
		}
	}
	if id, _ := toString(item["id"]); strings.HasPrefix(id, userIdPrefix) {
		return id, true
	}
	return "", false
}

// userLinkHref digs _links.user.href out of a membership record. Some app
// types return the user link as a single object, others as a list.
func userLinkHref(item map[string]any) (string, bool) {
	links, ok := item["_links"].(map[string]any)
	if !ok {
		return "", false
	}
	switch user := links["user"].(type) {
	case map[string]any:
		return toString(user["href"])
	case []any:
		if len(user) > 0 {
			if first, ok := user[0].(map[string]any); ok {
				return toString(first["href"])
			}
		}
	}
	return "", false
}
