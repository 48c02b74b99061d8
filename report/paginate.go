package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fetchPaginated walks an Okta collection endpoint, handing each page of
// items to onPage and following the Link header's rel="next" URL until a
// response no longer carries one.
func (c *Client) fetchPaginated(rqUrl string, onPage func(items []map[string]any)) error {
	for rqUrl != "" {
		header, body, err := c.Get(rqUrl)
		if err != nil {
			return err
		}
		items, err := decodeItems(body)
		if err != nil {
			return fmt.Errorf("GET %s: decoding response: %w", rqUrl, err)
		}
		onPage(items)
		// Okta may emit each link relation as its own Link header line;
		// joining them restores the single comma-separated form.
		rqUrl = nextLink(strings.Join(header.Values("Link"), ","))
	}
	return nil
}

// fetchAll accumulates every item from every page, in page order.
func (c *Client) fetchAll(rqUrl string) (items []map[string]any, err error) {
	err = c.fetchPaginated(rqUrl, func(page []map[string]any) {
		items = append(items, page...)
	})
	return
}

// decodeItems normalizes a response body: a list body contributes its
// elements, a single object body contributes itself. Non-object list
// elements are skipped; every collection this job reads is a list of
// objects, and downstream parsing needs keyed access.
func decodeItems(body []byte) (items []map[string]any, err error) {
	var j any
	if err = json.Unmarshal(body, &j); err != nil {
		return
	}
	switch jv := j.(type) {
	case []any:
		for _, e := range jv {
			if jo, ok := e.(map[string]any); ok {
				items = append(items, jo)
			}
		}
	case map[string]any:
		items = append(items, jv)
	}
	return
}

// nextLink scans an RFC 5988 Link header for the rel="next" segment and
// returns the URL between its angle brackets, or "" when pagination is done.
func nextLink(link string) string {
	for _, part := range strings.Split(link, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		var start = strings.Index(part, "<")
		var end = strings.Index(part, ">")
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}
	return ""
}
