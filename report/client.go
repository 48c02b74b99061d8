package report

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

const (
	tokenScheme    = "SSWS"
	userAgent      = "okta-bob-origin/1.0"
	requestTimeout = 30 * time.Second
	minBackoff     = 2 * time.Second
)

// Client issues authenticated GET requests against the Okta API. A 429
// response is never surfaced to callers: the client sleeps until the
// published reset time and retries the same request until it gets through.
// The retry is deliberately unbounded; this is a one-shot batch job and
// eventual completion beats fast failure.
type Client struct {
	http  *http.Client
	now   func() time.Time
	sleep func(time.Duration)
}

func NewClient(token string) *Client {
	var source = oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   tokenScheme,
	})
	var hc = oauth2.NewClient(context.Background(), source)
	hc.Timeout = requestTimeout
	return &Client{
		http:  hc,
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Get performs one authenticated GET, retrying through rate limits. Any
// status other than 200 comes back as *APIError.
func (c *Client) Get(rqUrl string) (header http.Header, body []byte, err error) {
	for {
		var rq *http.Request
		if rq, err = http.NewRequest(http.MethodGet, rqUrl, nil); err != nil {
			return
		}
		rq.Header.Set("Accept", "application/json")
		rq.Header.Set("Content-Type", "application/json")
		rq.Header.Set("User-Agent", userAgent)

		var rs *http.Response
		if rs, err = c.http.Do(rq); err != nil {
			return
		}
		body, err = io.ReadAll(rs.Body)
		_ = rs.Body.Close()
		if err != nil {
			return
		}
		if rs.StatusCode == http.StatusTooManyRequests {
			var wait = c.rateLimitWait(rs.Header)
			log.Debug().Str("url", rqUrl).Dur("wait", wait).Msg("rate limited, backing off")
			c.sleep(wait)
			continue
		}
		if rs.StatusCode != http.StatusOK {
			err = &APIError{URL: rqUrl, StatusCode: rs.StatusCode, Body: string(body)}
			return
		}
		header = rs.Header
		return
	}
}

// rateLimitWait computes how long to sleep after a 429: until the
// x-rate-limit-reset epoch plus a one-second buffer, never less than two
// seconds. A missing or non-numeric header falls back to the floor.
func (c *Client) rateLimitWait(h http.Header) time.Duration {
	var reset = h.Get("x-rate-limit-reset")
	if reset == "" {
		return minBackoff
	}
	epoch, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return minBackoff
	}
	var wait = time.Duration(epoch-c.now().Unix()+1) * time.Second
	if wait < minBackoff {
		wait = minBackoff
	}
	return wait
}
