package report

import "github.com/rs/zerolog/log"

// Summary is what a successful run reports back to the operator.
type Summary struct {
	Rows   int
	AppId  string
	Output string
}

type job struct {
	cfg    *Config
	client *Client
}

// Run executes one reconciliation pass: resolve the bob app, pull the full
// user list and the app membership set, merge them, and write the workbook.
// Nothing is written when any stage fails.
func Run(cfg *Config) (*Summary, error) {
	var j = &job{cfg: cfg, client: NewClient(cfg.Token)}

	appId, err := j.resolveAppId()
	if err != nil {
		return nil, err
	}
	users, err := j.collectUsers()
	if err != nil {
		return nil, err
	}
	bobIds, err := j.collectAppUserIds(appId)
	if err != nil {
		return nil, err
	}

	var rows = reconcile(users, bobIds)
	if err = exportRows(rows, cfg.Output); err != nil {
		return nil, err
	}
	log.Info().Int("rows", len(rows)).Str("appId", appId).Str("output", cfg.Output).Msg("report written")
	return &Summary{Rows: len(rows), AppId: appId, Output: cfg.Output}, nil
}
