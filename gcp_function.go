package okta_bob_origin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/rs/zerolog/log"

	"github.com/hrops/okta-bob-origin/report"
)

func init() {
	// Register the triggers with the Functions Framework
	functions.HTTP("OktaBobOriginHttp", oktaBobOriginHttp)
	functions.CloudEvent("OktaBobOriginPubSub", oktaBobOriginPubSub)
}

func runReport() (*report.Summary, error) {
	var cfg *report.Config
	var err error
	if os.Getenv(report.KsmConfigEnv) != "" {
		cfg, err = report.LoadConfigFromKSM()
	} else {
		cfg, err = report.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	return report.Run(cfg)
}

func printSummary(w io.Writer, summary *report.Summary) {
	_, _ = fmt.Fprintf(w, "Report generated successfully: %s\n", summary.Output)
	_, _ = fmt.Fprintf(w, "Total users processed: %d\n", summary.Rows)
	_, _ = fmt.Fprintf(w, "bob app id used: %s\n", summary.AppId)
}

// oktaBobOriginHttp runs one report per request and echoes the summary.
func oktaBobOriginHttp(w http.ResponseWriter, _ *http.Request) {
	var summary, err = runReport()
	if err != nil {
		log.Error().Err(err).Msg("report run failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	printSummary(w, summary)
}

// oktaBobOriginPubSub runs one report per Pub/Sub message; the payload only
// acts as a trigger.
func oktaBobOriginPubSub(_ context.Context, _ event.Event) error {
	var summary, err = runReport()
	if err != nil {
		log.Error().Err(err).Msg("report run failed")
		return err
	}
	printSummary(os.Stdout, summary)
	return nil
}
