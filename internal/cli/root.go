// Package cli implements iisctl, a thin command line front end for the IIS client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samvad-hq/iis-schedule-client/internal/config"
	"github.com/samvad-hq/iis-schedule-client/internal/logger"
	"github.com/samvad-hq/iis-schedule-client/pkg/httpclient"
	"github.com/samvad-hq/iis-schedule-client/pkg/iis"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL     string
	timeout     time.Duration
	statusCheck bool
}

// NewRootCmd builds the iisctl command tree. Flag defaults come from config.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "iisctl",
		Short: "Query the BSUIR IIS schedule API",
		Long: `iisctl fetches auditories, groups, employees and other schedule
resources from the IIS API and prints them as JSON.`,
		SilenceUsage: true,
	}

	defBase, defTimeout, defStatus := iis.DefaultBaseURL, 15*time.Second, true
	if cfg != nil {
		defBase, defTimeout, defStatus = cfg.BaseURL, cfg.HTTPTimeout, cfg.StatusCheck
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", defBase, "API base URL without trailing slash")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", defTimeout, "HTTP timeout (0 disables)")
	root.PersistentFlags().BoolVar(&opts.statusCheck, "status-check", defStatus, "fail on non-2xx responses")

	root.AddCommand(newListCommands(opts)...)
	root.AddCommand(newLastUpdateCmd(opts), newAnnouncementsCmd(opts))
	return root
}

func (o *options) client() *iis.Client {
	return iis.New(o.baseURL,
		iis.WithHTTPClient(httpclient.NewRestyClient(o.timeout)),
		iis.WithStatusCheck(o.statusCheck),
	)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Execute runs iisctl with the process arguments and exits non-zero on failure.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if _, err := logger.Init(cfg); err == nil {
		defer logger.Close()
	}

	if err := NewRootCmd(cfg).Execute(); err != nil {
		logger.DebugObj("iisctl command failed", "error", err.Error())
		fmt.Fprintln(os.Stderr, err)
		logger.Close()
		os.Exit(1)
	}
}
