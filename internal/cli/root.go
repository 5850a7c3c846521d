// Package cli wires the akaget command tree: flag handling, client
// construction and output formatting for each subcommand.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/edgetools/akaget/internal/cache"
	"github.com/edgetools/akaget/internal/config"
	"github.com/edgetools/akaget/internal/edgeapi"
	"github.com/edgetools/akaget/internal/logging"
)

const (
	defaultEdgercPath = "~/.edgerc"
	defaultSection    = "default"
)

// rootOptions carries the global flags shared by every subcommand.
// Empty values fall back to the defaults file, then to the built-in
// defaults.
type rootOptions struct {
	account  string
	edgerc   string
	section  string
	jsonOut  string
	debugLog string
	cacheDir string
	cfgPath  string
}

// Execute runs the CLI with the given arguments.
func Execute(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "akaget",
		Short: "Query Akamai diagnostic and property APIs",
		Long: `akaget - get Akamai stuff

urldebug   - debug an accelerated url (status code, cpcode, origin)
reference  - translate an error reference or error string
origins    - extract the origin servers from a property configuration

Full API results can be exported with --json <path>.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	fs := cmd.PersistentFlags()
	fs.StringVar(&opts.account, "account", "", "account switch key")
	fs.StringVar(&opts.edgerc, "edgerc", "", "path to the edgerc file (default ~/.edgerc)")
	fs.StringVar(&opts.section, "section", "", "edgerc section (default \"default\")")
	fs.StringVar(&opts.jsonOut, "json", "", "export the raw API result to this file")
	fs.StringVar(&opts.debugLog, "debug", "", "write debug logging to this file")
	fs.StringVar(&opts.cacheDir, "cache-dir", "", "cache property lookups under this folder")
	fs.StringVar(&opts.cfgPath, "config", config.DefaultPath, "defaults file path")

	cmd.AddCommand(
		newURLDebugCmd(opts),
		newReferenceCmd(opts),
		newOriginsCmd(opts),
		newEStatsCmd(opts),
		newCPStatsCmd(opts),
		newPropertyCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// newClient resolves flag/config fallbacks and builds the API client.
// The returned closer flushes the debug log file, when one is open.
func (o *rootOptions) newClient() (*edgeapi.Client, func(), error) {
	defaults, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, nil, err
	}

	logger, logCloser, err := logging.New(o.debugLog)
	if err != nil {
		return nil, nil, err
	}
	done := func() {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	}

	var store *cache.Store
	if dir := config.Fallback(o.cacheDir, defaults.CacheDir); dir != "" {
		store, err = cache.New(dir)
		if err != nil {
			done()
			return nil, nil, err
		}
	}

	client, err := edgeapi.New(edgeapi.Options{
		EdgercPath: config.Fallback(o.edgerc, config.Fallback(defaults.Edgerc, defaultEdgercPath)),
		Section:    config.Fallback(o.section, config.Fallback(defaults.Section, defaultSection)),
		Account:    config.Fallback(o.account, defaults.Account),
		Cache:      store,
		Logger:     logger,
	})
	if err != nil {
		done()
		return nil, nil, err
	}
	return client, done, nil
}

// export writes the raw result document when --json was given.
func (o *rootOptions) export(result any) error {
	return exportJSON(o.jsonOut, result)
}
