package cli

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"stealthcompany.com/medrec-client/internal/backend"
	"stealthcompany.com/medrec-client/internal/config"
	"stealthcompany.com/medrec-client/internal/metrics"
	"stealthcompany.com/medrec-client/internal/session"
	"stealthcompany.com/medrec-client/internal/view"
	"stealthcompany.com/medrec-client/pkg/zerolog_config"
)

// App carries the shared dependencies behind every command: one config, one
// session store scoped to the backend origin, one request client.
type App struct {
	cfg   *config.Config
	store *session.Store
	api   *backend.Client
}

func (a *App) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := zerolog_config.Startup(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}

	origin, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid MEDREC_BASE_URL: %w", err)
	}

	a.store = session.NewStore(cfg.DataDir, origin.Scheme+"://"+origin.Host)
	a.api = backend.NewClient(cfg.BaseURL, cfg.HTTPTimeout, a.store)

	if cfg.MetricsAddr != "" {
		metrics.Serve(cfg.MetricsAddr)
		metrics.StartSystemMetricsCollection("medrec")
	}

	return nil
}

// NewRootCmd builds the medrec command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	rootCmd := &cobra.Command{
		Use:           "medrec",
		Short:         "Terminal client for the clinical record backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init()
		},
	}

	rootCmd.AddCommand(loginCmd(app))
	rootCmd.AddCommand(logoutCmd(app))
	rootCmd.AddCommand(searchCmd(app))
	rootCmd.AddCommand(patientCmd(app))
	rootCmd.AddCommand(diagnoseCmd(app))
	rootCmd.AddCommand(appointmentCmd(app))
	rootCmd.AddCommand(fhirCmd(app))
	rootCmd.AddCommand(browseCmd(app))

	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func renderDoc(w io.Writer, doc *view.Document) {
	if err := doc.Render(w); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
}

const notLoggedIn = "Please log in first."
