package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"notion-roadmap/roadmap/internal/config"
	"notion-roadmap/roadmap/internal/logging"
	"notion-roadmap/roadmap/internal/providers"
	"notion-roadmap/roadmap/internal/services"
)

// Options holds state shared by every subcommand.
type Options struct {
	Verbose bool
	Timeout time.Duration

	// LoadConfig defaults to config.Load.
	LoadConfig func() config.Config
	Out        io.Writer
}

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	return NewWithOptions(&Options{})
}

// NewWithOptions is New with caller-supplied options, used by tests.
func NewWithOptions(opts *Options) *cobra.Command {
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	rootCmd := &cobra.Command{
		Use:   "roadmapctl",
		Short: "Inspect the Notion roadmap from the command line",
		Long: `roadmapctl reads the same NOTION_* settings as the server and prints
roadmap items, single items or the database schema as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log upstream requests to stderr")
	rootCmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "Overall request timeout")

	rootCmd.AddCommand(NewCmdList(opts))
	rootCmd.AddCommand(NewCmdShow(opts))
	rootCmd.AddCommand(NewCmdSchema(opts))

	return rootCmd
}

// newService loads configuration and builds the roadmap service. Missing
// settings are reported before any request is made.
func newService(opts *Options) (*services.RoadmapService, error) {
	cfg := opts.LoadConfig()

	if opts.Verbose {
		if err := logging.Init(cfg.AppEnv); err != nil {
			return nil, err
		}
	} else {
		logging.SetLogger(zap.NewNop().Sugar())
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	return services.NewRoadmapService(cfg, providers.NewNotionProvider(cfg), nil), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
