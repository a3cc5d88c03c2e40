package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"evtxview/internal/app/dump"
	"evtxview/internal/app/errors"
	"evtxview/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandView CommandType = iota
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type          CommandType
	Files         []string
	NoUI          bool
	Follow        bool
	Config        string
	Format        string
	IncludeEvents []uint32
	ExcludeEvents []uint32
	IncludeUsers  []string
	ExcludeUsers  []string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version       bool
	includeEvents []uint
	excludeEvents []uint
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandView,
		Format: dump.FormatSummary,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	if result.Type != CommandView {
		return result, nil
	}

	var err error

	if result.IncludeEvents, err = eventIDs(flags.includeEvents); err != nil {
		return nil, err
	}

	if result.ExcludeEvents, err = eventIDs(flags.excludeEvents); err != nil {
		return nil, err
	}

	if result.Format != dump.FormatSummary && result.Format != dump.FormatJSON {
		return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidOutputFormat, result.Format)
	}

	return result, nil
}

// eventIDs narrows flag values to the event id range
func eventIDs(values []uint) ([]uint32, error) {
	ids := make([]uint32, 0, len(values))

	for _, v := range values {
		if v > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d", errors.ErrInvalidEventID, v)
		}

		ids = append(ids, uint32(v))
	}

	return ids, nil
}

// Apply merges the command-line overrides into cfg. Filter flags add to the seeds
// from the config file.
func (o *Options) Apply(cfg *config.Config) {
	if o.Follow {
		cfg.Ingest.Follow = true
	}

	cfg.Filter.IncludeEventIDs = append(cfg.Filter.IncludeEventIDs, o.IncludeEvents...)
	cfg.Filter.ExcludeEventIDs = append(cfg.Filter.ExcludeEventIDs, o.ExcludeEvents...)
	cfg.Filter.IncludeUsers = append(cfg.Filter.IncludeUsers, o.IncludeUsers...)
	cfg.Filter.ExcludeUsers = append(cfg.Filter.ExcludeUsers, o.ExcludeUsers...)
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName + " [files or directories...]",
		Short: "Browse and filter parsed Windows event log records",
		Long: `evtxview loads event records exported as JSON lines and shows them in an
interactive table with a detail pane. Records can be filtered by event id and user.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
			result.Files = args
		},
	}

	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().BoolVar(&result.NoUI, "no-ui", false, "Print the filtered records instead of opening the viewer")
	cmd.Flags().BoolVarP(&result.Follow, "follow", "f", false, "Keep reading records appended to the files")
	cmd.Flags().StringVarP(&result.Config, "config", "c", "", "Path to the config file")
	cmd.Flags().StringVar(&result.Format, "format", dump.FormatSummary, "Output format without the viewer: summary or json")
	cmd.Flags().UintSliceVarP(&flags.includeEvents, "include-event", "e", nil, "Only show these event ids")
	cmd.Flags().UintSliceVarP(&flags.excludeEvents, "exclude-event", "E", nil, "Hide these event ids")
	cmd.Flags().StringSliceVarP(&result.IncludeUsers, "include-user", "u", nil, "Only show these users")
	cmd.Flags().StringSliceVarP(&result.ExcludeUsers, "exclude-user", "U", nil, "Hide these users")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
