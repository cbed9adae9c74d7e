package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/dedupe"
	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/filter"
	"github.com/AustralianCyberSecurityCentre/azul-rmdup.git/prom"
	st "github.com/AustralianCyberSecurityCentre/azul-rmdup.git/settings"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
)

var (
	configPath string
	key        string
	mode       string
	cacheBytes string
	logLevel   string
	stats      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rmdup",
	Short: "Remove duplicate lines from a stream",
	Long: `Reads lines from stdin and writes each distinct line to stdout once,
in order of first occurrence.

Lines are remembered by a 64 bit xxHash of their bytes rather than their
content, so memory grows by roughly 8 bytes per distinct line. Two different
lines sharing a hash are treated as duplicates.

Settings may also be supplied as environment variables prefixed with RMDUP,
e.g. 'RMDUP__DEDUPE__MODE=wide', or in a yaml file named by --config or
'RMDUP__CONFIG'. Flags take precedence over both.
`,
	Example: `cat urls.txt | rmdup > unique.txt
cat events.jsonl | rmdup --key id
RMDUP__DEDUPE__MODE=bounded RMDUP__DEDUPE__CACHE_BYTES=1Gi rmdup < huge.txt`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFilter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// loadSettings reads settings from file and environment, then applies any flags that were set.
func loadSettings(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = os.Getenv(st.ConfigEnv)
	}
	if err := st.Load(path); err != nil {
		return err
	}
	overrides := st.RMSettings{}
	flags := cmd.Flags()
	if flags.Changed("key") {
		overrides.Dedupe.Key = key
	}
	if flags.Changed("mode") {
		overrides.Dedupe.Mode = mode
	}
	if flags.Changed("cache-bytes") {
		val, err := st.HumanToBytes(cacheBytes)
		if err != nil {
			return err
		}
		overrides.Dedupe.CacheBytes = val
	}
	if flags.Changed("log-level") {
		overrides.LogLevel = logLevel
	}
	if flags.Changed("stats") {
		overrides.Stats = stats
	}
	if err := st.Override(overrides); err != nil {
		return fmt.Errorf("failed to apply flags: %w", err)
	}

	_, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		st.Logger.Debug().Msgf(format, args...)
	}))
	if err != nil {
		st.Logger.Warn().Err(err).Msg("could not set GOMAXPROCS from cgroup quota")
	}
	return nil
}

func runFilter(in io.Reader, out io.Writer, errOut io.Writer) error {
	seen, err := dedupe.New(st.Dedupe.Mode, uint64(st.Dedupe.CacheBytes))
	if err != nil {
		return err
	}
	if strings.EqualFold(st.Dedupe.Mode, dedupe.ModeBounded) {
		st.Logger.Warn().Str("size", st.Dedupe.CacheBytes.String()).Msg("bounded dedupe may repeat lines once the cache is full")
	}
	if st.Settings.MetricsAddr != "" {
		go prom.StartStandalonePromServer(st.Settings.MetricsAddr)
	}

	opts := []filter.Option{
		filter.WithKey(st.Dedupe.Key),
		filter.WithBufferSizes(int(st.Settings.ReadBufferBytes), int(st.Settings.WriteBufferBytes)),
	}
	if dupLog := st.NewDuplicatesLog(st.Settings.LogPath); dupLog != nil {
		defer dupLog.Close()
		opts = append(opts, filter.WithDiscarded(dupLog))
	}

	f := filter.New(seen, opts...)
	result, err := f.Run(in, out)
	st.Logger.Debug().
		Uint64("lines", result.Lines).
		Uint64("emitted", result.Emitted).
		Uint64("duplicates", result.Duplicates).
		Int("hashes", result.Hashes).
		Msg("finished")
	if st.Settings.Stats {
		raw, jerr := json.Marshal(result)
		if jerr != nil {
			st.Logger.Warn().Err(jerr).Msg("could not encode stats")
		} else {
			fmt.Fprintf(errOut, "%s\n", raw)
		}
	}
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		st.Logger.Error().Err(err).Msg("rmdup failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "yaml settings file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level for stderr (trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&key, "key", "", "gjson path of the value to deduplicate json lines on, e.g. 'id' or 'data.sha256'")
	rootCmd.Flags().StringVar(&mode, "mode", "", "seen set to use: exact, wide (128 bit hashes) or bounded (fixed memory)")
	rootCmd.Flags().StringVar(&cacheBytes, "cache-bytes", "", "memory for the bounded seen set, e.g. 512Mi")
	rootCmd.Flags().BoolVar(&stats, "stats", false, "print a json summary to stderr when done")
}
