package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mahdiidarabi/vanitykey/internal/config"
	"github.com/mahdiidarabi/vanitykey/pkg/keygen"
)

// cliFlags holds raw flag values. Only flags the user changed override the
// config file.
type cliFlags struct {
	configPath     string
	ignoreCase     bool
	ci             bool
	keyType        string
	workers        int
	workersPerCPU  int
	batchSize      int
	checkInterval  int
	reportInterval time.Duration
	outDir         string
	privateKeyFile string
	publicKeyFile  string
	comment        string
	force          bool
	timeout        time.Duration
	metricsAddr    string
	logLevel       string
	logFormat      string
}

func newRootCmd() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "vanitykey [flags] <target>",
		Short: "Generate a key whose public key contains a target string",
		Long: `vanitykey generates random keypairs on every CPU until the encoded
public key contains the target substring, then writes the matching keypair.

Examples:
  vanitykey AAAA
  vanitykey -i --type ecdsa-p256 beef
  vanitykey --config vanity.yaml --metrics-addr :9090 cafe`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags, args[0])
			if err != nil {
				return err
			}
			return runSearch(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "path to a YAML config file")
	f.BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "match the target case-insensitively")
	f.BoolVar(&flags.ci, "ci", false, "print one progress line per update instead of redrawing")
	f.StringVarP(&flags.keyType, "type", "t", keygen.Ed25519.String(), fmt.Sprintf("key type %v", keygen.KeyTypes()))
	f.IntVarP(&flags.workers, "workers", "w", 0, "number of workers (0 = workers-per-cpu * CPUs)")
	f.IntVar(&flags.workersPerCPU, "workers-per-cpu", 0, "workers per CPU when --workers is 0")
	f.IntVar(&flags.batchSize, "batch-size", 0, "attempts published to the counter at once")
	f.IntVar(&flags.checkInterval, "check-interval", 0, "attempts between stop checks inside a batch")
	f.DurationVar(&flags.reportInterval, "report-interval", 0, "progress render interval")
	f.StringVarP(&flags.outDir, "out-dir", "o", ".", "directory for the generated keys")
	f.StringVar(&flags.privateKeyFile, "private-key-file", "", "private key file name (default depends on --type)")
	f.StringVar(&flags.publicKeyFile, "public-key-file", "", "public key file name (default <private-key-file>.pub)")
	f.StringVar(&flags.comment, "comment", "", "comment stored in the OpenSSH private key")
	f.BoolVar(&flags.force, "force", false, "overwrite existing key files and search for unreachable targets")
	f.DurationVar(&flags.timeout, "timeout", 0, "give up after this long (0 = never)")
	f.StringVar(&flags.metricsAddr, "metrics-addr", "", "serve /metrics, /healthz and /status on this address")
	f.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	f.StringVar(&flags.logFormat, "log-format", "", "log format (text or json)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "vanitykey %s (%s)\n", version, commit)
		},
	}
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command, flags cliFlags, target string) (config.File, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	cfg.Target = target

	changed := cmd.Flags().Changed
	if changed("ignore-case") {
		cfg.IgnoreCase = flags.ignoreCase
	}
	if changed("ci") {
		ci := flags.ci
		cfg.CI = &ci
	}
	if changed("type") {
		cfg.KeyType = flags.keyType
	}
	if changed("workers") {
		cfg.Workers = flags.workers
	}
	if changed("workers-per-cpu") {
		cfg.WorkersPerCPU = flags.workersPerCPU
	}
	if changed("batch-size") {
		cfg.BatchSize = flags.batchSize
	}
	if changed("check-interval") {
		cfg.CheckInterval = flags.checkInterval
	}
	if changed("report-interval") {
		cfg.ReportInterval = flags.reportInterval
	}
	if changed("out-dir") {
		cfg.OutDir = flags.outDir
	}
	if changed("private-key-file") {
		cfg.PrivateKeyFile = flags.privateKeyFile
	}
	if changed("public-key-file") {
		cfg.PublicKeyFile = flags.publicKeyFile
	}
	if changed("comment") {
		cfg.Comment = flags.comment
	}
	if changed("force") {
		cfg.Force = flags.force
	}
	if changed("timeout") {
		cfg.Timeout = flags.timeout
	}
	if changed("metrics-addr") {
		cfg.MetricsAddr = flags.metricsAddr
	}
	if changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
