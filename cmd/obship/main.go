package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	fsAdapter "github.com/observeinc/obship/internal/adapters/fs"
	"github.com/observeinc/obship/internal/cliconfig"
	"github.com/observeinc/obship/pkg/log"
	"github.com/observeinc/obship/pkg/obship"
)

const shutdownTimeout = 30 * time.Second

const longHelp = `
Ship newline-delimited JSON records to an HTTP collection endpoint.

Records are read from stdin (or a followed file), batched adaptively, and
delivered with bearer-token authentication. An idle shipper sends the first
record immediately; under load, records accumulate until a count, size, or
time trigger flushes them.

Configure via flags, OBSHIP_* environment variables, or a TOML file
(default $HOME/.obship/config.toml). Flags win over environment, which wins
over the file.
`

var exampleUsage = strings.TrimSpace(`
  app | obship --url https://collect.example.com/v1/http --token <api-token>
  obship --follow /var/log/app/events.ndjson --from-start
  obship --config $HOME/.obship/config.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "obship",
		Short:   "Ship newline-delimited JSON records to an HTTP collection endpoint",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first, then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// Log configuration (masking the token)
			logCfg := cfg
			if len(logCfg.Token) > 0 {
				logCfg.Token = "*****"
			}
			logger.Info().Interface("config", logCfg).Msg("configuration")

			return run(cfg, logger)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&cfgPath, "config", "c", "", "path to TOML config file (default $HOME/.obship/config.toml)")
	flags.StringVar(&cfg.URL, "url", cfg.URL, "absolute collection endpoint URL")
	flags.StringVar(&cfg.Token, "token", cfg.Token, "bearer token for the Authorization header")
	flags.DurationVar(&cfg.BatchTime, "batch-time", cfg.BatchTime, "deferred flush interval")
	flags.IntVar(&cfg.BatchCount, "batch-count", cfg.BatchCount, "record count that forces a flush")
	flags.IntVar(&cfg.SizeLimit, "size-limit", cfg.SizeLimit, "buffered byte size that forces a flush")
	flags.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-transmission HTTP timeout")
	flags.StringVar(&cfg.Follow, "follow", cfg.Follow, "tail this file instead of reading stdin")
	flags.BoolVar(&cfg.FromStart, "from-start", cfg.FromStart, "ship the followed file from its beginning")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "enable debug logging")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("obship failed")
		os.Exit(1)
	}
}

func run(cfg cliconfig.Config, logger zerolog.Logger) error {
	if !cfg.Verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	client, err := obship.New(obship.Config{
		URL:         cfg.URL,
		Token:       cfg.Token,
		BatchTime:   cfg.BatchTime,
		BatchCount:  cfg.BatchCount,
		SizeLimit:   cfg.SizeLimit,
		HTTPTimeout: cfg.HTTPTimeout,
	}, obship.WithLogger(log.NewZerologAdapterWithLogger(logger)))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shipped := 0
	emit := func(line []byte) {
		var record map[string]interface{}
		if err := json.Unmarshal(line, &record); err != nil {
			logger.Warn().Err(err).Str("line", truncate(string(line), 120)).Msg("skipping unparsable line")
			return
		}
		client.Send(record, nil)
		shipped++
	}

	if cfg.Follow != "" {
		logger.Info().Str("file", cfg.Follow).Msg("following file")
		err = fsAdapter.NewFollower(cfg.Follow, cfg.FromStart, log.NewZerologAdapterWithLogger(logger)).Run(ctx, emit)
	} else {
		err = readStdin(ctx, emit)
	}
	if err != nil {
		logger.Error().Err(err).Msg("input stopped")
	}

	// Flush what remains, bounded so a dead endpoint cannot hang shutdown.
	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if closeErr := client.Close(closeCtx); closeErr != nil {
		logger.Warn().Err(closeErr).Msg("shutdown before all records were delivered")
	}

	logger.Info().Int("records", shipped).Msg("done")
	return err
}

// readStdin ships lines from stdin until EOF or context cancellation.
func readStdin(ctx context.Context, emit func(line []byte)) error {
	lines := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 2*1024*1024)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			select {
			case lines <- []byte(line):
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			emit(line)
		case <-ctx.Done():
			return nil
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
