// Command ddns-agent keeps DNS records pointed at this host's interface addresses.
//
// By default it runs a single update and exits.
// With -daemon it keeps running, updating on an interval and whenever the config file changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/netip"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	ddns "github.com/Travis-Britz/dns-agent"
	"github.com/Travis-Britz/dns-agent/config"
	"github.com/Travis-Britz/dns-agent/provider/cloudflare"
	"github.com/Travis-Britz/dns-agent/provider/digitalocean"
)

const defaultInterval = 5 * time.Minute

var flags = struct {
	ConfigFile    string
	Verbose       bool
	Debug         bool
	DryRun        bool
	Daemon        bool
	Interval      time.Duration
	Interfaces    bool
	SetupFile     string
	SetupProvider string
}{
	ConfigFile:    config.DefaultPath,
	SetupProvider: "cloudflare",
}

func init() {
	flag.StringVar(&flags.ConfigFile, "c", flags.ConfigFile, "Path to the config file (.toml, .yaml or .yml)")
	flag.StringVar(&flags.ConfigFile, "config", flags.ConfigFile, "Path to the config file (.toml, .yaml or .yml)")
	flag.BoolVar(&flags.Verbose, "v", false, "Enable verbose logging")
	flag.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&flags.DryRun, "dry-run", false, "Log changes instead of making them")
	flag.BoolVar(&flags.Daemon, "daemon", false, "Keep running and update on an interval")
	flag.DurationVar(&flags.Interval, "i", 0, "Duration between updates in daemon mode (default from config, else 5m)")
	flag.BoolVar(&flags.Interfaces, "interfaces", false, "Print the addresses records can be pointed at and exit")
	flag.StringVar(&flags.SetupFile, "setup", "", "Prompt for an API token, verify it, and write it to this file")
	flag.StringVar(&flags.SetupProvider, "setup-provider", flags.SetupProvider, "Provider the -setup token is for: cloudflare or digitalocean")
}

func main() {
	flag.Parse()

	zl, err := newZapLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := zapr.NewLogger(zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, logger)
	stop()
	if err != nil {
		logger.Error(err, "ddns-agent failed")
		_ = zl.Sync()
		os.Exit(1)
	}
	_ = zl.Sync()
}

// newZapLogger logs at info by default; -v enables V(1) and -debug enables V(2).
func newZapLogger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch {
	case flags.Debug:
		level = zapcore.Level(-2)
	case flags.Verbose:
		level = zapcore.Level(-1)
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.DisableStacktrace = !flags.Debug
	return cfg.Build()
}

func run(ctx context.Context, logger logr.Logger) error {
	switch {
	case flags.SetupFile != "":
		return runSetup(ctx, logger)
	case flags.Interfaces:
		return printInterfaces(ctx, logger)
	}

	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return err
	}
	logger.V(1).Info("config is valid", "path", flags.ConfigFile, "domains", len(cfg.Domains))

	var options []ddns.Option
	if flags.DryRun {
		options = append(options, ddns.WithDryRun(true))
	}

	if !flags.Daemon {
		agent, err := cfg.Agent(ctx, logger, options...)
		if err != nil {
			return fmt.Errorf("error creating agent: %w", err)
		}
		return agent.RunDDNS(ctx)
	}

	interval := flags.Interval
	if interval == 0 {
		interval = cfg.Settings.Interval
	}
	if interval == 0 {
		interval = defaultInterval
	}
	wake, err := config.Watch(ctx, flags.ConfigFile, logger)
	if err != nil {
		return err
	}
	logger.Info("starting daemon", "interval", interval.String(), "config", flags.ConfigFile)
	ddns.RunDaemon(ctx, &reloadingClient{path: flags.ConfigFile, logger: logger, options: options}, interval, logger, wake)
	return nil
}

// reloadingClient reads the config file again before every run.
type reloadingClient struct {
	path    string
	logger  logr.Logger
	options []ddns.Option
}

func (c *reloadingClient) RunDDNS(ctx context.Context) error {
	cfg, err := config.Load(c.path)
	if err != nil {
		return err
	}
	agent, err := cfg.Agent(ctx, c.logger, c.options...)
	if err != nil {
		return fmt.Errorf("error creating agent: %w", err)
	}
	return agent.RunDDNS(ctx)
}

// printInterfaces writes the current snapshot to stdout.
// The external address is included when the config file names a source for it.
func printInterfaces(ctx context.Context, logger logr.Logger) error {
	local, err := ddns.LocalAddresses()
	if err != nil {
		return err
	}
	var external netip.Addr
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		logger.V(1).Info("not resolving the external address", "reason", err.Error())
	} else if r, err := cfg.Settings.ExternalResolver(); err != nil {
		return err
	} else if r != nil {
		if external, err = ddns.ExternalIPv4(ctx, r); err != nil {
			return err
		}
	}
	snapshot, err := ddns.NewSnapshot(local, external)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tINTERFACE\tADDRESS")
	for _, na := range snapshot.V4 {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ddns.A, na.Interface, na.Addr)
	}
	for _, na := range snapshot.V6 {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ddns.AAAA, na.Interface, na.Addr)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if iface, err := ddns.DefaultInterface(); err == nil {
		fmt.Printf("\ndefault interface: %s\n", iface)
	}
	return nil
}

func runSetup(ctx context.Context, logger logr.Logger) error {
	path := flags.SetupFile
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%q already exists", path)
	}

	var verify func(context.Context, string) error
	switch flags.SetupProvider {
	case "cloudflare":
		verify = func(ctx context.Context, token string) error { return cloudflare.VerifyToken(ctx, token) }
	case "digitalocean":
		verify = func(ctx context.Context, token string) error { return digitalocean.VerifyToken(ctx, token) }
	default:
		return fmt.Errorf("unknown setup provider %q", flags.SetupProvider)
	}

	fmt.Fprintf(os.Stderr, "Enter %s API token: \n", flags.SetupProvider)
	bytekey, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return fmt.Errorf("runSetup: error reading from stdin: %w", err)
	}
	key := strings.TrimSpace(string(bytekey))
	if key == "" {
		return errors.New("runSetup: no token entered")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	logger.Info("verifying token", "provider", flags.SetupProvider)
	if err := verify(ctx, key); err != nil {
		return err
	}
	logger.Info("token verified successfully")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", path, err)
	}
	if _, err := fmt.Fprintln(f, key); err != nil {
		f.Close()
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	logger.Info("token written", "path", path)
	return config.VerifyPermissions(path)
}
