// Package cli wires the plugin together: identity decode from the
// invocation name, mode selection from the arguments, and the single place
// where process exit codes are chosen.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nanoncore/munin-airport/internal/airport"
	"github.com/nanoncore/munin-airport/internal/config"
	"github.com/nanoncore/munin-airport/internal/errors"
	"github.com/nanoncore/munin-airport/internal/identity"
	"github.com/nanoncore/munin-airport/internal/logger"
	"github.com/nanoncore/munin-airport/internal/munin"
	"github.com/nanoncore/munin-airport/internal/snmp"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "dev"

// SetVersionInfo records the build version shown by --version.
func SetVersionInfo(v string) {
	version = v
}

const usageText = `This is a munin wildcard plugin for Apple AirPort base stations.

Install it as symlinks named

  snmp_<host>_airport_<metric>

where <host> is the base station to poll and <metric> is one of

  clients dhcpclients wanTraffic
  type rates time lastrefresh signal noise rate rx tx rxerr txerr

Run with "config" as the first argument to print graph metadata, with no
arguments to report current values. SNMP settings come from the environment:
community (default public), version (default 1), timeout (default 5s).
`

// executor is what one run needs from the transport; satisfied by
// *snmp.Client.
type executor interface {
	snmp.Executor
	Close() error
}

// dialSNMP is swapped out in tests.
var dialSNMP = func(cfg config.SNMP, log logger.Logger) (executor, error) {
	return snmp.Dial(cfg, log)
}

func newRootCmd(selfName string, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "snmp_<host>_airport_<metric> [config]",
		Short:         "Munin SNMP plugin for Apple AirPort base stations",
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), selfName, args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(out)
	// Everything shares stdout so munin-node captures diagnostics too.
	cmd.SetErr(out)
	return cmd
}

func run(ctx context.Context, w io.Writer, selfName string, args []string) error {
	id, ok := identity.Decode(selfName)
	if !ok {
		// Not misconfigured, just not fully named: print guidance and
		// let the run succeed.
		fmt.Fprint(w, usageText)
		return nil
	}

	log := logger.FromEnv(w)
	cfg := config.Load(id.Host)
	log.Debugf("target %s metric %s community %s version %s",
		cfg.Host, id.Metric, cfg.Community, cfg.Version)

	exec, err := dialSNMP(cfg, log)
	if err != nil {
		return errors.Wrapf(err, errors.ExitProtocol,
			"SNMP transport unavailable for %s", cfg.Host)
	}
	defer exec.Close()

	station := airport.NewClient(exec, log)
	m := airport.Metric(id.Metric)

	// Only "config" selects describe mode; anything else falls through to
	// a report run.
	if len(args) > 0 && args[0] == "config" {
		return munin.Describe(ctx, w, id.Host, m, station)
	}

	rep, err := station.Assemble(ctx, m)
	if err != nil {
		return err
	}
	return munin.WriteReport(w, rep)
}

// Run executes one plugin invocation and returns its exit code. Failure
// diagnostics go to the same writer as protocol output, as comment lines.
func Run(argv []string, out io.Writer) errors.ExitCode {
	cmd := newRootCmd(filepath.Base(argv[0]), out)
	cmd.SetArgs(argv[1:])
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(out, "# error: %v\n", err)
		return errors.CodeOf(err)
	}
	return errors.ExitOK
}

// Execute runs the plugin and exits the process.
func Execute() {
	os.Exit(int(Run(os.Args, os.Stdout)))
}
