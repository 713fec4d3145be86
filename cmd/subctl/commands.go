package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/rhsm-sync/internal/adapter"
	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/utils"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	defaultTokenSubject = "subctl"
	defaultTokenTTL     = time.Hour
)

const usage = `usage: subctl [-api url] [-token T] <command> [args]

commands:
  status                      print service status, summary and products
  refresh                     ask the agent for a status refresh
  history [-n N]              print the last N recorded snapshots
  register -org ORG (-keys K1,K2 | -user U -password P)
           [-url URL] [-proxy-server HOST:PORT] [-proxy-user U] [-proxy-pass P]
  unregister                  remove the system registration
  version                     print the agent version
  token [-sub S] [-ttl D]     mint a bearer token with the local sign key
`

var errUsage = errors.New("invalid usage")

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

type command func(ctx context.Context, api adapter.APIClient, cfg config.CtlConfig, args []string, out io.Writer) error

var commands = map[string]command{
	"status":     statusCmd,
	"refresh":    refreshCmd,
	"history":    historyCmd,
	"register":   registerCmd,
	"unregister": unregisterCmd,
	"version":    versionCmd,
	"token":      tokenCmd,
}

// run dispatches args[0] and returns the process exit code.
func run(ctx context.Context, api adapter.APIClient, cfg config.CtlConfig, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(errOut, usage)
		return exitUsage
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(errOut, "unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}

	if err := cmd(ctx, api, cfg, args[1:], out); err != nil {
		fmt.Fprintf(errOut, "subctl %s: %v\n", args[0], err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}

	return exitOK
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}
	return nil
}

func statusCmd(ctx context.Context, api adapter.APIClient, _ config.CtlConfig, args []string, out io.Writer) error {
	if err := parseFlags(newFlagSet("status"), args); err != nil {
		return err
	}

	state, err := api.State(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Service status: %s\n", state.ServiceStatus)
	fmt.Fprintf(out, "Status:         %s\n", valueOrDash(state.Status))
	if state.Error != "" {
		fmt.Fprintf(out, "Last error:     %s\n", state.Error)
	}

	if len(state.Products) == 0 {
		fmt.Fprintln(out, "No installed products.")
		return nil
	}
	fmt.Fprintln(out, productTable(state.Products))
	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func productTable(products []models.ProductRecord) string {
	t := newTable("PRODUCT", "ID", "VERSION", "ARCH", "STATUS")

	for _, p := range products {
		t.Row(p.ProductName, p.ProductID, p.Version, p.Arch, p.Status)
	}
	return t.String()
}

func refreshCmd(ctx context.Context, api adapter.APIClient, _ config.CtlConfig, args []string, out io.Writer) error {
	if err := parseFlags(newFlagSet("refresh"), args); err != nil {
		return err
	}
	if err := api.Refresh(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Refresh requested.")
	return nil
}

func historyCmd(ctx context.Context, api adapter.APIClient, _ config.CtlConfig, args []string, out io.Writer) error {
	fs := newFlagSet("history")
	n := fs.Int("n", 20, "number of snapshots")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *n <= 0 {
		return fmt.Errorf("%w: -n must be positive", errUsage)
	}

	snapshots, err := api.History(ctx, *n)
	if err != nil {
		return err
	}
	if len(snapshots) == 0 {
		fmt.Fprintln(out, "No snapshots recorded.")
		return nil
	}

	t := newTable("ID", "TAKEN AT", "SERVICE STATUS", "STATUS", "PRODUCTS", "ERROR")
	for _, s := range snapshots {
		t.Row(
			fmt.Sprint(s.ID),
			s.TakenAt.Local().Format(time.DateTime),
			s.ServiceStatus.String(),
			valueOrDash(s.Status),
			fmt.Sprint(len(s.Products)),
			valueOrDash(s.Error),
		)
	}
	fmt.Fprintln(out, t.String())
	return nil
}

func registerCmd(ctx context.Context, api adapter.APIClient, _ config.CtlConfig, args []string, out io.Writer) error {
	var details models.RegistrationDetails

	fs := newFlagSet("register")
	fs.StringVar(&details.Org, "org", "", "organization")
	fs.StringVar(&details.ActivationKeys, "keys", "", "comma-separated activation keys")
	fs.StringVar(&details.User, "user", "", "user name")
	fs.StringVar(&details.Password, "password", "", "password")
	fs.StringVar(&details.URL, "url", "", "entitlement server URL")
	fs.StringVar(&details.ProxyServer, "proxy-server", "", "proxy host:port")
	fs.StringVar(&details.ProxyUser, "proxy-user", "", "proxy user")
	fs.StringVar(&details.ProxyPass, "proxy-pass", "", "proxy password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	details.Proxy = details.ProxyServer != ""
	if err := details.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if err := api.Register(ctx, details); err != nil {
		return err
	}
	fmt.Fprintf(out, "System registered to %s.\n", details.Org)
	return nil
}

func unregisterCmd(ctx context.Context, api adapter.APIClient, _ config.CtlConfig, args []string, out io.Writer) error {
	if err := parseFlags(newFlagSet("unregister"), args); err != nil {
		return err
	}
	if err := api.Unregister(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Unregister requested.")
	return nil
}

func versionCmd(ctx context.Context, api adapter.APIClient, _ config.CtlConfig, args []string, out io.Writer) error {
	if err := parseFlags(newFlagSet("version"), args); err != nil {
		return err
	}
	v, err := api.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, v)
	return nil
}

func tokenCmd(_ context.Context, _ adapter.APIClient, cfg config.CtlConfig, args []string, out io.Writer) error {
	fs := newFlagSet("token")
	subject := fs.String("sub", defaultTokenSubject, "token subject")
	ttl := fs.Duration("ttl", defaultTokenTTL, "token lifetime")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *ttl <= 0 {
		return fmt.Errorf("%w: -ttl must be positive", errUsage)
	}
	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer must be configured", errUsage)
	}

	token, err := utils.GenerateJWTToken(cfg.TokenIssuer, *subject, *ttl, cfg.TokenSignKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

func valueOrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
