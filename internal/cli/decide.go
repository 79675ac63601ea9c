package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"volteryde-gate/internal/config"
	"volteryde-gate/internal/endpoints"
	"volteryde-gate/internal/gate"

	"github.com/spf13/cobra"
)

type decideOptions struct {
	cookie      string
	appID       string
	environment string
	identityURL string
	allowlist   []string
	now         string
	client      bool
}

// decideOutput is the JSON printed by the decide command.
type decideOutput struct {
	Decision   string `json:"decision"`
	Location   string `json:"location,omitempty"`
	Credential string `json:"credential,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

var decideCmd = newDecideCmd()

func newDecideCmd() *cobra.Command {
	opts := &decideOptions{}

	cmd := &cobra.Command{
		Use:   "decide [absolute-url]",
		Short: "Evaluate one request offline and print the decision",
		Long: `Run the gate decision for a single URL and session cookie without starting
a server. Useful for checking allowlists and credential expiry.

Settings come from --config when given; flags override them.

Example:
  volteryde-gate decide "https://bi.example.com/dashboard" --app-id bi-partner \
    --cookie "abc.eyJleHAiOjEwMH0.sig"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecide(cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.cookie, "cookie", "", "session cookie value")
	flags.StringVar(&opts.appID, "app-id", "", "application id sent to the identity provider")
	flags.StringVar(&opts.environment, "environment", string(endpoints.EnvironmentDevelopment), "deployment environment")
	flags.StringVar(&opts.identityURL, "idp-url", "", "identity provider base URL (default: per environment)")
	flags.StringSliceVar(&opts.allowlist, "allow", gate.DefaultAllowlist, "path prefixes that skip the gate")
	flags.StringVar(&opts.now, "now", "", "evaluation time in RFC 3339 (default: current time)")
	flags.BoolVar(&opts.client, "client", false, "evaluate like the browser guard, without checking exp")

	return cmd
}

func init() {
	rootCmd.AddCommand(decideCmd)
}

func runDecide(cmd *cobra.Command, opts *decideOptions, rawURL string) error {
	if err := opts.applyConfig(cmd); err != nil {
		return err
	}

	target, err := url.Parse(rawURL)
	if err != nil || !target.IsAbs() || target.Host == "" {
		return fmt.Errorf("decide needs an absolute URL, got %q", rawURL)
	}

	if opts.appID == "" {
		return fmt.Errorf("--app-id is required without --config")
	}

	env, err := endpoints.ParseEnvironment(opts.environment)
	if err != nil {
		return err
	}

	resolver, err := endpoints.NewResolver(env, map[endpoints.Environment]string{env: opts.identityURL})
	if err != nil {
		return err
	}

	gateOpts := []gate.Option{gate.WithAllowlist(opts.allowlist...)}
	if opts.now != "" {
		now, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		gateOpts = append(gateOpts, gate.WithClock(func() time.Time { return now }))
	}
	if opts.client {
		gateOpts = append(gateOpts, gate.WithoutCredentialValidation())
	}

	decision := gate.New(opts.appID, resolver, gateOpts...).Evaluate(gate.Request{
		URL:           target,
		Credential:    opts.cookie,
		HasCredential: opts.cookie != "",
	})

	out := decideOutput{
		Decision:   decision.Kind.String(),
		Location:   decision.Location,
		Credential: decision.Credential,
	}
	if decision.Reason != nil {
		out.Reason = decision.Reason.Error()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// applyConfig fills every flag the user did not set from the config file.
func (o *decideOptions) applyConfig(cmd *cobra.Command) error {
	if cfgFile == "" {
		return nil
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("app-id") {
		o.appID = cfg.Gate.AppID
	}
	if !flags.Changed("environment") {
		o.environment = cfg.Gate.Environment
	}
	if !flags.Changed("idp-url") {
		o.identityURL = cfg.IdentityProvider.URLs[cfg.Gate.Environment]
	}
	if !flags.Changed("allow") {
		o.allowlist = cfg.Gate.Allowlist
	}

	return nil
}
