// main.go
// A tiny Cobra-based CLI that wires into the regclient package.
// Place under ./cmd/regctl and run `go run . <subcommand>`.
//
// Subcommands
//   get, list, check                        – read-only lookups
//   register, update, delete                – lifecycle mutations
//   transfer, push, transfer-info           – transfer handling
//   renew, restore                          – billing-relevant mutations
//
// Flags map 1:1 onto the optional request fields; a flag that is not passed
// is not sent, so the registry default (or the current value) applies.
//
// Env options for client:
//   REGCTL_API_KEY, REGCTL_BASE_URL, REGCTL_UA, REGCTL_TIMEOUT
//
// Run examples
//   ./regctl get example.com
//   ./regctl list --limit 10
//   ./regctl check example.com
//   ./regctl register example.com --customer cust1 --registrant reg1
//   ./regctl update example.com --auto-renew=false --status CLIENT_HOLD
//   ./regctl renew example.com --period 1 --quote
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	rc "github.com/datum-labs/registrar"
)

func main() {
	root := &cobra.Command{
		Use:   "regctl",
		Short: "Domain registrar CLI",
	}

	root.AddCommand(
		cmdGet(), cmdList(), cmdCheck(),
		cmdRegister(), cmdUpdate(), cmdDelete(),
		cmdTransfer(), cmdPush(), cmdTransferInfo(),
		cmdRenew(), cmdRestore(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

// newClient constructs the regclient.Client with env-configured options.
func newClient() *rc.Client {
	opts := []rc.Option{}
	if key := os.Getenv("REGCTL_API_KEY"); key != "" {
		opts = append(opts, rc.WithAPIKey(key))
	}
	if u := os.Getenv("REGCTL_BASE_URL"); u != "" {
		opts = append(opts, rc.WithBaseURL(u))
	}
	if ua := os.Getenv("REGCTL_UA"); ua != "" {
		opts = append(opts, rc.WithUserAgent(ua))
	}
	if to := os.Getenv("REGCTL_TIMEOUT"); to != "" {
		if d, err := time.ParseDuration(to); err == nil {
			opts = append(opts, rc.WithTimeout(d))
		}
	}
	return rc.New(opts...)
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func cmdGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <domain>",
		Short: "Fetch domain details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := newClient().Details(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(d)
		},
	}
}

func cmdList() *cobra.Command {
	var limit, offset int
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List domains in the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts rc.ListOptions
			if cmd.Flags().Changed("limit") {
				opts.Limit = rc.Int(limit)
			}
			if cmd.Flags().Changed("offset") {
				opts.Offset = rc.Int(offset)
			}
			if cmd.Flags().Changed("search") {
				opts.Search = rc.String(search)
			}
			col, err := newClient().List(context.Background(), opts)
			if err != nil {
				return err
			}
			return printJSON(col)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&search, "search", "", "substring filter")
	return cmd
}

func cmdCheck() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "check <domain>",
		Short: "Check availability of a domain name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := newClient().Check(context.Background(), args[0], lang)
			if err != nil {
				return err
			}
			return printJSON(a)
		},
	}
	cmd.Flags().StringVar(&lang, "language", "", "IDN language code")
	return cmd
}

func cmdRegister() *cobra.Command {
	var req rc.RegisterRequest
	var privacy, autoRenew, skipValidation, quote bool
	var period int
	var authcode, lang, launchPhase string
	var ns []string

	cmd := &cobra.Command{
		Use:   "register <domain>",
		Short: "Register a new domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("privacy-protect") {
				req.PrivacyProtect = rc.Bool(privacy)
			}
			if f.Changed("auto-renew") {
				req.AutoRenew = rc.Bool(autoRenew)
			}
			if f.Changed("skip-validation") {
				req.SkipValidation = rc.Bool(skipValidation)
			}
			if f.Changed("quote") {
				req.Quote = rc.Bool(quote)
			}
			if f.Changed("period") {
				req.Period = rc.Int(period)
			}
			if f.Changed("authcode") {
				req.Authcode = rc.String(authcode)
			}
			if f.Changed("language") {
				req.LanguageCode = rc.String(lang)
			}
			if f.Changed("launch-phase") {
				req.LaunchPhase = rc.String(launchPhase)
			}
			if f.Changed("ns") {
				req.NS = ns
			}
			reg, err := newClient().Register(context.Background(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(reg)
		},
	}
	cmd.Flags().StringVar(&req.Customer, "customer", "", "customer handle (required)")
	cmd.Flags().StringVar(&req.Registrant, "registrant", "", "registrant contact handle (required)")
	cmd.Flags().BoolVar(&privacy, "privacy-protect", false, "enable WHOIS privacy")
	cmd.Flags().BoolVar(&autoRenew, "auto-renew", true, "renew automatically before expiry")
	cmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "skip registry-side validation")
	cmd.Flags().BoolVar(&quote, "quote", false, "return pricing instead of registering")
	cmd.Flags().IntVar(&period, "period", 0, "registration period in years")
	cmd.Flags().StringVar(&authcode, "authcode", "", "EPP authorization code")
	cmd.Flags().StringVar(&lang, "language", "", "IDN language code")
	cmd.Flags().StringVar(&launchPhase, "launch-phase", "", "TLD launch phase")
	cmd.Flags().StringSliceVar(&ns, "ns", nil, "nameserver hostnames")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("registrant")
	return cmd
}

func cmdUpdate() *cobra.Command {
	var req rc.UpdateRequest
	var registrant, authcode, lang, agent string
	var privacy, autoRenew bool
	var period int
	var ns, statuses []string

	cmd := &cobra.Command{
		Use:   "update <domain>",
		Short: "Update fields on an existing domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("registrant") {
				req.Registrant = rc.String(registrant)
			}
			if f.Changed("privacy-protect") {
				req.PrivacyProtect = rc.Bool(privacy)
			}
			if f.Changed("auto-renew") {
				req.AutoRenew = rc.Bool(autoRenew)
			}
			if f.Changed("period") {
				req.Period = rc.Int(period)
			}
			if f.Changed("authcode") {
				req.Authcode = rc.String(authcode)
			}
			if f.Changed("language") {
				req.LanguageCode = rc.String(lang)
			}
			if f.Changed("ns") {
				req.NS = ns
			}
			if f.Changed("status") {
				req.Statuses = make([]rc.DomainStatus, 0, len(statuses))
				for _, s := range statuses {
					req.Statuses = append(req.Statuses, rc.DomainStatus(s))
				}
			}
			if f.Changed("designated-agent") {
				a := rc.DesignatedAgent(agent)
				req.DesignatedAgent = &a
			}
			return newClient().Update(context.Background(), args[0], req)
		},
	}
	cmd.Flags().StringVar(&registrant, "registrant", "", "registrant contact handle")
	cmd.Flags().BoolVar(&privacy, "privacy-protect", false, "enable WHOIS privacy")
	cmd.Flags().BoolVar(&autoRenew, "auto-renew", true, "renew automatically before expiry")
	cmd.Flags().IntVar(&period, "period", 0, "registration period in years")
	cmd.Flags().StringVar(&authcode, "authcode", "", "EPP authorization code")
	cmd.Flags().StringVar(&lang, "language", "", "IDN language code")
	cmd.Flags().StringSliceVar(&ns, "ns", nil, "nameserver hostnames")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "domain status codes")
	cmd.Flags().StringVar(&agent, "designated-agent", "", "designated agent (NONE|OLD|NEW|BOTH)")
	return cmd
}

func cmdDelete() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <domain>",
		Short: "Delete a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().Delete(context.Background(), args[0])
		},
	}
}

func cmdTransfer() *cobra.Command {
	var req rc.TransferRequest
	var privacy, autoRenew bool
	var period int
	var authcode, agent string
	var ns []string

	cmd := &cobra.Command{
		Use:   "transfer <domain>",
		Short: "Request an inbound domain transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("privacy-protect") {
				req.PrivacyProtect = rc.Bool(privacy)
			}
			if f.Changed("auto-renew") {
				req.AutoRenew = rc.Bool(autoRenew)
			}
			if f.Changed("period") {
				req.Period = rc.Int(period)
			}
			if f.Changed("authcode") {
				req.Authcode = rc.String(authcode)
			}
			if f.Changed("ns") {
				req.NS = ns
			}
			if f.Changed("designated-agent") {
				a := rc.DesignatedAgent(agent)
				req.DesignatedAgent = &a
			}
			return newClient().Transfer(context.Background(), args[0], req)
		},
	}
	cmd.Flags().StringVar(&req.Customer, "customer", "", "customer handle (required)")
	cmd.Flags().StringVar(&req.Registrant, "registrant", "", "registrant contact handle (required)")
	cmd.Flags().BoolVar(&privacy, "privacy-protect", false, "enable WHOIS privacy")
	cmd.Flags().BoolVar(&autoRenew, "auto-renew", true, "renew automatically before expiry")
	cmd.Flags().IntVar(&period, "period", 0, "transfer period in years")
	cmd.Flags().StringVar(&authcode, "authcode", "", "EPP authorization code")
	cmd.Flags().StringSliceVar(&ns, "ns", nil, "nameserver hostnames")
	cmd.Flags().StringVar(&agent, "designated-agent", "", "designated agent (NONE|OLD|NEW|BOTH)")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("registrant")
	return cmd
}

func cmdPush() *cobra.Command {
	var recipient string
	cmd := &cobra.Command{
		Use:   "push <domain>",
		Short: "Push a domain to a receiving registrar",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return newClient().PushTransfer(context.Background(), args[0], recipient)
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "receiving registrar (required)")
	_ = cmd.MarkFlagRequired("recipient")
	return cmd
}

func cmdTransferInfo() *cobra.Command {
	var processID int64
	cmd := &cobra.Command{
		Use:   "transfer-info <domain>",
		Short: "Show the status of a transfer process",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			st, err := newClient().TransferInfo(context.Background(), args[0], processID)
			if err != nil {
				return err
			}
			return printJSON(st)
		},
	}
	cmd.Flags().Int64Var(&processID, "process-id", 0, "transfer process id (required)")
	_ = cmd.MarkFlagRequired("process-id")
	return cmd
}

func cmdRenew() *cobra.Command {
	var period int
	var quote bool
	cmd := &cobra.Command{
		Use:   "renew <domain>",
		Short: "Renew a domain registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rc.RenewOptions
			if cmd.Flags().Changed("quote") {
				opts.Quote = rc.Bool(quote)
			}
			expiry, err := newClient().Renew(context.Background(), args[0], period, opts)
			if err != nil {
				return err
			}
			fmt.Println(expiry.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().IntVar(&period, "period", 1, "renewal period in years")
	cmd.Flags().BoolVar(&quote, "quote", false, "return pricing instead of renewing")
	return cmd
}

func cmdRestore() *cobra.Command {
	var reason string
	var quote bool
	cmd := &cobra.Command{
		Use:   "restore <domain>",
		Short: "Restore a deleted domain from redemption",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rc.RestoreOptions
			if cmd.Flags().Changed("quote") {
				opts.Quote = rc.Bool(quote)
			}
			expiry, err := newClient().Restore(context.Background(), args[0], reason, opts)
			if err != nil {
				return err
			}
			fmt.Println(expiry.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "restore reason (required)")
	cmd.Flags().BoolVar(&quote, "quote", false, "return pricing instead of restoring")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}
