package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/slashdevops/id128"
)

type (
	getter  func(*id128.Provider) (id128.ID, error)
	deriver func(*id128.Provider, id128.ID) (id128.ID, error)
)

// newIDCmd builds a command printing one system ID, optionally hashed with --app.
func newIDCmd(o *options, kind, short string, get getter, derive deriver) *cobra.Command {
	var app string

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rec := idRecord{Kind: kind}

			var (
				id  id128.ID
				err error
			)
			if app != "" {
				appID, perr := parseApp(app)
				if perr != nil {
					return perr
				}
				rec.App = o.text(appID)
				id, err = derive(o.provider, appID)
			} else {
				id, err = get(o.provider)
			}
			if err != nil {
				return fmt.Errorf("%s ID: %w", kind, err)
			}
			rec.ID = o.text(id)

			return o.render(cmd.OutOrStdout(), rec, func(w io.Writer) error {
				return writeText(w, "%s\n", rec.ID)
			})
		},
	}

	cmd.Flags().StringVarP(&app, "app", "a", "", "Application ID to derive an app-specific ID from")

	return cmd
}

func newBootCmd(o *options) *cobra.Command {
	return newIDCmd(o, "boot", "Print the boot ID of the running kernel",
		(*id128.Provider).BootID, (*id128.Provider).BootIDAppSpecific)
}

func newMachineCmd(o *options) *cobra.Command {
	return newIDCmd(o, "machine", "Print the machine ID of this system",
		(*id128.Provider).MachineID, (*id128.Provider).MachineIDAppSpecific)
}

func newInvocationCmd(o *options) *cobra.Command {
	return newIDCmd(o, "invocation", "Print the invocation ID of the current systemd service",
		(*id128.Provider).InvocationID, (*id128.Provider).InvocationIDAppSpecific)
}

func newRandomCmd(o *options) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random (UUID v4 compatible) IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("-n must be at least 1, got %d", count)
			}

			recs := make([]idRecord, 0, count)
			for range count {
				id, err := o.provider.RandomID()
				if err != nil {
					return fmt.Errorf("random ID: %w", err)
				}
				recs = append(recs, idRecord{Kind: "random", ID: o.text(id), Version: int(id.Version())})
			}

			var v any = recs
			if count == 1 {
				v = recs[0]
			}

			return o.render(cmd.OutOrStdout(), v, func(w io.Writer) error {
				for _, r := range recs {
					if err := writeText(w, "%s\n", r.ID); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of IDs to generate")

	return cmd
}

func newShowCmd(o *options) *cobra.Command {
	var app string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the boot, machine and invocation IDs together",
		Long: `show prints every system ID at once. IDs that are not available, such as the
invocation ID outside a systemd service, are reported in place of the value.
The command fails only when none of the IDs could be retrieved.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				appID  id128.ID
				hashed bool
			)
			if app != "" {
				var err error
				if appID, err = parseApp(app); err != nil {
					return err
				}
				hashed = true
			}

			entries := []struct {
				kind   string
				get    getter
				derive deriver
			}{
				{"boot", (*id128.Provider).BootID, (*id128.Provider).BootIDAppSpecific},
				{"machine", (*id128.Provider).MachineID, (*id128.Provider).MachineIDAppSpecific},
				{"invocation", (*id128.Provider).InvocationID, (*id128.Provider).InvocationIDAppSpecific},
			}

			recs := make([]idRecord, 0, len(entries))
			var errs []error
			for _, e := range entries {
				rec := idRecord{Kind: e.kind}

				var (
					id  id128.ID
					err error
				)
				if hashed {
					rec.App = o.text(appID)
					id, err = e.derive(o.provider, appID)
				} else {
					id, err = e.get(o.provider)
				}
				if err != nil {
					rec.Error = err.Error()
					errs = append(errs, fmt.Errorf("%s ID: %w", e.kind, err))
				} else {
					rec.ID = o.text(id)
				}
				recs = append(recs, rec)
			}

			if len(errs) == len(entries) {
				return errors.Join(errs...)
			}

			return o.render(cmd.OutOrStdout(), recs, func(w io.Writer) error {
				for _, r := range recs {
					value := r.ID
					if r.Error != "" {
						value = "unavailable (" + r.Error + ")"
					}
					if err := writeText(w, "%-10s %s\n", r.Kind+":", value); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&app, "app", "a", "", "Application ID to derive app-specific IDs from")

	return cmd
}
