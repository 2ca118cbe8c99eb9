package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/slashdevops/id128"
)

// parseRecord shows one parsed ID in every layout.
type parseRecord struct {
	Input   string `json:"input" yaml:"input"`
	RFC     string `json:"rfc" yaml:"rfc"`
	Hex     string `json:"hex" yaml:"hex"`
	Simple  string `json:"simple" yaml:"simple"`
	Version int    `json:"version" yaml:"version"`
	Variant string `json:"variant" yaml:"variant"`
}

func newParseCmd(o *options) *cobra.Command {
	var lax, native bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse an ID and print it in every layout",
		Long: `parse accepts an ID as 32 hex digits, in RFC layout or in simple layout, in
any letter case. --lax additionally ignores surrounding blanks and misplaced
dashes; --native uses libsystemd's own parser instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lax && native {
				return fmt.Errorf("--lax and --native are mutually exclusive")
			}

			var (
				id  id128.ID
				err error
			)
			switch {
			case native:
				id, err = o.provider.ParseNative(args[0])
			case lax:
				id, err = id128.ParseLax(args[0])
			default:
				id, err = id128.Parse(args[0])
			}
			if err != nil {
				return err
			}

			c := id128.Lower
			if o.upper {
				c = id128.Upper
			}

			rec := parseRecord{
				Input:   args[0],
				RFC:     id.Text(id128.FormatRFC, c),
				Hex:     id.Text(id128.FormatHex, c),
				Simple:  id.Text(id128.FormatSimple, c),
				Version: int(id.Version()),
				Variant: id.Variant().String(),
			}

			return o.render(cmd.OutOrStdout(), rec, func(w io.Writer) error {
				return writeText(w, "rfc:     %s\nhex:     %s\nsimple:  %s\nversion: %d\nvariant: %s\n",
					rec.RFC, rec.Hex, rec.Simple, rec.Version, rec.Variant)
			})
		},
	}

	cmd.Flags().BoolVar(&lax, "lax", false, "Ignore blanks and dashes")
	cmd.Flags().BoolVar(&native, "native", false, "Parse with libsystemd")

	return cmd
}
