package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qgates/gate"
)

// dumper prints the raw A..D fields; Gate.String would otherwise hide them.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

func newShowCmd(a *app) *cobra.Command {
	var (
		angle string
		dump  bool
	)

	cmd := &cobra.Command{
		Use:   "show <gate>",
		Short: "Print one gate",
		Long: `Print a single gate as [[a, b], [c, d]].

The phase shift R requires --angle; fixed gates reject it.
Names are case-insensitive and accept aliases such as hadamard, not and phase.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				g   gate.Gate
				err error
			)
			if cmd.Flags().Changed("angle") {
				theta, perr := parseAngle(angle)
				if perr != nil {
					return perr
				}
				g, err = gate.Lookup(args[0], theta)
			} else {
				g, err = gate.Lookup(args[0])
			}
			if err != nil {
				a.log.Debug("lookup failed", zap.String("gate", args[0]), zap.Error(err))
				return err
			}

			a.log.Debug("gate resolved", zap.String("gate", args[0]), zap.Stringer("matrix", g))
			if dump {
				dumper.Fdump(cmd.OutOrStdout(), g)
				return nil
			}
			a.out.Println(g.String())

			return nil
		},
	}
	cmd.Flags().StringVar(&angle, "angle", "", "angle for R in radians (accepts forms like pi/4)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the Gate value with its Go types")

	return cmd
}
