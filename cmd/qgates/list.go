package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qgates/gate"
)

func newListCmd(a *app) *cobra.Command {
	var angle string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every gate in the catalogue",
		Long:  "Print a table of every catalogue gate and its matrix. R is rendered at --angle.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theta, err := parseAngle(angle)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(gate.Names()))
			for _, n := range gate.Names() {
				var g gate.Gate
				label := string(n)
				if gate.Parameterized(n) {
					g, err = gate.Lookup(label, theta)
					label += "(" + angle + ")"
				} else {
					g, err = gate.Lookup(label)
				}
				if err != nil {
					return err
				}
				rows = append(rows, []string{label, g.String()})
			}

			a.log.Debug("listing catalogue", zap.Int("gates", len(rows)), zap.Float32("angle", theta))
			a.out.Table([]string{"NAME", "MATRIX"}, rows)

			return nil
		},
	}
	cmd.Flags().StringVar(&angle, "angle", "0", "angle for R in radians (accepts forms like pi/4)")

	return cmd
}
