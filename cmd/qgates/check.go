package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qgates/gate"
	"github.com/katalvlaran/qgates/internal/unitary"
)

// errCheckFailed is returned when at least one gate fails the unitarity check.
var errCheckFailed = errors.New("check: one or more gates are not unitary")

// checkAngles is the sweep R is validated over.
var checkAngles = []string{"0", "pi/4", "pi/2", "pi", "-pi/3", "3pi/2"}

type checkCase struct {
	label string
	g     gate.Gate
}

func checkCases() ([]checkCase, error) {
	var cases []checkCase
	for _, n := range gate.Names() {
		if !gate.Parameterized(n) {
			g, err := gate.Lookup(string(n))
			if err != nil {
				return nil, err
			}
			cases = append(cases, checkCase{label: string(n), g: g})
			continue
		}
		for _, s := range checkAngles {
			theta, err := parseAngle(s)
			if err != nil {
				return nil, err
			}
			g, err := gate.Lookup(string(n), theta)
			if err != nil {
				return nil, err
			}
			cases = append(cases, checkCase{label: fmt.Sprintf("%s(%s)", n, s), g: g})
		}
	}

	return cases, nil
}

func newCheckCmd(a *app) *cobra.Command {
	var epsilon float64

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every catalogue gate is unitary",
		Long:  "Check G†G = I within epsilon for every fixed gate and for R over a sweep of angles.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eps := a.cfg.Check.Epsilon
			if cmd.Flags().Changed("epsilon") {
				override := *a.cfg
				override.Check.Epsilon = epsilon
				if err := override.Validate(); err != nil {
					return fmt.Errorf("--epsilon: %w", err)
				}
				eps = epsilon
			}

			cases, err := checkCases()
			if err != nil {
				return err
			}

			failed := 0
			for _, c := range cases {
				verr := unitary.Validate(c.g, unitary.WithEpsilon(eps))
				dev := unitary.Deviation(c.g)
				a.out.Result(verr == nil, c.label, fmt.Sprintf("deviation=%.3g", dev))
				if verr != nil {
					failed++
					a.log.Warn("gate failed unitarity check",
						zap.String("gate", c.label),
						zap.Float64("deviation", dev),
						zap.Error(verr),
					)
				}
			}

			a.log.Info("unitarity check finished",
				zap.Int("gates", len(cases)),
				zap.Int("failed", failed),
				zap.Float64("epsilon", eps),
			)
			if failed > 0 {
				return errCheckFailed
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&epsilon, "epsilon", unitary.DefaultEpsilon, "entrywise tolerance for G†G = I")

	return cmd
}
