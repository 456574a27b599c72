package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Blackdeer1524/compositehash/src/app"
	"github.com/Blackdeer1524/compositehash/src/person"
	"github.com/Blackdeer1524/compositehash/src/verify"
)

const completionLine = "All checks passed"

type rootFlags struct {
	dotenv     string
	primitives string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "hashcheck",
		Short:         "Checks composite Person/Address hashes for correctness and distribution",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flags.dotenv, "env-file", ".env", "dotenv file to load if present")
	root.PersistentFlags().StringVar(&flags.primitives, "primitives", "", "primitive hash backend: xxhash or fnv")

	root.AddCommand(newRunCmd(&flags), newHashCmd(&flags))

	return root
}

func newEntrypoint(cmd *cobra.Command, flags *rootFlags, override func(*app.Entrypoint)) *app.Entrypoint {
	e := &app.Entrypoint{DotenvPath: flags.dotenv}
	if override != nil {
		override(e)
	}

	if cmd.Flags().Changed("primitives") {
		prev := e.Override
		e.Override = func(env *app.EnvVars) {
			if prev != nil {
				prev(env)
			}
			env.Primitives = flags.primitives
		}
	}

	return e
}

func newRunCmd(flags *rootFlags) *cobra.Command {
	var (
		opts       = verify.DefaultOptions()
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every check and print a line per check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			e := newEntrypoint(cmd, flags, func(e *app.Entrypoint) {
				e.Override = func(env *app.EnvVars) {
					f := cmd.Flags()
					if f.Changed("seed") {
						env.Seed = opts.Seed
					}
					if f.Changed("buckets") {
						env.Buckets = opts.Buckets
					}
					if f.Changed("bucket-size") {
						env.BucketSize = opts.BucketSize
					}
					if f.Changed("critical-value") {
						env.CriticalValue = opts.CriticalValue
					}
					if f.Changed("iterations") {
						env.PurityIterations = opts.PurityIterations
					}
					if f.Changed("report") {
						env.ReportPath = reportPath
					}
				}
			})

			if err := e.Init(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, e.Close())
			}()

			rep, err := e.Run(cmd.Context())

			out := cmd.OutOrStdout()
			for _, res := range rep.Results {
				if res.Passed {
					fmt.Fprintf(out, "%s OK\n", res.Name)
				} else {
					fmt.Fprintf(out, "%s fail: %s\n", res.Name, res.Error)
				}
			}

			if err != nil {
				return err
			}

			fmt.Fprintln(out, completionLine)
			return nil
		},
	}

	f := cmd.Flags()
	f.Uint64Var(&opts.Seed, "seed", opts.Seed, "workload generator seed")
	f.Uint64Var(&opts.Buckets, "buckets", opts.Buckets, "number of distribution buckets")
	f.Uint64Var(&opts.BucketSize, "bucket-size", opts.BucketSize, "expected values per bucket")
	f.Float64Var(&opts.CriticalValue, "critical-value", opts.CriticalValue, "upper bound for the pearson statistic")
	f.IntVar(&opts.PurityIterations, "iterations", opts.PurityIterations, "purity check repetitions")
	f.StringVar(&reportPath, "report", "", "write a YAML report to this path")

	return cmd
}

func newHashCmd(flags *rootFlags) *cobra.Command {
	p := person.Person{}

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the composite hash of one person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			e := newEntrypoint(cmd, flags, nil)
			if err := e.Init(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, e.Close())
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", p, e.Hasher().Hash(p))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&p.Name, "name", "", "person name")
	f.IntVar(&p.Height, "height", 0, "height")
	f.Float64Var(&p.Weight, "weight", 0, "weight")
	f.StringVar(&p.Address.City, "city", "", "address city")
	f.StringVar(&p.Address.Street, "street", "", "address street")
	f.IntVar(&p.Address.Building, "building", 0, "address building number")

	return cmd
}
