package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ApplyOptions holds flags for the apply command.
type ApplyOptions struct {
	*RootOptions
	Ops  []string
	Dims string
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApplyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "apply <coord>...",
		Short: "Apply elementwise ops to a point",
		Long: `Apply elementwise ops to a point, in the order given.

Each --op is "name" or "name:arg". With --dims only the listed axes
(x, y, z, w or numeric indexes) are modified.

Ops: add, sub, mul, div, pow (need an argument); sqrt, abs, neg, round.`,
		Example: `  pointnd apply 0 1 2 --op add:2 --op mul:3
  pointnd apply 0 1 2 3 --dims y,w --op mul:2`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).Emit(runApply(opts, args))
		},
	}

	cmd.Flags().StringArrayVar(&opts.Ops, "op", nil, "op to apply, name[:arg] (repeatable)")
	cmd.Flags().StringVar(&opts.Dims, "dims", "", "comma separated axes to modify (default all)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

func runApply(opts *ApplyOptions, args []string) (interface{}, error) {
	pipeline := &Pipeline{Point: toInterfaces(args)}
	for _, spec := range opts.Ops {
		op := ParseOpSpec(spec)
		step := Step{Op: op.Name, Arg: op.Arg}
		if opts.Dims != "" {
			step.Dims = []interface{}{opts.Dims}
		}
		pipeline.Steps = append(pipeline.Steps, step)
	}
	if len(pipeline.Steps) == 0 {
		return nil, fmt.Errorf("at least one --op is required")
	}
	p, err := pipeline.Run(opts.log())
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}
