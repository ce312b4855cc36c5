package cli

import (
	"github.com/spf13/cobra"
)

// ZipOptions holds flags for the zip command.
type ZipOptions struct {
	*RootOptions
	With string
	Op   string
}

// NewZipCommand creates the zip command.
func NewZipCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ZipOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "zip <coord>...",
		Short: "Combine a point with a second point elementwise",
		Long: `Combine a point with a second point of the same dimension.

Ops: add, sub, mul, div, pow. div fails when the second point holds a zero.`,
		Example:       `  pointnd zip 4 9 --with 2,3 --op div`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).Emit(runZip(opts, args))
		},
	}

	cmd.Flags().StringVar(&opts.With, "with", "", "comma separated coordinates of the second point")
	cmd.Flags().StringVar(&opts.Op, "op", "", "op combining the points")
	_ = cmd.MarkFlagRequired("with")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

func runZip(opts *ZipOptions, args []string) (interface{}, error) {
	op := ParseOpSpec(opts.Op)
	pipeline := &Pipeline{
		Point: toInterfaces(args),
		Steps: []Step{{Op: op.Name, Arg: op.Arg, With: []interface{}{opts.With}}},
	}
	p, err := pipeline.Run(opts.log())
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}
