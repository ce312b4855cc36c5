package cli

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <pipeline.yaml>",
		Short: "Run a YAML transform pipeline",
		Long: `Run a YAML transform pipeline.

The file holds a starting point and a list of steps. A step has an op, an
optional arg, optional dims restricting it to some axes, or a with point
to combine elementwise.

Example file:
  point: [0, 1, 2]
  steps:
    - op: add
      arg: 2
    - op: mul
      arg: 3
      dims: [x, z]`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Emit(runPipeline(rootOpts, args[0]))
		},
	}
	return cmd
}

func runPipeline(opts *RootOptions, path string) (interface{}, error) {
	pipeline, err := LoadPipeline(path)
	if err != nil {
		return nil, err
	}
	opts.log().Debug("pipeline loaded", "path", path, "steps", len(pipeline.Steps))
	p, err := pipeline.Run(opts.log())
	if err != nil {
		return nil, err
	}
	return newResult(p), nil
}
