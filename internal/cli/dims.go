package cli

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/viant/pointnd/point"
)

// DimsResult is the payload of the dims command.
type DimsResult struct {
	Dims int `json:"dims"`
}

func (r DimsResult) String() string { return cast.ToString(r.Dims) }

// NewDimsCommand creates the dims command.
func NewDimsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dims <coord>...",
		Short: "Print the number of dimensions of a point",
		Example: `  pointnd dims 1 2 3
  pointnd dims 1,2,3,4`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := rootOpts.formatter(cmd)
			coords, err := parseCoords(toInterfaces(args))
			if err != nil {
				return out.Emit(nil, err)
			}
			return out.Emit(DimsResult{Dims: point.New(coords...).Dims()}, nil)
		},
	}
}
