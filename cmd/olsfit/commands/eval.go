package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"line-fitter/internal/fit"
	"line-fitter/internal/model"
)

func evalCmd() *cobra.Command {
	var m, b float64

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Compute the loss of a given line over points from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := model.NewLineModel()
			if err := line.Set(m, b); err != nil {
				return err
			}

			points, err := loadPoints(args)
			if err != nil {
				return err
			}

			loss, ok := fit.Loss(points, m, b)
			if !ok {
				return fmt.Errorf("no points; loss is undefined")
			}

			fmt.Println(line.Format())
			fmt.Printf("Loss: %.6f\n", loss)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&m, "slope", "m", 1.0, "line slope")
	cmd.Flags().Float64VarP(&b, "intercept", "b", 0.0, "line intercept")
	return cmd
}
