package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"line-fitter/internal/fit"
	"line-fitter/internal/model"
)

func fitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit [file]",
		Short: "Fit a least-squares line to points read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := loadPoints(args)
			if err != nil {
				return err
			}

			m, b, err := fit.Fit(points)
			if err != nil {
				return err
			}

			line := model.NewLineModel()
			if err := line.Set(m, b); err != nil {
				return err
			}

			fmt.Printf("n = %d\n", len(points))
			fmt.Printf("m = %.6f\n", m)
			fmt.Printf("b = %.6f\n", b)
			fmt.Println(line.Format())
			if loss, ok := fit.Loss(points, m, b); ok {
				fmt.Printf("Loss: %.6f\n", loss)
			}
			return nil
		},
	}
	return cmd
}
