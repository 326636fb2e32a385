package commands

import (
	"math"

	"github.com/spf13/cobra"

	"gridviz"
)

func casesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cases",
		Short: "List the built-in transformation catalogue",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range gridviz.Cases() {
				m := c.Matrix
				det := m.Det()
				note := ""
				if math.Abs(math.Abs(det)-1) < 1e-12 {
					note = "  isochoric"
				}
				cmd.Printf("%-32s [% .3f % .3f; % .3f % .3f]  det % .3f%s\n",
					c.Name, m.A, m.B, m.C, m.D, det, note)
			}
		},
	}
}
