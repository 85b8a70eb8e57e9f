package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available serial ports",
	Long: `List the serial interfaces visible to this machine.

Real ports are classified by transport (USB with product label when the
descriptor provides one, PCI, Bluetooth). The three virtual ports are always
listed, whether or not they are open.`,
	Run: func(cmd *cobra.Command, args []string) {
		ports := bridge.ListPorts()
		for _, p := range ports {
			fmt.Printf("%-16s %s\n", p.Name, p.Type)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
