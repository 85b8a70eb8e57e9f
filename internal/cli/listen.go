package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	serial "github.com/wllcyg/serialdesk"
)

var listenCmd = &cobra.Command{
	Use:   "listen <port>",
	Short: "Open a port and print incoming bytes until interrupted",
	Long: `Open the named port and poll it for data until Ctrl+C.

Each poll waits up to --read-timeout for bytes; empty polls are silent. The
port is closed on exit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		baud, _ := cmd.Flags().GetInt("baud")
		dataBits, _ := cmd.Flags().GetInt("data-bits")
		stopBits, _ := cmd.Flags().GetInt("stop-bits")
		parity, _ := cmd.Flags().GetString("parity")
		readTimeout, _ := cmd.Flags().GetDuration("read-timeout")
		asHex, _ := cmd.Flags().GetBool("hex")

		msg, err := bridge.OpenPort(serial.Config{
			PortName: name,
			BaudRate: baud,
			DataBits: dataBits,
			StopBits: stopBits,
			Parity:   parity,
		})
		if err != nil {
			return err
		}
		fmt.Println(msg)
		defer func() {
			if _, cerr := bridge.ClosePort(name); cerr != nil {
				log.Warn().Err(cerr).Str("port", name).Msg("close failed")
			}
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Info().Str("port", name).Dur("read_timeout", readTimeout).Msg("listening")
		for {
			select {
			case <-ctx.Done():
				fmt.Println()
				return nil
			default:
			}

			data, err := bridge.ReadData(name, readTimeout)
			if err != nil {
				return err
			}
			if len(data) == 0 {
				// Virtual reads return instantly; pace the poll loop.
				if serial.IsVirtualPort(name) {
					time.Sleep(readTimeout)
				}
				continue
			}
			if asHex {
				fmt.Printf("% X\n", data)
			} else {
				fmt.Printf("%s", data)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)

	listenCmd.Flags().IntP("baud", "b", 9600, "baud rate")
	listenCmd.Flags().Int("data-bits", 8, "data bits (5-8)")
	listenCmd.Flags().Int("stop-bits", 1, "stop bits (1 or 2)")
	listenCmd.Flags().String("parity", "None", "parity: None, Odd or Even")
	listenCmd.Flags().Duration("read-timeout", time.Second, "per-poll read timeout")
	listenCmd.Flags().Bool("hex", false, "print incoming bytes as hex")
}
