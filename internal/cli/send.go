package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	serial "github.com/wllcyg/serialdesk"
)

var sendCmd = &cobra.Command{
	Use:   "send <port> <payload>",
	Short: "Open a port, write a payload and poll one reply",
	Long: `Open the named port, write the payload, poll a single read and close.

The payload is written as text unless --hex is given, in which case it is
decoded as hexadecimal byte values (whitespace between pairs is allowed).

Works against virtual ports for hardware-free experiments:

  serialdesk send VIRTUAL-COM2 "hi"
  serialdesk send VIRTUAL-COM1 "DE AD BE EF" --hex`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, payload := args[0], args[1]

		baud, _ := cmd.Flags().GetInt("baud")
		dataBits, _ := cmd.Flags().GetInt("data-bits")
		stopBits, _ := cmd.Flags().GetInt("stop-bits")
		parity, _ := cmd.Flags().GetString("parity")
		isHex, _ := cmd.Flags().GetBool("hex")
		readTimeout, _ := cmd.Flags().GetDuration("read-timeout")
		noRead, _ := cmd.Flags().GetBool("no-read")

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
			if msg, cerr := bridge.ClosePort(name); cerr != nil {
				log.Warn().Err(cerr).Str("port", name).Msg("close failed")
			} else {
				fmt.Println(msg)
			}
		}()

		msg, err = bridge.WriteData(name, payload, isHex)
		if err != nil {
			return err
		}
		fmt.Println(msg)

		if noRead {
			return nil
		}
		data, err := bridge.ReadData(name, readTimeout)
		if err != nil {
			return err
		}
		if len(data) == 0 {
			fmt.Println("No data received")
			return nil
		}
		fmt.Printf("Received %d bytes: %q (% X)\n", len(data), data, data)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().IntP("baud", "b", 9600, "baud rate")
	sendCmd.Flags().Int("data-bits", 8, "data bits (5-8)")
	sendCmd.Flags().Int("stop-bits", 1, "stop bits (1 or 2)")
	sendCmd.Flags().String("parity", "None", "parity: None, Odd or Even")
	sendCmd.Flags().Bool("hex", false, "treat payload as hexadecimal text")
	sendCmd.Flags().Duration("read-timeout", 500*time.Millisecond, "how long to wait for the reply")
	sendCmd.Flags().Bool("no-read", false, "write only, skip the reply poll")
}
