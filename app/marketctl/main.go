package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/x-xyz/marketclient/app/setup"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
)

var (
	cliName    = "marketctl"
	configFile string
	services   *setup.Services
	cmdCtx     ctx.Ctx
	cancel     context.CancelFunc
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", setup.DefaultConfigFile, "path of the yaml config")
	rootCmd.AddCommand(catalogCmd, profileCmd, mintCmd, buyCmd, bidCmd, listCmd, endAuctionCmd)
}

var rootCmd = &cobra.Command{
	Use:   cliName,
	Short: "marketctl browses and trades on the NFT marketplace contract",
	Long: `marketctl browses and trades on the NFT marketplace contract.

Reads need only an rpc endpoint. Transactions are signed with WALLET_PRIVATE_KEY
and minting uploads through Pinata with PINATA_API_KEY and PINATA_SECRET_KEY,
all of which may be set in a .env file.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := setup.LoadConfig(configFile); err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		cmdCtx, cancel = ctx.From(signalCtx), stop

		s, err := setup.New(cmdCtx)
		if err != nil {
			return fmt.Errorf("building services: %w", err)
		}
		services = s
		return nil
	},
	PersistentPostRun: func(c *cobra.Command, args []string) {
		if cancel != nil {
			cancel()
		}
		log.Sync()
	},
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
