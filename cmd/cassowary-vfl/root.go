package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any
// subcommands; it only exists to host the "solve" subcommand and the
// persistent verbosity flag.
var rootCmd = &cobra.Command{
	Use:   "cassowary-vfl",
	Short: "Solve a Visual Format Language layout against named views and metrics.",
	Long: `cassowary-vfl reads a .vfl file describing a layout in the Visual
Format Language, resolves its view and metric names against JSON
descriptions, feeds the resulting constraints into a cassowary solver,
and prints the values the solver settles on.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("dump", false, "dump the solver's internal tableau before exiting")
}

// GetFlag gets an expected bool flag, exiting if the flag is missing
// (a programming error, since every flag used here is registered in
// init()), matching go-corset's pkg/cmd.GetFlag.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// GetString gets an expected string flag.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}
