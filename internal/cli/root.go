// Package cli implements the verifysense command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// errWriter is where Execute reports command failures
var errWriter io.Writer = os.Stderr

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "verifysense",
	Short: "VerifySense - claim verification and credibility scoring",
	Long: `VerifySense decomposes content into discrete factual claims, gathers
independent corroborating and refuting signals for each claim, and fuses them
into a transparent credibility score with a human-readable explanation.

Signals come from published fact-checks, web evidence from trusted sources,
and the consistency between them. The component breakdown behind every score
is returned alongside it.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command. Errors are silenced inside cobra, so they
// are reported here once before being returned to main.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
	}
	return err
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("verifysense v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.verifysense/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the config file and VERIFYSENSE_* environment variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.verifysense")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("VERIFYSENSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
