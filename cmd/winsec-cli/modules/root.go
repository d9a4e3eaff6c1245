package cmd

import (
	"fmt"
	"os"

	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/internal/commonflags"
	"github.com/ivan-rueda-duarte/winsec/cmd/winsec-cli/modules/acl"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "winsec-cli",
	Short: "Command Line Tool to work with Windows discretionary ACLs",
	Long: `winsec-cli builds, inspects and rewrites discretionary access control
lists in their JSON notation: compiling ACLs from rule strings, pretty
printing them and reassigning entries from one SID to another (e.g.
during account migration). It never touches the OS security APIs.`,
	Run: entryPoint,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func entryPoint(cmd *cobra.Command, _ []string) {
	_ = cmd.Usage()
}

func init() {
	cobra.OnInitialize(initConfig)

	ff := rootCmd.PersistentFlags()
	ff.StringVarP(&cfgFile, commonflags.ConfigFile, commonflags.ConfigFileShorthand, "", commonflags.ConfigFileUsage)
	ff.BoolP(commonflags.Verbose, commonflags.VerboseShorthand, false, commonflags.VerboseUsage)

	_ = viper.BindPFlag(commonflags.Verbose, ff.Lookup(commonflags.Verbose))

	rootCmd.AddCommand(acl.Cmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".config/winsec-cli" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".config/winsec-cli")
	}

	viper.SetEnvPrefix("WINSEC_CLI")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
