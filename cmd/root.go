package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/perihelion/internal/logx"
)

var rootCmd = &cobra.Command{
	Use:   "perihelion",
	Short: "Higher or Lower trivia about the bodies of the Solar System",
	Long: `Perihelion deals two Solar System bodies at a time and asks whether the
second has a higher or lower value than the first in one of five categories.
The game ends at the first wrong answer.

Running perihelion with no subcommand is the same as perihelion play.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logx.Init(viper.GetBool("verbose"))
	},
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .perihelion.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("source", "", `where bodies come from: "website" or "file"`)
	rootCmd.PersistentFlags().String("data-file", "", "snapshot file read in file mode (.json or .toml)")
	rootCmd.PersistentFlags().String("api-url", "", "bodies endpoint used in website mode")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("source", rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("data_file", rootCmd.PersistentFlags().Lookup("data-file"))
	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

func initConfig() {
	// A .env file is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring .env", logx.Error(err))
	}

	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".perihelion")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PERIHELION")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault delegates to the play subcommand.
func runRootDefault(_ *cobra.Command, args []string) error {
	return runPlay(playCmd, args)
}
