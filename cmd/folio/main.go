package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eringen/folio"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfgFile string
	cfg     folio.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - a self-hosted portfolio site",
	Long: `folio serves a single-page portfolio from YAML content, relays contact
messages to a form-submission API and keeps a small admin dashboard.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./folio.yaml)")
	rootCmd.AddCommand(serveCmd, checkCmd, exportCmd, newCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", version)
	},
}

// loadConfig reads .env, folio.yaml and FOLIO_* variables into cfg. Flags
// bound by the calling command win over all of them.
func loadConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about, so every field is bound.
	for _, key := range configKeys() {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && f.Changed {
			_ = v.BindPFlag(key, f)
		}
	})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	}

	cfg = folio.SiteConfig{}
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"addr":    "addr",
	"content": "content_dir",
	"watch":   "watch_content",
}

// configKeys lists the mapstructure keys of SiteConfig.
func configKeys() []string {
	t := reflect.TypeOf(folio.SiteConfig{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if key := t.Field(i).Tag.Get("mapstructure"); key != "" && key != "reveal" {
			keys = append(keys, key)
		}
	}
	return keys
}
