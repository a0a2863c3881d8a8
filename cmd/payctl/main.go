package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pay-assist/pkg/config"
	"pay-assist/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "payctl",
		Short: "Command-line client for the pay-assist engine",
		Long: `payctl reads payment requests written in plain language and turns them
into invoice and payment-link actions. It uses the same configuration as the
pay-assist server.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	appCfg    *config.Config
	appLogger *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./payctl.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("llm-provider", "", "override LLM_PROVIDER (gigachat, openai, none)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("llm.provider", rootCmd.PersistentFlags().Lookup("llm-provider"))

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(inferCmd())
	rootCmd.AddCommand(toolsCmd())
	rootCmd.AddCommand(callCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if appLogger != nil {
		_ = appLogger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("payctl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PAYASSIST")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyOverrides(cfg)

	l, err := logger.New(viper.GetString("logging.level"), viper.GetString("logging.format"))
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	appCfg = cfg
	appLogger = l
	return nil
}

// applyOverrides lets payctl.yaml, PAYASSIST_* variables and flags win over
// the server environment.
func applyOverrides(cfg *config.Config) {
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if viper.IsSet("llm.temperature") {
		cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	}
	if v := viper.GetDuration("llm.timeout"); v > 0 {
		cfg.LLM.Timeout = v
	}
	if v := viper.GetString("payments.default_currency"); v != "" {
		cfg.Payments.DefaultCurrency = v
	}
	if v := viper.GetString("payments.link_base_url"); v != "" {
		cfg.Payments.LinkBaseURL = v
	}
}
