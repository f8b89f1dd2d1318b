package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/santos-store/internal/config"
	"github.com/nikolayk812/santos-store/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "santos-store",
	Short: "Santos Store API server",
	Long: `santos-store serves the storefront API: catalog, carts, phone verification,
registration and purchase history, backed by PostgreSQL.`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

var promoteCmd = &cobra.Command{
	Use:   "promote-admin [email]",
	Short: "Grant admin rights to a registered user",
	Args:  cobra.ExactArgs(1),
	RunE:  runPromote,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the default configuration to the --config path",
	RunE:  runInitConfig,
}

var (
	force        bool
	revoke       bool
	migrateFirst bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "santos.yaml", "path to the YAML configuration")
	serveCmd.Flags().BoolVar(&migrateFirst, "migrate", false, "apply pending migrations before serving")
	initConfigCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	promoteCmd.Flags().BoolVar(&revoke, "revoke", false, "remove admin rights instead")

	rootCmd.AddCommand(serveCmd, migrateCmd, promoteCmd, initConfigCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger shared by all commands.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config.Load: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("logging.New: %w", err)
	}

	return cfg, logger, nil
}

func runInitConfig(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
	}

	if err := config.DefaultConfig().Save(configPath); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
	return nil
}
