package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	password   string
	category   string
)

var rootCmd = &cobra.Command{
	Use:   "santos-cart",
	Short: "Local-first shopping cart for Santos Store",
	Long: `santos-cart keeps a shopping cart on disk and syncs it with the store API
once you are logged in. Checkout prints a WhatsApp link carrying the order.`,
	SilenceUsage: true,
}

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Log in and merge the server cart into the local one",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session, keeping the local cart",
	RunE:  withApp(runLogout),
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the catalog",
	RunE:  withApp(runProducts),
}

var addCmd = &cobra.Command{
	Use:   "add [product-id] [quantity]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  withApp(runAdd),
}

var removeCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  withApp(runRemove),
}

var setCmd = &cobra.Command{
	Use:   "set [product-id] [quantity]",
	Short: "Overwrite the quantity of a cart line (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE:  withApp(runSet),
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the cart",
	RunE:  withApp(runList),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  withApp(runClear),
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Merge with the server cart and push the result",
	RunE:  withApp(runSync),
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Send the order over WhatsApp and empty the cart",
	RunE:  withApp(runCheckout),
}

var purchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "Show the purchase history",
	RunE:  withApp(runPurchases),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "santos.yaml", "path to the YAML configuration")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "account password (defaults to $SANTOS_PASSWORD)")
	productsCmd.Flags().StringVar(&category, "category", "", "only list this category")

	rootCmd.AddCommand(loginCmd, logoutCmd, productsCmd, addCmd, removeCmd, setCmd,
		listCmd, clearCmd, syncCmd, checkoutCmd, purchasesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
