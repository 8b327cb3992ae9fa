package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/peoplebook/apiserver/config"
	"github.com/peoplebook/apiserver/internal/server"
	"github.com/peoplebook/apiserver/pkg/logging"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the peoplebook API server",
	Long: `Starts the peoplebook API server. Usage:

	apiserver server
`,
	Run: func(cmd *cobra.Command, args []string) {
		logging.Setup()
		cfg := config.LoadConfig()

		srv, err := server.New(cmd.Context(), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
			os.Exit(1)
		}
		slog.Info("server listening", "port", cfg.ServerPort)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
