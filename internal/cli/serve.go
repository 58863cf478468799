package cli

import (
	"github.com/spf13/cobra"

	"github.com/ecotrack-app/ecotrack/internal/daemon"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to config.toml (default ~/.ecotrack/config.toml)")
	serveCmd.Flags().String("host", "", "Override the listen host")
	serveCmd.Flags().Int("port", 0, "Override the listen port")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the EcoTrack API server",
	Long:  `Start the HTTP API: activity logging, goals, dashboard, insights, and the live tip feed.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = daemon.DefaultConfigPath()
	}

	cfg, err := daemon.LoadConfig(path)
	if err != nil {
		return err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.API.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.API.Port = port
	}

	return daemon.Run(cfg)
}
