package main

import (
	"github.com/spf13/cobra"

	"github.com/abrar/portfolio-chat/internal/config"
	"github.com/abrar/portfolio-chat/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat API server",
	Long:  `Start an HTTP server that exposes the /api/chat endpoint the portfolio widget talks to.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	store, model, closeModel := buildResponderDeps(cmd.Context(), cfg)
	defer closeModel()

	srv := server.New(server.Config{Port: cfg.Port}, store, model)
	return srv.Start()
}
