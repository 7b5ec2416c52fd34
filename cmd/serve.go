package cmd

import (
	"fmt"
	"time"

	"github.com/omghumre/ui-generator-agent/common"
	"github.com/omghumre/ui-generator-agent/config"
	"github.com/omghumre/ui-generator-agent/llm"
	"github.com/omghumre/ui-generator-agent/logger"
	"github.com/omghumre/ui-generator-agent/server"
	"github.com/omghumre/ui-generator-agent/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front-end",
	Long:  `Start the HTTP server that serves the input form and the generation API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		// Flags override environment-backed defaults
		if cmd.Flags().Changed("host") {
			cfg.Server.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetString("port")
		}
		if cmd.Flags().Changed("provider") {
			cfg.LLM.Provider, _ = cmd.Flags().GetString("provider")
		}
		if cmd.Flags().Changed("model") {
			cfg.LLM.Model, _ = cmd.Flags().GetString("model")
		}

		settings := common.WithYamlFile()

		llmClient, err := llm.NewLLM(cfg.LLM.Provider, cfg.LLM.Model,
			llm.WithMaxTokens(settings.Generation.MaxTokens),
			llm.WithTemperature(settings.Generation.Temperature),
			llm.WithAPITimeout(cfg.LLM.APITimeout),
		)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}

		store := session.NewStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
		defer store.Close()

		logger.Infof("Session TTL: %d minutes", cfg.Session.TTLMinutes)

		srv := server.New(llmClient, store, settings, cfg.LLM.Provider, cfg.LLM.Model)
		return srv.Run(cfg.Addr())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "0.0.0.0", "Host to listen on")
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().StringP("provider", "p", "openai", "LLM provider to use for generation")
	serveCmd.Flags().StringP("model", "m", "gpt-3.5-turbo", "LLM model to use for generation")
}
