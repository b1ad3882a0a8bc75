package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"codescout/config"
	"codescout/constants/lipgloss"
	"codescout/logging"
	"codescout/providers/contracts"
	"codescout/providers/ollama"
	"codescout/token_management"
	contracts2 "codescout/token_management/contracts"
)

// RootDependencies holds the wiring every subcommand needs.
type RootDependencies struct {
	Config          *config.Config
	Gateway         contracts.IInferenceGateway
	TokenManagement contracts2.ITokenManagement
	Cwd             string
}

var rootCmd = &cobra.Command{
	Use:   "codescout",
	Short: "codescout answers questions about a codebase through a locally hosted model.",
	Long: `codescout scans a project directory, extracts function and class snippets with
lightweight lexical patterns, and sends the matching snippets together with your
question to a locally running Ollama model. Nothing ever leaves your machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		if version, _ := cmd.Flags().GetBool("version"); version {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	// Load environment variables from a .env file when one exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("🚨 %v", err)))
		os.Exit(1)
	}
}

func init() {
	config.InitFlags(rootCmd)
}

func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	rootDependencies := &RootDependencies{}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("🚨 failed to get current directory: %v", err)))
		return nil
	}
	rootDependencies.Cwd = cwd

	rootDependencies.Config = config.LoadConfigs(cmd.Root(), cwd)

	logging.Init(rootDependencies.Config.LogLevel)

	rootDependencies.TokenManagement = token_management.NewTokenManager()

	rootDependencies.Gateway = ollama.NewOllamaGateway(&ollama.OllamaConfig{
		BaseURL:         rootDependencies.Config.AIProviderConfig.BaseURL,
		Model:           rootDependencies.Config.AIProviderConfig.Model,
		TokenManagement: rootDependencies.TokenManagement,
	})

	return rootDependencies
}
