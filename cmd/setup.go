package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codescout/constants/lipgloss"
	"codescout/runner"
)

// setupCmd installs Ollama and pulls the configured model up front, so
// the first analyze run does not have to.
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install Ollama and download the configured model.",
	Long: `The 'setup' command checks for a local Ollama installation and the configured
model, prompting to install whatever is missing. Run it once before the first
analysis, or let 'analyze' trigger the same flow on demand.`,
	Run: func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleSetupCommand(rootDependencies)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func handleSetupCommand(rootDependencies *RootDependencies) {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reader := bufio.NewReader(os.Stdin)

	ollamaRunner := runner.NewRunner(rootDependencies.Config.AIProviderConfig.Model)
	if err := ollamaRunner.EnsureReady(ctx, reader); err != nil {
		if err != runner.ErrInstallationAborted {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("🚨 %v", err)))
		}
		os.Exit(1)
	}

	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Ollama and model '%s' are ready!", rootDependencies.Config.AIProviderConfig.Model)))
}
