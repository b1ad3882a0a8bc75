package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"codescout/code_index"
	"codescout/constants/lipgloss"
	"codescout/runner"
	"codescout/utils"
)

// AnalyzeCmd: codescout analyze
var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Index a project and answer questions about its code within a session.",
	Long: `The 'analyze' subcommand scans the given project directory, extracts function and
class snippets into an in-memory index, and answers questions about them through a
locally hosted model. An optional --prompt runs one question up front; an interactive
session follows either way. Type 'exit' to leave the session.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initialPrompt, _ := cmd.Flags().GetString("prompt")

		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleAnalyzeCommand(rootDependencies, args[0], initialPrompt)
	},
}

func init() {
	analyzeCmd.Flags().StringP("prompt", "p", "", "Question to answer before the interactive session starts.")
	rootCmd.AddCommand(analyzeCmd)
}

func handleAnalyzeCommand(rootDependencies *RootDependencies, projectPath string, initialPrompt string) {

	// Create a context with cancel function
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	go utils.GracefulShutdown(ctx, cancel, func() {
		rootDependencies.TokenManagement.ClearToken()
	})

	reader := bufio.NewReader(os.Stdin)

	// The endpoint is checked exactly once, before any indexing work
	if !rootDependencies.Gateway.IsAvailable(ctx) {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("🚨 Ollama API is not available at %s. Start it and try again.", rootDependencies.Config.AIProviderConfig.BaseURL)))
		os.Exit(1)
	}

	ollamaRunner := runner.NewRunner(rootDependencies.Config.AIProviderConfig.Model)
	if err := ollamaRunner.EnsureReady(ctx, reader); err != nil {
		if err != runner.ErrInstallationAborted {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("🚨 %v", err)))
		}
		os.Exit(1)
	}

	spinnerIndexing, _ := spinner.Start("Indexing project...")

	walker := code_index.NewWalker(rootDependencies.Config.ExcludedFolders)
	index, err := walker.BuildIndex(projectPath)
	if err != nil {
		spinnerIndexing.Stop()
		fmt.Print("\r")
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("🚨 %v", err)))
		os.Exit(1)
	}

	spinnerIndexing.Stop()
	fmt.Print("\r")

	stats := index.Stats()
	fmt.Println(lipgloss.BoxStyle.Render(fmt.Sprintf("Indexed %d snippets under %d names across %d files", stats.Snippets, stats.Names, stats.Files)))

	resolver := code_index.NewQueryResolver(index, rootDependencies.Gateway)

	askQuestion := func(question string) {
		thinkingSpinner := pterm.DefaultSpinner.
			WithStyle(pterm.NewStyle(pterm.FgCyan)).
			WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
			WithDelay(100).
			WithRemoveWhenDone(true)
		spinnerThinking, _ := thinkingSpinner.Start("Thinking...")

		answer := resolver.Resolve(ctx, question)

		spinnerThinking.Stop()
		fmt.Print("\r")

		language := utils.DetectLanguageFromCodeBlock(answer)
		if err := utils.RenderAndPrintMarkdownWithContext(ctx, answer, language, rootDependencies.Config.Theme); err != nil {
			if err == context.Canceled {
				return
			}
			// Highlighting failed, fall back to plain output
			fmt.Println(answer)
		}

		rootDependencies.TokenManagement.DisplayTokens(rootDependencies.Config.AIProviderConfig.Model)
	}

	if initialPrompt != "" {
		askQuestion(initialPrompt)
	}

	sessionBox := lipgloss.BoxStyle.Render("Ask questions about the project. Type 'exit' to quit.")
	fmt.Println(sessionBox)

	for {
		select {
		case <-ctx.Done():
			// Wait for GracefulShutdown to complete
			return

		default:
			userInput, err := utils.InputPromptWithContext(ctx, reader)

			if err != nil {
				// Check if the error is due to context cancellation (Ctrl+C)
				if err == context.Canceled {
					fmt.Println(lipgloss.Yellow.Render("\n🔄 Exiting..."))
					return
				}
				if err == io.EOF {
					return
				}
				fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
				continue
			}

			if userInput == "" {
				fmt.Print("\r")
				continue
			}

			if strings.EqualFold(userInput, "exit") {
				fmt.Println(lipgloss.Green.Render("👋 Goodbye!"))
				return
			}

			askQuestion(userInput)
		}
	}
}
