package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"codescout/constants/lipgloss"
	"codescout/project"
	"codescout/runner"
	"codescout/utils"
)

// DetectCmd: codescout detect
var detectCmd = &cobra.Command{
	Use:   "detect [path]",
	Short: "Detect a project's frameworks and run a focused analysis.",
	Long: `The 'detect' subcommand maps the project's directory structure, asks the model
which frameworks it recognizes, lets it pick the files most relevant to your
prompt, and then answers the prompt from those files alone.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userPrompt, _ := cmd.Flags().GetString("prompt")

		rootDependencies := handleRootCommand(cmd)
		if rootDependencies == nil {
			return
		}
		handleDetectCommand(rootDependencies, args[0], userPrompt)
	},
}

func init() {
	detectCmd.Flags().StringP("prompt", "p", "", "Analysis request to run against the selected files.")
	_ = detectCmd.MarkFlagRequired("prompt")
	rootCmd.AddCommand(detectCmd)
}

func handleDetectCommand(rootDependencies *RootDependencies, projectPath string, userPrompt string) {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").WithDelay(100).WithRemoveWhenDone(true)

	go utils.GracefulShutdown(ctx, cancel, func() {
		rootDependencies.TokenManagement.ClearToken()
	})

	reader := bufio.NewReader(os.Stdin)

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

	mapper := project.NewMapper(rootDependencies.Config.ExcludedFolders)

	spinnerMapping, _ := spinner.Start("Mapping project structure...")
	structure := mapper.MapStructure(projectPath)
	spinnerMapping.Stop()
	fmt.Print("\r")

	if topLevel := mapper.MapRootStructure(projectPath); len(topLevel) > 0 {
		fmt.Println(lipgloss.BoxStyle.Render("Project root: " + strings.Join(topLevel, "  ")))
	}

	detector := project.NewDetector(rootDependencies.Gateway)

	spinnerFrameworks, _ := spinner.Start("Detecting frameworks...")
	frameworkInfo := detector.IdentifyFrameworks(ctx, structure)
	spinnerFrameworks.Stop()
	fmt.Print("\r")

	if frameworkInfo.Detected && len(frameworkInfo.Frameworks) > 0 {
		fmt.Println(lipgloss.Green.Render(fmt.Sprintf("Detected frameworks: %s", strings.Join(frameworkInfo.Frameworks, ", "))))
	} else {
		fmt.Println(lipgloss.Yellow.Render("No framework detected."))
		if frameworkInfo.Reasoning != "" {
			fmt.Println(frameworkInfo.Reasoning)
		}
	}

	spinnerSelection, _ := spinner.Start("Selecting relevant files...")
	selection := detector.DetermineRelevantFiles(ctx, structure, userPrompt)
	spinnerSelection.Stop()
	fmt.Print("\r")

	if len(selection.Files) == 0 {
		fmt.Println(lipgloss.Yellow.Render("The model did not select any files to analyze."))
		if selection.Reasoning != "" {
			fmt.Println(selection.Reasoning)
		}
		return
	}

	fmt.Println(lipgloss.Info.Render("Selected files:"))
	for _, file := range selection.Files {
		fmt.Printf("  - %s\n", file)
	}

	contents := project.ReadSelectedFiles(projectPath, selection.Files)
	if len(contents) == 0 {
		fmt.Println(lipgloss.Yellow.Render("None of the selected files could be read."))
		return
	}

	spinnerAnalysis, _ := spinner.Start("Analyzing selected files...")
	answer := detector.AnalyzeFiles(ctx, contents, userPrompt)
	spinnerAnalysis.Stop()
	fmt.Print("\r")

	fmt.Println(lipgloss.Info.Render("=== Analysis Results ==="))

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
