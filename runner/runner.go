package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"codescout/constants/lipgloss"
	"codescout/utils"
)

const (
	installURL = "https://ollama.com/download"
	installCmd = "curl -fsSL https://ollama.com/install.sh | sh"
)

// ErrInstallationAborted reports that the user declined the install
// prompt. Callers exit without re-printing it.
var ErrInstallationAborted = errors.New("installation aborted")

// Runner checks for a local Ollama installation and bootstraps the
// binary and the configured model when they are missing.
type Runner struct {
	binary string
	model  string
	goos   string
}

// NewRunner creates a Runner for the given model name.
func NewRunner(model string) *Runner {
	return &Runner{binary: "ollama", model: model, goos: runtime.GOOS}
}

// IsInstalled reports whether the ollama binary is on PATH.
func (r *Runner) IsInstalled() bool {
	_, err := exec.LookPath(r.binary)
	return err == nil
}

// IsModelInstalled reports whether the configured model shows up in the
// local model list. Any failure to list counts as not installed.
func (r *Runner) IsModelInstalled(ctx context.Context) bool {
	output, err := exec.CommandContext(ctx, r.binary, "list").Output()
	if err != nil {
		logrus.Debugf("failed to list installed models: %v", err)
		return false
	}
	return outputListsModel(string(output), r.model)
}

func outputListsModel(output string, model string) bool {
	return strings.Contains(output, model)
}

// PullModel downloads the configured model, streaming ollama's own
// progress output straight to the terminal.
func (r *Runner) PullModel(ctx context.Context) error {
	fmt.Printf("🚀 Downloading model '%s' (this may take a while)...\n", r.model)

	cmd := exec.CommandContext(ctx, r.binary, "pull", r.model)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to pull model %s: %v", r.model, err)
	}
	return nil
}

// Install runs the platform-appropriate installation. On Linux and
// macOS the official install script runs directly. On Windows the user
// installs by hand and confirms with Enter. Anything else is refused.
func (r *Runner) Install(ctx context.Context, reader *bufio.Reader) error {
	fmt.Println("🚀 Installing Ollama...")

	switch r.goos {
	case "linux", "darwin":
		cmd := exec.CommandContext(ctx, "sh", "-c", installCmd)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Stdin = os.Stdin
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("failed to install ollama: %v", err)
		}
		return nil
	case "windows":
		fmt.Printf("🔗 Please download and install Ollama manually: %s\n", installURL)
		fmt.Print("Press Enter after installation to continue...")
		if _, err := reader.ReadString('\n'); err != nil {
			return fmt.Errorf("failed to read input: %v", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported operating system: %s", r.goos)
	}
}

// EnsureReady makes sure both the binary and the model are present,
// prompting for installation when the binary is missing and pulling the
// model directly when only the model is missing.
func (r *Runner) EnsureReady(ctx context.Context, reader *bufio.Reader) error {
	if !r.IsInstalled() {
		if err := r.promptInstallation(ctx, reader); err != nil {
			return err
		}
	}

	if !r.IsModelInstalled(ctx) {
		if err := r.PullModel(ctx); err != nil {
			return err
		}
	}

	fmt.Println(lipgloss.Green.Render("✅ All requirements are installed. Starting workflow..."))
	return nil
}

func (r *Runner) promptInstallation(ctx context.Context, reader *bufio.Reader) error {
	fmt.Println(lipgloss.Red.Render("🚨 Ollama or the required model is missing! 🚨"))
	fmt.Println("👉 Ollama (AI model runner) is required to run this tool.")
	fmt.Printf("👉 The '%s' model is also required for analysis.\n", r.model)
	fmt.Println("📦 Estimated Disk Space:")
	fmt.Println("   - Ollama: ~500MB")
	fmt.Printf("   - %s model: ~5GB\n", r.model)

	confirmed, err := utils.ConfirmPrompt("Do you want to install them now? (y/n): ", reader)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %v", err)
	}
	if !confirmed {
		fmt.Println(lipgloss.Red.Render("❌ Installation aborted. Exiting..."))
		return ErrInstallationAborted
	}

	if err := r.Install(ctx, reader); err != nil {
		return err
	}
	return r.PullModel(ctx)
}
