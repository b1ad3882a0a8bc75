package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"codescout/providers/contracts"
)

// FrameworkInfo is the parsed outcome of a framework detection request.
type FrameworkInfo struct {
	Detected   bool
	Frameworks []string
	Reasoning  string
}

// FileSelection is the parsed outcome of a file selection request. An
// empty Files slice with non-empty Reasoning means the reply could not
// be parsed and Reasoning carries the raw text.
type FileSelection struct {
	Files     []string
	Reasoning string
}

// Detector asks the inference gateway structured questions about a
// project and parses the JSON arrays out of its replies.
type Detector struct {
	gateway contracts.IInferenceGateway
}

// NewDetector creates a Detector backed by the given gateway.
func NewDetector(gateway contracts.IInferenceGateway) *Detector {
	return &Detector{gateway: gateway}
}

var jsonArrayRegex = regexp.MustCompile(`(?s)\[.*?\]`)

func parseJSONArray(response string) ([]string, error) {
	match := jsonArrayRegex.FindString(response)
	if match == "" {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var items []string
	if err := json.Unmarshal([]byte(match), &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON array: %w", err)
	}
	return items, nil
}

// IdentifyFrameworks asks which frameworks the directory structure
// suggests. A reply the parser cannot handle comes back as a
// not-detected result carrying the raw text as reasoning.
func (d *Detector) IdentifyFrameworks(ctx context.Context, structure map[string]interface{}) FrameworkInfo {
	encoded, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return FrameworkInfo{
			Frameworks: []string{"Unknown"},
			Reasoning:  fmt.Sprintf("failed to encode directory structure: %v", err),
		}
	}

	var prompt strings.Builder
	prompt.WriteString("Given the following project directory structure:\n\n")
	prompt.Write(encoded)
	prompt.WriteString("\n\nIdentify the framework(s) used in this project. The project may use more than one framework, so return all identified frameworks.\n\n")
	prompt.WriteString("Return the result strictly as a JSON array of framework names, for example:\n[\n  \"Laravel\",\n  \"Vue\"\n]\n\n")
	prompt.WriteString("Only return the JSON array and nothing else.")

	response := d.gateway.Generate(ctx, prompt.String())

	frameworks, err := parseJSONArray(response)
	if err != nil {
		logrus.Warnf("framework detection reply was not parseable: %v", err)
		return FrameworkInfo{Frameworks: []string{"Unknown"}, Reasoning: response}
	}

	return FrameworkInfo{Detected: true, Frameworks: frameworks}
}

// DetermineRelevantFiles asks which files matter for the given request.
// Parse failures degrade to an empty selection so the caller can show
// why nothing was chosen.
func (d *Detector) DetermineRelevantFiles(ctx context.Context, structure map[string]interface{}, userPrompt string) FileSelection {
	encoded, err := json.MarshalIndent(structure, "", "  ")
	if err != nil {
		return FileSelection{Reasoning: fmt.Sprintf("failed to encode directory structure: %v", err)}
	}

	var prompt strings.Builder
	prompt.WriteString("Given the following project directory structure:\n\n")
	prompt.Write(encoded)
	prompt.WriteString("\n\nBased on the user request: \"")
	prompt.WriteString(userPrompt)
	prompt.WriteString("\", determine which files are most relevant for analysis.\n\n")
	prompt.WriteString("Return the relevant file paths strictly as a JSON array, for example:\n[\n  \"composer.json\",\n  \"vite.config.js\"\n]\n\n")
	prompt.WriteString("Only return the JSON array and nothing else.")

	response := d.gateway.Generate(ctx, prompt.String())

	files, err := parseJSONArray(response)
	if err != nil {
		logrus.Warnf("file selection reply was not parseable: %v", err)
		return FileSelection{Reasoning: response}
	}

	return FileSelection{Files: files}
}

// AnalyzeFiles sends the selected file contents, JSON-rendered, together
// with the user's request and returns the model's answer.
func (d *Detector) AnalyzeFiles(ctx context.Context, files map[string]string, userPrompt string) string {
	encoded, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error during API request: %v", err)
	}

	var prompt strings.Builder
	prompt.WriteString("The following files were selected for analysis:\n\n")
	prompt.Write(encoded)
	prompt.WriteString(fmt.Sprintf("\n\nPerform the requested analysis: \"%s\".", userPrompt))

	return d.gateway.Generate(ctx, prompt.String())
}

// ReadSelectedFiles loads the given paths relative to rootDir.
// Unreadable entries are logged and dropped.
func ReadSelectedFiles(rootDir string, paths []string) map[string]string {
	contents := make(map[string]string, len(paths))
	for _, relative := range paths {
		content, err := os.ReadFile(filepath.Join(rootDir, relative))
		if err != nil {
			logrus.Warnf("failed to read selected file %s: %v", relative, err)
			continue
		}
		contents[relative] = string(content)
	}
	return contents
}
