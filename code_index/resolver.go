package code_index

import (
	"context"
	"fmt"
	"strings"

	"codescout/code_index/models"
	"codescout/providers/contracts"
)

// QueryResolver turns one user question into one gateway call, choosing
// how much of the index rides along in the prompt.
type QueryResolver struct {
	index   *CodeIndex
	gateway contracts.IInferenceGateway
}

// NewQueryResolver wires a resolver over a built index.
func NewQueryResolver(index *CodeIndex, gateway contracts.IInferenceGateway) *QueryResolver {
	return &QueryResolver{index: index, gateway: gateway}
}

// Resolve narrows the index in three stages: exact substring matches
// first, close-spelling matches when that comes up empty, and when both
// fail the entire index rides along with the question. Each resolution
// ends in exactly one gateway call.
func (qr *QueryResolver) Resolve(ctx context.Context, query string) string {
	matches := qr.index.Search(query)

	if len(matches) == 0 {
		matches = qr.index.SearchFuzzy(query)
	}

	if len(matches) == 0 {
		return qr.gateway.Generate(ctx, qr.fullIndexPrompt(query))
	}

	return qr.gateway.Generate(ctx, qr.snippetPrompt(query, matches))
}

// snippetPrompt gathers the snippet lists of every matched file, in
// match order, under one question. Two matches owned by the same file
// repeat that file's snippets.
func (qr *QueryResolver) snippetPrompt(query string, matches []models.Match) string {
	var snippets []string
	for _, match := range matches {
		for _, snippet := range qr.index.Snippets(match.File) {
			snippets = append(snippets, snippet.Text)
		}
	}

	return fmt.Sprintf("Based on the following code snippets:\n\n%s\n\nAnswer the question: \"%s\"", strings.Join(snippets, "\n\n"), query)
}

// fullIndexPrompt renders every indexed file with its labelled snippets.
// Files without snippets are left out.
func (qr *QueryResolver) fullIndexPrompt(query string) string {
	var sb strings.Builder

	sb.WriteString("The project contains the following indexed code:\n\n")
	for _, file := range qr.index.Files() {
		snippets := qr.index.Snippets(file)
		if len(snippets) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("File: %s\n", file))
		for _, snippet := range snippets {
			sb.WriteString(fmt.Sprintf("%s:\n%s\n", snippet.Name, snippet.Text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Answer the question: \"%s\"", query))
	return sb.String()
}
