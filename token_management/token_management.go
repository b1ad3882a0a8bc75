package token_management

import (
	"fmt"

	"codescout/constants/lipgloss"
	"codescout/token_management/contracts"
)

// TokenManager implementation
type tokenManager struct {
	usedToken       int
	usedInputToken  int
	usedOutputToken int
}

// NewTokenManager creates a new token manager
func NewTokenManager() contracts.ITokenManagement {
	return &tokenManager{
		usedToken:       0,
		usedInputToken:  0,
		usedOutputToken: 0,
	}
}

// UsedTokens accumulates the token count for the session.
func (tm *tokenManager) UsedTokens(inputToken int, outputToken int) {
	tm.usedInputToken += inputToken
	tm.usedOutputToken += outputToken
	tm.usedToken += inputToken + outputToken
}

// DisplayTokens prints the session counters. Local models carry no price
// sheet, so there is no cost column.
func (tm *tokenManager) DisplayTokens(chatModel string) {
	tokenInfo := fmt.Sprintf("Token Used: %d (Input: %d, Output: %d) - Model: %s", tm.usedToken, tm.usedInputToken, tm.usedOutputToken, chatModel)

	tokenBox := lipgloss.BoxStyle.Render(tokenInfo)
	fmt.Println(tokenBox)
}

func (tm *tokenManager) GetCurrentTokenUsage() (total int, input int, output int) {
	return tm.usedToken, tm.usedInputToken, tm.usedOutputToken
}

func (tm *tokenManager) ClearToken() {
	tm.usedToken = 0
	tm.usedInputToken = 0
	tm.usedOutputToken = 0
}
