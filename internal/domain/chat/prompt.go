package chat

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const groundingInstruction = "Please provide a helpful response based on the available tours and destinations above."

// buildPrompt augments the user query with the catalog context block and a
// fixed instruction to ground the answer in the listed records.
func buildPrompt(contextBlock, query string) string {
	if strings.TrimSpace(contextBlock) == "" {
		return query
	}
	var b strings.Builder
	b.WriteString(contextBlock)
	b.WriteString("\n\nUSER QUERY: ")
	b.WriteString(query)
	b.WriteString("\n\n")
	b.WriteString(groundingInstruction)
	return b.String()
}

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

func tokenEncoder() *tiktoken.Tiktoken {
	encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		encoder = enc
	})
	return encoder
}

// countTokens estimates the token footprint of text. When the tokenizer is
// unavailable the whitespace word count serves as a rough stand-in.
func countTokens(text string) int {
	if text == "" {
		return 0
	}
	if enc := tokenEncoder(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	return len(strings.Fields(text))
}

// truncateToTokenBudget trims the context block to at most budget tokens so an
// oversized catalog never crowds the user query out of the prompt.
func truncateToTokenBudget(text string, budget int) string {
	if budget <= 0 || text == "" {
		return text
	}
	enc := tokenEncoder()
	if enc == nil {
		words := strings.Fields(text)
		if len(words) <= budget {
			return text
		}
		return strings.Join(words[:budget], " ")
	}
	tokens := enc.Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return enc.Decode(tokens[:budget])
}
