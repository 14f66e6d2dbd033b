// Package assistant turns the current pantry contents into recipe
// suggestions via a language model. The whole feature is optional: the
// service runs without a configured backend.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"pantry/internal/domain"
)

// suggestionPrompt precedes the item listing sent to the model.
const suggestionPrompt = `You are a kitchen assistant. Below is the current pantry inventory,
one item per line, format: name | quantity | expiration date.
Suggest three simple recipes using these items, prioritizing items that
expire soonest. Respond in plain text.`

type Suggester interface {
	Suggest(ctx context.Context, items []*domain.Item) (string, error)
}

// buildPrompt renders the inventory into the model prompt.
func buildPrompt(items []*domain.Item) string {
	var b strings.Builder
	b.WriteString(suggestionPrompt)
	b.WriteString("\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s | %d | %s\n", item.Name, item.Quantity, item.Expiration)
	}
	return b.String()
}
