package formatter

import (
	"io"

	"rosettes/token"
)

// Null writes raw token values with no styling. Useful as a timing
// baseline and for verifying that a token stream reproduces its input.
type Null struct{}

func (Null) Name() string { return "null" }

// Format concatenates the token values.
func (Null) Format(w io.Writer, tokens []token.Token, cfg Config) error {
	for _, t := range tokens {
		if _, err := io.WriteString(w, t.Value); err != nil {
			return err
		}
	}
	return nil
}
