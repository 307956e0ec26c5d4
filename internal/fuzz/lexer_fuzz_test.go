package fuzztests

import (
	"testing"

	"unikit/internal/diag"
	"unikit/internal/lexer"
	"unikit/internal/source"
	"unikit/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addSeeds(f, expressionSeeds)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		file := source.NewFile("fuzz.vue", input, source.FileVirtual)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		// каждый токен сдвигает курсор, иначе лексер завис
		limit := len(file.Content) + 2
		for range limit {
			if lx.Next().Kind == token.EOF {
				return
			}
		}
		t.Fatalf("lexer did not reach EOF within %d tokens", limit)
	})
}
