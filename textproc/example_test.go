package textproc_test

import (
	"fmt"

	"github.com/threadlens/threadlens/model"
	"github.com/threadlens/threadlens/textproc"
)

func ExampleProcessor_Process() {
	p := textproc.NewProcessor()

	doc := p.Process(model.Post{
		ID:       "t3_example",
		Title:    "<p>Searching the &amp; archives</p>",
		Selftext: "quickly running queries",
	})

	for _, tok := range doc.Tokens {
		fmt.Printf("%s -> %s\n", tok.Text, tok.Stem)
	}
	// Output:
	// searching -> search
	// archives -> archiv
	// quickly -> quickli
	// running -> run
	// queries -> queri
}

func ExampleTokenize() {
	tokens := textproc.Tokenize("test123, go!")
	for _, tok := range tokens {
		fmt.Printf("%q at %d\n", tok.Text, tok.Position)
	}
	// Output:
	// "test123" at 0
	// "go" at 9
}
