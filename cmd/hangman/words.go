package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/words"
)

// WordsCmd validates a word list file and prints it
type WordsCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"HCL word list file (omit for the built-in list)"`
}

func (c *WordsCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *WordsCmd) run(w io.Writer) error {
	category, list := game.DefaultCategory, words.DefaultWords
	if c.File != "" {
		f, err := words.LoadFile(c.File)
		if err != nil {
			return err
		}
		list = f.Words
		if f.Category != "" {
			category = f.Category
		}
	}

	fmt.Fprintf(w, "Category: %s\n", category)
	for _, word := range list {
		fmt.Fprintf(w, "  %s\n", word)
	}
	fmt.Fprintf(w, "%d words OK\n", len(list))
	return nil
}
