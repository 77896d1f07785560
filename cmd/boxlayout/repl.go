package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/boxtree"
)

// queryREPL reads CSS selectors and lists the boxes of matching elements.
func queryREPL(tree *frame.Tree) error {
	repl, err := readline.New("select > ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Enter CSS selectors, quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		boxes, err := boxtree.Query(tree, line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if len(boxes) == 0 {
			pterm.Info.Println("no matching boxes")
			continue
		}
		printBoxes(boxes)
	}
	pterm.Info.Println("Good bye!")
	return nil
}
