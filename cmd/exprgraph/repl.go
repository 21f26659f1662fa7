package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/alessiofumagalli/exprgraph"
)

const (
	historyFile = ".exprgraph_history"
	prompt      = "==> "
)

// repl reads expressions interactively. "name = expr" evaluates the right
// side and binds it; a bare expression prints its value. Ctrl+C cancels the
// current line, Ctrl+D or :quit exits.
func repl(ctx *exprgraph.Context) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("exprgraph: type an expression, \"name = expr\" to bind, :quit to exit.")
	vars := map[string]bool{}
	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		switch line {
		case ":quit", ":q":
			return
		case ":vars":
			names := make([]string, 0, len(vars))
			for n := range vars {
				names = append(names, n)
			}
			sort.Strings(names)
			for _, n := range names {
				if v, ok := ctx.Lookup(n); ok {
					fmt.Printf("%s = %g\n", n, v)
				}
			}
			continue
		}
		if name, rhs, ok := binding(line); ok {
			v, err := exprEval(ctx, rhs)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			ctx.Set(name, v)
			vars[strings.ToLower(name)] = true
			fmt.Printf("%s = %g\n", strings.ToLower(name), v)
			continue
		}
		v, err := exprEval(ctx, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Printf("%g\n", v)
	}
}

// binding splits "name = expr" bindings. A lone "=" would otherwise fail the
// lexer anyway, but detecting it here gives the assignment meaning.
func binding(line string) (name, rhs string, ok bool) {
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:i])
	rhs = strings.TrimSpace(line[i+1:])
	if name == "" || rhs == "" {
		return "", "", false
	}
	for j := 0; j < len(name); j++ {
		c := name[j]
		ident := c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' ||
			j > 0 && '0' <= c && c <= '9'
		if !ident {
			return "", "", false
		}
	}
	return name, rhs, true
}

func exprEval(ctx *exprgraph.Context, src string) (float64, error) {
	e, err := exprgraph.Parse(src)
	if err != nil {
		return 0, err
	}
	return ctx.Eval(e)
}
