package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/takoeight0821/shade/config"
	"github.com/takoeight0821/shade/driver"
	"github.com/takoeight0821/shade/eval"
)

// RunPrompt reads statements until `exit` or end of input.
func RunPrompt(cfg *config.Config, session *driver.Session) error {
	history := cfg.HistoryFile
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	st := newStyles(cfg.Color)
	for {
		input, err := line.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if input == "exit" {
			return nil
		}

		if cfg.ShowTokens {
			if buf, err := session.Tokens(input); err == nil {
				for _, t := range buf.Tokens() {
					fmt.Fprintln(os.Stdout, st.muted.Render(t.String()))
				}
			}
		}

		v, err := session.RunSource(input)
		if err != nil {
			printError(os.Stderr, st, err)
			continue
		}
		printValue(os.Stdout, st, v)
	}
}

func printValue(w io.Writer, st styles, v eval.Value) {
	if _, ok := v.(eval.Unit); ok {
		return
	}
	fmt.Fprintln(w, st.value.Render(v.String()))
}

// printError prints each joined error on its own line.
func printError(w io.Writer, st styles, err error) {
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			printError(w, st, err)
		}
		return
	}
	fmt.Fprintln(w, st.err.Render("Error: "+err.Error()))
}
