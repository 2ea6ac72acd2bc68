// Copyright © 2026 The chill-lsp authors

// Package explore implements an interactive console for inspecting the
// symbols of a CHILL source file from a terminal.
package explore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/Zaneham/Chill-lsp/analysis"
)

type config struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

func newConfig(opts ...Option) *config {
	config := &config{}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// Option configures the console.
type Option func(*config)

// WithStdin allows overriding the input to the console.
func WithStdin(stdin io.ReadCloser) Option {
	return func(c *config) {
		c.stdin = stdin
	}
}

// WithStdout allows overriding the output of the console.
func WithStdout(stdout io.WriteCloser) Option {
	return func(c *config) {
		c.stdout = stdout
	}
}

// session holds the file under inspection and its current symbol model.
type session struct {
	path    string
	content string
	model   *analysis.Model
	out     io.Writer
}

// Run loads the file at path and starts the interactive console. It
// returns when the user quits or input reaches EOF.
func Run(path string, opts ...Option) error {
	cfg := newConfig(opts...)

	sess := &session{path: path, out: os.Stdout}
	if cfg.stdout != nil {
		sess.out = cfg.stdout
	}
	if err := sess.load(); err != nil {
		return err
	}

	rlCfg := &readline.Config{
		Prompt:            "chill> ",
		HistoryFile:       historyPath(),
		HistorySearchFold: true,
		AutoComplete:      &symbolCompleter{sess: sess},
	}
	if cfg.stdin != nil {
		rlCfg.Stdin = cfg.stdin
	}
	if cfg.stdout != nil {
		rlCfg.Stdout = cfg.stdout
		rlCfg.Stderr = cfg.stdout
	}
	ensureHistoryFilePermissions(rlCfg.HistoryFile)

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return err
	}
	defer rl.Close() //nolint:errcheck // best-effort cleanup

	sess.printf("%s: %d symbols (try help)\n", filepath.Base(path), len(sess.model.AllSymbols()))
	for {
		line, err := rl.ReadSlice()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return nil
		}
		text := strings.TrimSpace(string(line))
		if text == "" {
			continue
		}
		if sess.dispatch(text) {
			return nil
		}
	}
}

// dispatch runs one console command and reports whether the session ends.
func (s *session) dispatch(input string) bool {
	cmd, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		s.printHelp()
	case "symbols":
		s.printSymbols()
	case "hover":
		s.printHover(arg)
	case "complete":
		s.printCompletions(arg)
	case "refs":
		s.printRefs(arg)
	case "reload":
		if err := s.load(); err != nil {
			s.printf("reload: %v\n", err)
		} else {
			s.printf("reloaded %s: %d symbols\n", s.path, len(s.model.AllSymbols()))
		}
	default:
		s.printf("unknown command %q (try help)\n", cmd)
	}
	return false
}

func (s *session) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	s.content = string(data)
	s.model = analysis.Parse(s.content)
	return nil
}

func (s *session) printHelp() {
	s.printf(`commands:
  symbols          list every declared symbol with its line and kind
  hover WORD       show documentation for a word
  complete PREFIX  list completion candidates for a prefix
  refs WORD        list whole-word occurrences of a word
  reload           re-read and re-scan the file
  quit             leave the console
`)
}

func (s *session) printSymbols() {
	syms := s.model.AllSymbols()
	if len(syms) == 0 {
		s.printf("no symbols\n")
		return
	}
	for _, sym := range syms {
		s.printf("%4d  %-8s %-20s %s\n", sym.Line, sym.Kind, sym.Name, sym.Detail)
	}
}

func (s *session) printHover(word string) {
	if word == "" {
		s.printf("usage: hover WORD\n")
		return
	}
	md := analysis.Hover(s.model, word)
	if md == "" {
		s.printf("no documentation for %q\n", word)
		return
	}
	s.printf("%s\n", indent.String(wordwrap.String(md, 72), 2))
}

func (s *session) printCompletions(prefix string) {
	items := analysis.Completions(s.model, prefix, len(prefix))
	if len(items) == 0 {
		s.printf("no completions for %q\n", prefix)
		return
	}
	for _, item := range items {
		s.printf("%-20s %s\n", item.Name, item.Detail)
	}
}

func (s *session) printRefs(word string) {
	if word == "" {
		s.printf("usage: refs WORD\n")
		return
	}
	refs := analysis.FindReferences(s.content, word)
	if len(refs) == 0 {
		s.printf("no references to %q\n", word)
		return
	}
	for _, ref := range refs {
		s.printf("%s:%d:%d\n", s.path, ref.Line+1, ref.StartCol+1)
	}
}

func (s *session) printf(format string, v ...interface{}) {
	fmt.Fprintf(s.out, format, v...) //nolint:errcheck // best-effort console output
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chill_history")
}

// ensureHistoryFilePermissions creates the history file with mode 0600, or
// restricts an existing one, so command history stays private.
func ensureHistoryFilePermissions(path string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE, 0600) // #nosec G304 -- path is under the user's home
	if err != nil {
		return
	}
	_ = f.Close()
	_ = os.Chmod(path, 0600)
}
