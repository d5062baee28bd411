// Command sintaxis classifies Spanish words and validates sentences from
// the command line.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/gramatica-es/sintaxis"
	"github.com/gramatica-es/sintaxis/internal/config"
	"github.com/gramatica-es/sintaxis/internal/logger"
	"github.com/gramatica-es/sintaxis/store"
)

// exitSyntaxError is the exit status of a validate run stopped by a
// rejected sentence.
const exitSyntaxError = 1

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	lexiconFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "lexicon",
			Aliases: []string{"x"},
			Usage:   "Path to the lexicon JSON file",
			Value:   "data/spanish.json",
			EnvVars: []string{"LEXICON_PATH"},
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Load the lexicon from the BadgerDB snapshot in this directory instead",
			EnvVars: []string{"LEXICON_STORE_DIR"},
		},
	}

	return &cli.App{
		Name:  "sintaxis",
		Usage: "Classify Spanish words and validate Subject-Predicate sentences",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   "text",
				EnvVars: []string{"LOG_FORMAT"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyse",
				Aliases:   []string{"analyze"},
				Usage:     "Print the categories of every word of a phrase, or of every line of a file",
				ArgsUsage: "[phrase...]",
				Action:    analyseCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Analyse every line of this file",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Worker pool size for file analysis (0 = NumCPU/2)",
						Value: 0,
					},
				}, lexiconFlags...),
			},
			{
				Name:      "validate",
				Usage:     "Validate every period-delimited sentence of a file",
				ArgsUsage: "<file>",
				Action:    validateCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "policy",
						Usage: "On a rejected sentence: abort (exit 1) or continue",
						Value: "abort",
					},
				}, lexiconFlags...),
			},
			{
				Name:      "conjugate",
				Usage:     "Print the regular present forms of infinitives",
				ArgsUsage: "<infinitive...>",
				Action:    conjugateCommand,
			},
			{
				Name:   "import",
				Usage:  "Import a lexicon JSON file into a BadgerDB snapshot",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "lexicon",
						Aliases:  []string{"x"},
						Usage:    "Path to the lexicon JSON file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:   "categories",
				Usage:  "Print the number of forms per category after verb expansion",
				Action: categoriesCommand,
				Flags:  lexiconFlags,
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	logger.New(config.LogConfig{
		Level:  c.String("log-level"),
		Format: c.String("log-format"),
	})
	return nil
}

// openAnalyzer builds an Analyzer from the --lexicon or --db flag.
func openAnalyzer(c *cli.Context, opts ...sintaxis.Option) (*sintaxis.Analyzer, error) {
	var src sintaxis.LexiconSource = sintaxis.JSONFile(c.String("lexicon"))
	if dir := c.String("db"); dir != "" {
		st, err := store.Open(dir)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		src = st
	}

	a, err := sintaxis.New(c.Context, src, opts...)
	if err != nil {
		return nil, err
	}
	slog.Info("lexicon loaded", slog.String("forms", humanize.Comma(int64(a.Lexicon().Total()))))
	return a, nil
}

func analyseCommand(c *cli.Context) error {
	a, err := openAnalyzer(c)
	if err != nil {
		return err
	}

	if path := c.String("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
		results, err := a.AnalyseLines(c.Context, lines, c.Int("workers"))
		if err != nil {
			return err
		}
		for i, tokens := range results {
			if len(tokens) == 0 {
				continue
			}
			fmt.Fprintf(c.App.Writer, "%d: %s\n", i+1, lines[i])
			printTokens(c, tokens)
		}
		return nil
	}

	if c.NArg() == 0 {
		return cli.Exit("analyse: a phrase or --file is required", 2)
	}
	printTokens(c, a.AnalyseText(strings.Join(c.Args().Slice(), " ")))
	return nil
}

func printTokens(c *cli.Context, tokens []sintaxis.WordToken) {
	for _, tok := range tokens {
		labels := "unknown"
		if tok.Known() {
			labels = strings.Join(tok.Labels(), ", ")
		}
		fmt.Fprintf(c.App.Writer, "  %-20s %s\n", tok.Word, labels)
	}
}

func validateCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("validate: exactly one file is required", 2)
	}
	policy, err := sintaxis.ParsePolicy(c.String("policy"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	a, err := openAnalyzer(c, sintaxis.WithPolicy(policy))
	if err != nil {
		return err
	}

	sentences, err := sintaxis.ReadSentences(c.Args().First())
	if err != nil {
		return err
	}
	report, err := a.ValidateSentences(sentences)
	for _, res := range report.Results {
		fmt.Fprintln(c.App.Writer, res.Sentence)
		if res.Valid() {
			fmt.Fprintln(c.App.Writer, "sentence is valid")
		} else {
			fmt.Fprintf(c.App.Writer, "syntax error: %s failed\n", res.Violation.Nonterminal)
		}
	}

	switch {
	case errors.Is(err, sintaxis.ErrGrammar):
		return cli.Exit(err.Error(), exitSyntaxError)
	case err != nil:
		return err
	case report.Invalid() > 0:
		return cli.Exit(fmt.Sprintf("%d of %d sentences rejected", report.Invalid(), len(report.Results)), exitSyntaxError)
	}
	return nil
}

func conjugateCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("conjugate: at least one infinitive is required", 2)
	}
	for _, verb := range c.Args().Slice() {
		forms := sintaxis.Conjugate(sintaxis.Normalize(verb))
		if forms == nil {
			fmt.Fprintf(c.App.Writer, "%s: not a regular infinitive\n", verb)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: %s\n", verb, strings.Join(forms, ", "))
	}
	return nil
}

func importCommand(c *cli.Context) error {
	lx, err := sintaxis.JSONFile(c.String("lexicon")).Load(c.Context)
	if err != nil {
		return err
	}

	st, err := store.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Import(c.Context, lx); err != nil {
		return err
	}
	n, err := st.Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "imported %s forms into %s\n", humanize.Comma(int64(n)), c.String("db"))
	return nil
}

func categoriesCommand(c *cli.Context) error {
	a, err := openAnalyzer(c)
	if err != nil {
		return err
	}
	lx := a.Lexicon()
	for _, cat := range sintaxis.LexicalCategories() {
		fmt.Fprintf(c.App.Writer, "%-12s %s\n", cat, humanize.Comma(int64(lx.Len(cat))))
	}
	fmt.Fprintf(c.App.Writer, "%-12s %s\n", "total", humanize.Comma(int64(lx.Total())))
	return nil
}
