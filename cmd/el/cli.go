package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/madprops/el/internal/config"
	"github.com/madprops/el/internal/element"
	"github.com/madprops/el/internal/match"
	"github.com/madprops/el/internal/render"
)

// promptLabel is shown when no query argument is given.
const promptLabel = "Name, Symbol or Number"

// appDeps holds what the CLI needs from the process.
type appDeps struct {
	elements []element.Element
	cfg      *config.Config
	logger   *zap.Logger
	stdin    io.Reader
	stdout   io.Writer

	// termWidth reports the output terminal width, 0 when not a terminal.
	termWidth func() int
}

// newCLIApp creates the CLI application.
func newCLIApp(d appDeps) *cli.App {
	app := &cli.App{
		Name:            "el",
		Usage:           "Look up a chemical element by name, symbol or atomic number",
		UsageText:       "el [--no-color] [query]\n   el [--no-color] -- <query starting with '-'>",
		ArgsUsage:       "[query]",
		Version:         Version,
		HideHelpCommand: true,
		Reader:          d.stdin,
		Writer:          d.stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-color", Aliases: []string{"n"}, Usage: "Disable colored output"},
		},
		Action: func(c *cli.Context) error {
			query := c.Args().First()
			if c.NArg() == 0 {
				query = prompt(d.stdin, d.stdout, promptLabel)
			}

			// Empty query and no match both end quietly with status 0.
			if strings.TrimSpace(query) == "" {
				d.logger.Debug("empty query")
				return nil
			}

			res, ok := match.Find(d.elements, query)
			if !ok {
				d.logger.Debug("no element matched", zap.String("query", query))
				return nil
			}
			d.logger.Debug("element matched",
				zap.String("query", query),
				zap.String("kind", string(res.Kind)),
				zap.Int("distance", res.Distance),
			)

			width := 0
			if d.termWidth != nil {
				width = d.termWidth()
			}

			return render.Render(d.stdout, res.Element, render.Options{
				UseStyling:    !c.Bool("no-color") && !d.cfg.NoColor,
				MaxWidth:      d.cfg.MaxWidth,
				TerminalWidth: width,
			})
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// positionalArgs marks a dash-prefixed number such as "-5" as the query so
// the flag parser does not reject it as an unknown flag.
func positionalArgs(args []string) []string {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if _, err := strconv.ParseUint(strings.TrimPrefix(arg, "-"), 10, 64); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// prompt writes "label: " and reads one line. A read error yields an empty
// string; a final line without a newline is still returned.
func prompt(in io.Reader, out io.Writer, label string) string {
	fmt.Fprintf(out, "%s: ", label)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !stderrors.Is(err, io.EOF) {
		return ""
	}
	return line
}
