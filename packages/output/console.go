package output

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/reqq/packages/core/catalog"
	"github.com/abdul-hamid-achik/reqq/packages/history"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	*settings

	green  func(a ...any) string
	red    func(a ...any) string
	yellow func(a ...any) string
	cyan   func(a ...any) string
	bold   func(a ...any) string
	faint  func(a ...any) string
}

func NewConsoleFormatter(opts ...Option) *ConsoleFormatter {
	f := &ConsoleFormatter{settings: newSettings(opts)}

	colorize := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if f.noColor {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	f.green = colorize(color.FgGreen)
	f.red = colorize(color.FgRed)
	f.yellow = colorize(color.FgYellow)
	f.cyan = colorize(color.FgCyan)
	f.bold = colorize(color.Bold)
	f.faint = colorize(color.Faint)

	return f
}

func (f *ConsoleFormatter) FormatNames(kind string, names []string) {
	if len(names) == 0 {
		if f.verbose {
			fmt.Fprintf(f.errWriter, "%s\n", f.yellow("no "+kind+" found"))
		}
		return
	}
	for _, name := range names {
		fmt.Fprintln(f.writer, name)
	}
}

func (f *ConsoleFormatter) FormatExecution(e *Execution) {
	if f.verbose {
		env := e.Environment
		if env == "" {
			env = "(none)"
		}
		fmt.Fprintf(f.errWriter, "%s %s %s %s\n",
			f.bold(e.Request), f.faint("env:"), f.cyan(env), f.faint(e.Duration.String()))
	}

	fmt.Fprint(f.writer, e.Text)
	if !strings.HasSuffix(e.Text, "\n") {
		fmt.Fprintln(f.writer)
	}
}

func (f *ConsoleFormatter) FormatInspection(ins *catalog.Inspection) {
	fmt.Fprintf(f.writer, "%s %s\n", f.bold(ins.Request), f.faint(ins.Path))

	if len(ins.Keys) == 0 {
		fmt.Fprintf(f.writer, "\n  no placeholders\n")
	} else {
		fmt.Fprintf(f.writer, "\n  placeholders:\n")
		for _, key := range ins.Keys {
			fmt.Fprintf(f.writer, "    - %s\n", f.cyan(key))
		}
	}

	if len(ins.Coverage) == 0 {
		return
	}
	fmt.Fprintf(f.writer, "\n  environments:\n")
	for _, cov := range ins.Coverage {
		switch {
		case cov.Err != nil:
			fmt.Fprintf(f.writer, "    %s %s: %v\n", f.red("✗"), cov.Environment, cov.Err)
		case cov.Complete():
			fmt.Fprintf(f.writer, "    %s %s\n", f.green("✓"), cov.Environment)
		default:
			fmt.Fprintf(f.writer, "    %s %s", f.yellow("!"), cov.Environment)
			if len(cov.Missing) > 0 {
				fmt.Fprintf(f.writer, " missing: %s", strings.Join(cov.Missing, ", "))
			}
			if len(cov.NonScalar) > 0 {
				fmt.Fprintf(f.writer, " not scalar: %s", strings.Join(cov.NonScalar, ", "))
			}
			fmt.Fprintln(f.writer)
		}
	}
}

func (f *ConsoleFormatter) FormatValidation(results []catalog.CheckResult) {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(f.writer, "%s %s %s: %v\n", f.red("✗"), r.Kind, r.Name, r.Err)
			continue
		}
		if f.verbose {
			fmt.Fprintf(f.writer, "%s %s %s\n", f.green("✓"), r.Kind, r.Name)
		}
	}

	summary := fmt.Sprintf("%d checked, %d invalid", len(results), failed)
	if failed > 0 {
		fmt.Fprintf(f.writer, "\n%s\n", f.red(summary))
	} else {
		fmt.Fprintf(f.writer, "%s\n", f.green(summary))
	}
}

func (f *ConsoleFormatter) FormatHistory(entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(f.writer, "no executions recorded")
		return
	}

	for _, e := range entries {
		status := f.green(string(e.Status))
		if e.Status != history.StatusOK {
			status = f.red(string(e.Status))
		}
		env := e.Environment
		if env == "" {
			env = "-"
		}

		fmt.Fprintf(f.writer, "%s  %-5s  %s  %s  %s\n",
			f.faint(e.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			status, f.bold(e.Request), f.cyan(env), f.faint(e.Duration.String()))
		if e.Error != "" && f.verbose {
			fmt.Fprintf(f.writer, "    %s\n", e.Error)
		}
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	fmt.Fprintf(f.errWriter, "%s %v\n", f.red("Error:"), err)
}
