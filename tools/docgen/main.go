// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/command"
)

// Doc generator. Walks the awsq command tree and writes, per operation:
//   - docs/commands/awsq-<svc>-<op>.md
//   - docs/man/share/man1/awsq-<svc>-<op>.1 via md2man
//
// and per service a tldr page docs/tldr/awsq-<svc>.md built from the
// operation examples.

func main() {
	var (
		repoRoot           string
		writeOnlyIfChanged bool
	)

	flag.StringVar(&repoRoot, "root", ".", "repo root (default current dir)")
	flag.BoolVar(&writeOnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	commandsDir := filepath.Join(repoRoot, "docs", "commands")
	manOutDir := filepath.Join(repoRoot, "docs", "man", "share", "man1")
	tldrOutDir := filepath.Join(repoRoot, "docs", "tldr")

	for _, d := range []string{commandsDir, manOutDir, tldrOutDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			fatalf("creating output dir %s: %v", d, err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"awsq"})
	if err != nil {
		fatalf("building command tree: %v", err)
	}

	var processed int
	for _, svc := range app.Commands {
		if len(svc.Commands) == 0 || svc.Name == "completion" {
			continue
		}

		var exs []example
		for _, op := range svc.Commands {
			name := fmt.Sprintf("awsq-%s-%s", svc.Name, op.Name)
			md := renderMarkdown(svc, op)

			if err := writeFileIfChanged(filepath.Join(commandsDir, name+".md"), md, writeOnlyIfChanged); err != nil {
				fatalf("writing markdown for %s: %v", name, err)
			}
			if err := writeFileIfChanged(filepath.Join(manOutDir, name+".1"), md2man.Render(md), writeOnlyIfChanged); err != nil {
				fatalf("writing man page for %s: %v", name, err)
			}

			for _, e := range command.GetExamples(op) {
				exs = append(exs, example{Desc: e[1], Cmd: e[0]})
			}
			processed++
		}

		tldr := buildTLDR(svc.Name, svc.Usage, exs)
		tldrPath := filepath.Join(tldrOutDir, fmt.Sprintf("awsq-%s.md", svc.Name))
		if err := writeFileIfChanged(tldrPath, []byte(tldr), writeOnlyIfChanged); err != nil {
			fatalf("writing TLDR for %s: %v", svc.Name, err)
		}
	}

	if processed == 0 {
		fatalf("no operations found in the command tree")
	}
}

func fatalf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, f+"\n", a...)
	os.Exit(1)
}

func writeFileIfChanged(path string, new []byte, onlyIfChanged bool) error {
	if !onlyIfChanged {
		return os.WriteFile(path, new, 0o644)
	}
	old, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.WriteFile(path, new, 0o644)
		}
		return err
	}
	if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(new)) {
		return nil
	}
	return os.WriteFile(path, new, 0o644)
}

type example struct {
	Desc string
	Cmd  string
}

// renderMarkdown writes a page in the layout md2man expects: a title line
// with the man section, then NAME/SYNOPSIS/OPTIONS/EXAMPLES sections.
func renderMarkdown(svc, op *cli.Command) []byte {
	var b bytes.Buffer
	full := fmt.Sprintf("awsq-%s-%s", svc.Name, op.Name)

	fmt.Fprintf(&b, "%s 1 \"\" \"awsq\" \"awsq manual\"\n", strings.ToUpper(full))
	b.WriteString("==================================================\n\n")

	b.WriteString("# NAME\n\n")
	fmt.Fprintf(&b, "%s - %s\n\n", full, op.Usage)

	b.WriteString("# SYNOPSIS\n\n")
	fmt.Fprintf(&b, "`%s`\n\n", op.UsageText)

	b.WriteString("# OPTIONS\n\n")
	for _, f := range op.Flags {
		if v, ok := f.(interface{ IsVisible() bool }); ok && !v.IsVisible() {
			continue
		}
		fmt.Fprintf(&b, "**%s**\n", flagNames(f))
		if u, ok := f.(interface{ GetUsage() string }); ok {
			fmt.Fprintf(&b, ": %s", u.GetUsage())
		}
		if e, ok := f.(interface{ GetEnvVars() []string }); ok && len(e.GetEnvVars()) > 0 {
			fmt.Fprintf(&b, " (env: %s)", strings.Join(e.GetEnvVars(), ", "))
		}
		b.WriteString("\n\n")
	}

	if exs := command.GetExamples(op); len(exs) > 0 {
		b.WriteString("# EXAMPLES\n\n")
		for _, e := range exs {
			fmt.Fprintf(&b, "%s:\n\n    %s\n\n", e[1], e[0])
		}
	}

	b.WriteString("# SEE ALSO\n\n")
	fmt.Fprintf(&b, "awsq %s %s --schema, awsq completion\n", svc.Name, op.Name)
	return b.Bytes()
}

func flagNames(f cli.Flag) string {
	var parts []string
	for _, n := range f.Names() {
		if len(n) == 1 {
			parts = append(parts, "-"+n)
		} else {
			parts = append(parts, "--"+n)
		}
	}
	return strings.Join(parts, ", ")
}

func buildTLDR(svc, short string, exs []example) string {
	var b strings.Builder
	b.WriteString("# awsq " + svc + "\n\n")
	if short != "" {
		b.WriteString("> " + short + ".\n")
	} else {
		b.WriteString("> awsq " + svc + "\n")
	}
	b.WriteString("> More information: https://github.com/staranto/awsqgo.\n\n")

	if len(exs) == 0 {
		b.WriteString("- Show help for the command:\n\n")
		b.WriteString("`awsq " + svc + " --help`\n")
		return b.String()
	}

	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + strings.TrimSpace(ex.Desc) + ":\n\n")
		b.WriteString("`" + sanitizeCommand(ex.Cmd) + "`\n")
	}
	return b.String()
}

func sanitizeCommand(s string) string {
	// Compress runs of whitespace.
	return strings.Join(strings.Fields(s), " ")
}
