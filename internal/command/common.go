// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"time"

	"github.com/apex/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/staranto/awsqgo/internal/attrs"
	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/browse"
	"github.com/staranto/awsqgo/internal/meta"
	"github.com/staranto/awsqgo/internal/output"
	"github.com/staranto/awsqgo/internal/pager"
)

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr awsq <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "awsq", subcmd)
			c.Stdout = cmd.Root().Writer
			c.Stderr = cmd.Root().ErrWriter
			_ = c.Run()
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the attribute paths of the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(cmd.Root().Writer, t)
		return true
	}
	return false
}

// DumpExamplesIfRequested prints the example table when --examples is set.
func DumpExamplesIfRequested(cmd *cli.Command, examples [][2]string) bool {
	if cmd.Bool("examples") {
		output.DumpExamples(cmd.Root().Writer, examples)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList, err error) {
	for _, d := range defaults {
		if err = al.Set(d); err != nil {
			return nil, fmt.Errorf("invalid default attrs %q: %w", d, err)
		}
	}
	if extras := cmd.String("attrs"); extras != "" {
		if err = al.Set(extras); err != nil {
			return nil, fmt.Errorf("invalid --attrs: %w", err)
		}
	}
	err = al.SetGlobalTransformSpec()
	return
}

// PagerOptions maps the pagination flags onto pager.Options.
func PagerOptions(cmd *cli.Command) pager.Options {
	return pager.Options{
		StartingToken: cmd.String("starting-token"),
		PageSize:      cmd.Int32("page-size"),
		MaxItems:      cmd.Int("max-items"),
		NoPaginate:    cmd.Bool("no-paginate"),
	}
}

// OutputSettings maps the output flags onto output.Settings. Color is only
// honored when writing to a terminal.
func OutputSettings(cmd *cli.Command, al attrs.AttrList) output.Settings {
	return output.Settings{
		Format: cmd.String("output"),
		Attrs:  al,
		Titles: cmd.Bool("titles"),
		Color:  cmd.Bool("color") && isTerminal(cmd.Root().Writer),
	}
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// GetExamples returns the examples stored in the command's Metadata.
func GetExamples(cmd *cli.Command) [][2]string {
	if cmd == nil || cmd.Metadata == nil {
		return nil
	}
	ex, _ := cmd.Metadata["examples"].([][2]string)
	return ex
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ReportTruncation tells the user how to resume a listing that stopped
// before the service ran out of data.
func ReportTruncation(cmd *cli.Command, res pager.Result) {
	if !res.Truncated() {
		return
	}
	fmt.Fprintf(cmd.Root().ErrWriter,
		"More results available. Resume with --starting-token %s\n", res.NextToken)
}

// QueryCommandBuilder is a helper that constructs a cli.Command for operation
// subcommands using a consistent pattern. The builder wires metadata, adds
// tldr/schema/examples flags, applies global flags under the service
// namespace, and sets up validators. Examples are kept in Metadata for
// tools/docgen.
type QueryCommandBuilder struct {
	Service   string
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Examples  [][2]string
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta":     qcb.Meta,
			"examples": qcb.Examples,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			newTldrFlag(),
			newSchemaFlag(),
			newExamplesFlag(),
		}, NewGlobalFlags(qcb.Service)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}

// QueryActionRunner encapsulates the common action of every operation
// subcommand. Build resolves the parsed flags into the paginated operation
// and its request template; everything else (short circuits, attrs, AWS
// config, streaming or browsing, error shaping) is shared.
type QueryActionRunner[I, O, T any] struct {
	Service      string
	DefaultAttrs []string
	Examples     [][2]string
	Build        func(context.Context, *cli.Command, aws.Config) (pager.Operation[I, O, T], *I, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[I, O, T]) Run(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if ShortCircuitTLDR(ctx, cmd, qar.Service) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, reflect.TypeFor[T]()) {
		return nil
	}
	if DumpExamplesIfRequested(cmd, qar.Examples) {
		return nil
	}

	defaults := qar.DefaultAttrs
	if cmd.String("output") == "json" {
		// JSON carries the full item unless --attrs narrows it.
		defaults = nil
	}
	al, err := BuildAttrs(cmd, defaults...)
	if err != nil {
		return err
	}
	log.Debugf("attrs: %v", al.String())

	cfg, err := LoadAWSConfig(ctx, cmd)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	op, in, err := qar.Build(ctx, cmd, cfg)
	if err != nil {
		return err
	}

	ec := awsx.ErrorContext{
		Service:   qar.Service,
		Operation: cmd.Name,
		Region:    cfg.Region,
		Profile:   cmd.String("profile"),
	}

	opts := PagerOptions(cmd)
	log.Debugf("%s: options %+v", op.Name, opts)

	var res pager.Result
	if cmd.Bool("interactive") {
		p := pager.NewPaginator(op, *in, opts)
		err = browse.Run(ctx, browse.FromPaginator(p), al, cmd.FullName())
		res = p.Result()
	} else {
		var emitter output.Emitter
		if emitter, err = output.New(cmd.Root().Writer, OutputSettings(cmd, al)); err != nil {
			return err
		}
		res, err = pager.Stream(ctx, op, *in, opts, func(page pager.Page[T]) error {
			return emitter.Emit(output.PageOf(page.Number, page.Items, page.Output))
		})
	}

	log.Debugf("%s: %d pages, %d items in %s", res.Operation, res.Pages, res.Items,
		res.Elapsed.Round(time.Millisecond))

	if err != nil {
		return awsx.Friendly(err, ec)
	}

	ReportTruncation(cmd, res)
	return nil
}
