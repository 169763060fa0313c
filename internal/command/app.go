// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/config"
	"github.com/staranto/awsqgo/internal/meta"
)

// InitApp builds the awsq command tree for args.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the service
	// command and also represents the namespace key to be used when retrieving
	// config values. arg[1] could be -h/--help, so ignore it if it appears to be
	// a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}
	config.Config.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  config.Config,
		Context: ctx,
	}

	app := &cli.Command{
		Name:  "awsq",
		Usage: "stream paginated AWS listings",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "awsq version info",
				HideDefault: true,
			},
		},
		Metadata: map[string]any{
			"meta": meta,
		},
	}

	app.Commands = append(app.Commands,
		HealthCommandBuilder(meta),
		AppInsightsCommandBuilder(meta),
		MbQueryCommandBuilder(meta),
		TsQueryCommandBuilder(meta),
		S3CommandBuilder(meta),
		CompletionCommandBuilder(app, meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, svc := range app.Commands {
		for _, cmd := range svc.Commands {
			sort.Slice(cmd.Flags, func(i, j int) bool {
				return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
			})
		}
	}

	return app, nil
}
