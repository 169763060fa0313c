// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/apex/log"

	"github.com/staranto/awsqgo/internal/command"
	"github.com/staranto/awsqgo/internal/config"
	mylog "github.com/staranto/awsqgo/internal/log"
	"github.com/staranto/awsqgo/internal/version"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	mylog.InitLogger()

	// Ctrl-C stops a stream between pages.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := os.Args

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "No command specified.")
		args = append(args, "--help")
	} else {
		args = mangleArguments(args)
	}

	// Short-circuit --version/-v.
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.String())
			return 0
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}

// mangleArguments expands an @set argument into the string list stored at
// config key <service>.<set>. Without an explicit @set, @defaults is used
// if the config has one. The set's arguments are spliced in where the @set
// appeared, or right after the service and operation names.
func mangleArguments(args []string) []string {
	// Short-circuit for --help/-h. If help is requested, keep the command
	// path and add --help flag.
	for _, a := range args {
		if a == "--help" || a == "-h" {
			preamble := []string{args[0]}
			for _, p := range args[1:] {
				if strings.HasPrefix(p, "-") || strings.HasPrefix(p, "@") {
					break
				}
				preamble = append(preamble, p)
			}
			return append(preamble, "--help")
		}
	}

	svc := args[1]
	if strings.HasPrefix(svc, "-") {
		return args
	}

	set := "defaults"
	idx := -1

	// See if there is a @set specified. If so, that becomes our insertion point
	// and the @set entry is removed from args.
	out := make([]string, 0, len(args))
	out = append(out, args...)
	for i, a := range out[2:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			idx = i + 2
			out = append(out[:idx], out[idx+1:]...)
			break
		}
	}

	// Flags belong to the operation, so never insert ahead of
	// "awsq <service> <operation>".
	opEnd := min(3, len(out))
	if opEnd == 3 && strings.HasPrefix(out[2], "-") {
		opEnd = 2
	}
	idx = max(idx, opEnd)

	setArgs, _ := config.GetStringSlice(svc + "." + set)
	var parts []string
	for _, arg := range setArgs {
		parts = append(parts, strings.Fields(arg)...)
	}
	out = append(out[:idx], append(parts, out[idx:]...)...)

	log.Debugf("idx=%d, set=%s, args=%v", idx, set, out)
	return out
}
