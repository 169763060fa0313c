// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/command"
)

func findOp(t *testing.T, svc, op string) (*cli.Command, *cli.Command) {
	t.Helper()
	app, err := command.InitApp(context.Background(), []string{"awsq"})
	require.NoError(t, err)
	for _, s := range app.Commands {
		if s.Name != svc {
			continue
		}
		for _, o := range s.Commands {
			if o.Name == op {
				return s, o
			}
		}
	}
	t.Fatalf("%s %s not in command tree", svc, op)
	return nil, nil
}

func TestRenderMarkdown(t *testing.T) {
	svc, op := findOp(t, "s3", "objects")
	md := string(renderMarkdown(svc, op))

	assert.Contains(t, md, "AWSQ-S3-OBJECTS 1")
	assert.Contains(t, md, "# NAME\n\nawsq-s3-objects - list the objects of a bucket")
	assert.Contains(t, md, "**--bucket, -b**")
	assert.Contains(t, md, "AWSQ_BUCKET")
	assert.Contains(t, md, "# EXAMPLES")
	assert.Contains(t, md, "awsq s3 objects --bucket logs --prefix 2025/")
}

func TestBuildTLDR(t *testing.T) {
	got := buildTLDR("s3", "Amazon S3 object listings", []example{
		{Desc: "objects under a prefix", Cmd: "awsq s3   objects --bucket logs"},
	})
	assert.Equal(t, "# awsq s3\n\n"+
		"> Amazon S3 object listings.\n"+
		"> More information: https://github.com/staranto/awsqgo.\n\n"+
		"- objects under a prefix:\n\n"+
		"`awsq s3 objects --bucket logs`\n", got)

	assert.Contains(t, buildTLDR("health", "", nil), "`awsq health --help`")
}
