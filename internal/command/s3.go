// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/meta"
	"github.com/staranto/awsqgo/internal/pager"
	"github.com/staranto/awsqgo/internal/services/s3objects"
)

const s3NS = "s3"

var objectsRunner = &QueryActionRunner[s3.ListObjectsV2Input, s3.ListObjectsV2Output, types.Object]{
	Service:      s3NS,
	DefaultAttrs: []string{"Key", "Size::b", "LastModified:modified:t", "StorageClass:class"},
	Examples: [][2]string{
		{"awsq s3 objects --bucket logs --prefix 2025/", "objects under a prefix"},
		{"awsq s3 objects --bucket logs --no-paginate --page-size 100", "first 100 keys and the resume token"},
		{"awsq s3 objects --bucket logs --starting-token TOKEN", "resume a previous listing"},
		{"awsq s3 objects --bucket data --endpoint http://localhost:9000", "list a MinIO bucket"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[s3.ListObjectsV2Input, s3.ListObjectsV2Output, types.Object],
		in *s3.ListObjectsV2Input, err error,
	) {
		if err = RequireFlags(cmd, "bucket"); err != nil {
			return
		}
		p := s3objects.ObjectsParams{
			Bucket:     cmd.String("bucket"),
			Prefix:     cmd.String("prefix"),
			Delimiter:  cmd.String("delimiter"),
			StartAfter: cmd.String("start-after"),
		}
		return s3objects.Objects(newS3Client(cfg, cmd.String("endpoint"))), p.Input(), nil
	},
}

// S3CommandBuilder constructs the "s3" command group.
func S3CommandBuilder(meta meta.Meta) *cli.Command {
	bucket := NameSpacedValueChainFlagFromConfigFile(s3NS, cfgSource(), &cli.StringFlag{
		Name:    "bucket",
		Aliases: []string{"b"},
		Usage:   "bucket to list (required)",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AWSQ_BUCKET")),
		Validator: func(v string) error {
			return FlagValidators(v, JammedFlagValidator)
		},
	})

	endpoint := NameSpacedValueChainFlagFromConfigFile(s3NS, cfgSource(), &cli.StringFlag{
		Name:    "endpoint",
		Usage:   "S3-compatible endpoint URL, path-style addressing is used",
		Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_ENDPOINT_URL_S3")),
	})

	objects := (&QueryCommandBuilder{
		Service:   s3NS,
		Name:      "objects",
		Usage:     "list the objects of a bucket",
		UsageText: "awsq s3 objects --bucket NAME [options]",
		Flags: []cli.Flag{
			bucket,
			endpoint,
			stringFlag(s3NS, "objects", "prefix", "only keys beginning with this prefix"),
			stringFlag(s3NS, "objects", "delimiter", "group keys by this delimiter"),
			stringFlag(s3NS, "objects", "start-after", "start listing after this key"),
		},
		Action:   objectsRunner.Run,
		Examples: objectsRunner.Examples,
		Meta:     meta,
	}).Build()

	return &cli.Command{
		Name:     s3NS,
		Usage:    "Amazon S3 object listings",
		Metadata: map[string]any{"meta": meta},
		Commands: []*cli.Command{objects},
	}
}
