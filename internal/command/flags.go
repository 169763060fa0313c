// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/awsqgo/internal/aws"
	"github.com/staranto/awsqgo/internal/config"
)

// Short-circuit flags. Built per command since cli flags carry parse state.
func newSchemaFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the attribute paths of the result items",
		HideDefault: true,
	}
}

func newExamplesFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "examples",
		Usage:       "show example invocations",
		HideDefault: true,
	}
}

func newTldrFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
}

// cfgSource is the config file backing flag defaults.
func cfgSource() string {
	return config.Config.Source
}

// NewGlobalFlags returns the flags shared by every operation subcommand. ns
// is the service name and the config namespace tried before the global keys.
func NewGlobalFlags(ns string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".attrs", altsrc.StringSourcer(cfgSource())),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".color", altsrc.StringSourcer(cfgSource())),
				yaml.YAML("color", altsrc.StringSourcer(cfgSource())),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWSQ_OUTPUT"),
				yaml.YAML(ns+".output", altsrc.StringSourcer(cfgSource())),
				yaml.YAML("output", altsrc.StringSourcer(cfgSource())),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".titles", altsrc.StringSourcer(cfgSource())),
				yaml.YAML("titles", altsrc.StringSourcer(cfgSource())),
			),
			Value: false,
		},
		NameSpacedValueChainFlagFromConfigFile(ns, cfgSource(), &cli.StringFlag{
			Name:    "region",
			Aliases: []string{"r"},
			Usage:   "AWS region. Defaults to the SDK resolution chain",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWSQ_REGION"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfgSource(), &cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile. Defaults to AWS_PROFILE",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWSQ_PROFILE"),
			),
		}),
		&cli.IntFlag{
			Name:  "max-attempts",
			Usage: "attempts per request, retries included. 0 keeps the SDK default",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".max-attempts", altsrc.StringSourcer(cfgSource())),
				yaml.YAML("max-attempts", altsrc.StringSourcer(cfgSource())),
			),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		NameSpacedValueChainFlagFromConfigFile(ns, cfgSource(), &cli.StringFlag{
			Name:  "retry-mode",
			Usage: "SDK retry mode, standard or adaptive. Defaults to AWS_RETRY_MODE",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWSQ_RETRY_MODE"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, OneOfValidator(awsx.RetryModes...))
			},
		}),
		&cli.IntFlag{
			Name:    "max-items",
			Aliases: []string{"m"},
			Usage:   "stop requesting pages once this many items were emitted. 0 is unbounded",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".max-items", altsrc.StringSourcer(cfgSource())),
			),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.Int32Flag{
			Name:  "page-size",
			Usage: "items requested per page. 0 leaves the service default",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+".page-size", altsrc.StringSourcer(cfgSource())),
				yaml.YAML("page-size", altsrc.StringSourcer(cfgSource())),
			),
			Validator: func(value int32) error {
				return FlagValidators(int(value), NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:  "starting-token",
			Usage: "resume a previous listing at this token",
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "no-paginate",
			Usage:       "fetch a single page and print its next token",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "interactive",
			Aliases:     []string{"i"},
			Usage:       "browse the results page by page",
			HideDefault: true,
		},
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// stringFlag is a plain operation flag with an optional namespaced config
// default at ns.op.name.
func stringFlag(ns, op, name, usage string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  name,
		Usage: usage,
		Sources: cli.NewValueSourceChain(
			yaml.YAML(ns+"."+op+"."+name, altsrc.StringSourcer(cfgSource())),
		),
		Validator: func(value string) error {
			return FlagValidators(value, JammedFlagValidator)
		},
	}
}

// sliceFlag accepts repeated or comma-separated values.
func sliceFlag(name, usage string) *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:  name,
		Usage: usage,
	}
}

// timeFlag accepts RFC3339 instants or plain dates.
func timeFlag(name, usage string) *cli.TimestampFlag {
	return &cli.TimestampFlag{
		Name:  name,
		Usage: usage + " (RFC3339 or YYYY-MM-DD)",
		Config: cli.TimestampConfig{
			Layouts: []string{time.RFC3339, time.DateOnly},
		},
	}
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
