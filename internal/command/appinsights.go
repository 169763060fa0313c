// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	ai "github.com/aws/aws-sdk-go-v2/service/applicationinsights"
	"github.com/aws/aws-sdk-go-v2/service/applicationinsights/types"
	"github.com/urfave/cli/v3"

	"github.com/staranto/awsqgo/internal/meta"
	"github.com/staranto/awsqgo/internal/pager"
	"github.com/staranto/awsqgo/internal/services/appinsights"
)

const appInsightsNS = "appinsights"

var applicationsRunner = &QueryActionRunner[ai.ListApplicationsInput, ai.ListApplicationsOutput, types.ApplicationInfo]{
	Service:      appInsightsNS,
	DefaultAttrs: []string{"ResourceGroupName:group", "LifeCycle", "OpsCenterEnabled:opscenter", "AccountId:account"},
	Examples: [][2]string{
		{"awsq appinsights applications", "monitored applications"},
		{"awsq appinsights applications --account-id 123456789012", "applications of a linked account"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[ai.ListApplicationsInput, ai.ListApplicationsOutput, types.ApplicationInfo],
		in *ai.ListApplicationsInput, err error,
	) {
		p := appinsights.ApplicationsParams{AccountID: cmd.String("account-id")}
		return appinsights.Applications(newAppInsightsClient(cfg)), p.Input(), nil
	},
}

var problemsRunner = &QueryActionRunner[ai.ListProblemsInput, ai.ListProblemsOutput, types.Problem]{
	Service:      appInsightsNS,
	DefaultAttrs: []string{"Id", "Title:title:40", "Status", "SeverityLevel:severity", "StartTime:start:t"},
	Examples: [][2]string{
		{"awsq appinsights problems --resource-group my-app", "problems of one application"},
		{"awsq appinsights problems --start 2025-06-01 --visibility visible -o json", "visible problems since June"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[ai.ListProblemsInput, ai.ListProblemsOutput, types.Problem],
		in *ai.ListProblemsInput, err error,
	) {
		p := appinsights.ProblemsParams{
			ResourceGroup: cmd.String("resource-group"),
			Component:     cmd.String("component"),
			StartTime:     cmd.Timestamp("start"),
			EndTime:       cmd.Timestamp("end"),
			Visibility:    strings.ToUpper(cmd.String("visibility")),
			AccountID:     cmd.String("account-id"),
		}
		return appinsights.Problems(newAppInsightsClient(cfg)), p.Input(), nil
	},
}

var componentsRunner = &QueryActionRunner[ai.ListComponentsInput, ai.ListComponentsOutput, types.ApplicationComponent]{
	Service:      appInsightsNS,
	DefaultAttrs: []string{"ComponentName:component", "ResourceType:type", "Tier", "OsType:os", "Monitor"},
	Examples: [][2]string{
		{"awsq appinsights components --resource-group my-app", "components of one application"},
	},
	Build: func(ctx context.Context, cmd *cli.Command, cfg aws.Config) (
		op pager.Operation[ai.ListComponentsInput, ai.ListComponentsOutput, types.ApplicationComponent],
		in *ai.ListComponentsInput, err error,
	) {
		if err = RequireFlags(cmd, "resource-group"); err != nil {
			return
		}
		p := appinsights.ComponentsParams{
			ResourceGroup: cmd.String("resource-group"),
			AccountID:     cmd.String("account-id"),
		}
		return appinsights.Components(newAppInsightsClient(cfg)), p.Input(), nil
	},
}

// AppInsightsCommandBuilder constructs the "appinsights" command group.
func AppInsightsCommandBuilder(meta meta.Meta) *cli.Command {
	visibility := stringFlag(appInsightsNS, "problems", "visibility", "IGNORED or VISIBLE")
	visibility.Validator = func(v string) error {
		return FlagValidators(v, JammedFlagValidator, OneOfValidator("IGNORED", "VISIBLE"))
	}

	applications := (&QueryCommandBuilder{
		Service:   appInsightsNS,
		Name:      "applications",
		Usage:     "list Application Insights applications",
		UsageText: "awsq appinsights applications [options]",
		Flags: []cli.Flag{
			stringFlag(appInsightsNS, "applications", "account-id", "AWS account that owns the applications"),
		},
		Action:   applicationsRunner.Run,
		Examples: applicationsRunner.Examples,
		Meta:     meta,
	}).Build()

	problems := (&QueryCommandBuilder{
		Service:   appInsightsNS,
		Name:      "problems",
		Usage:     "list problems detected by Application Insights",
		UsageText: "awsq appinsights problems [options]",
		Flags: []cli.Flag{
			stringFlag(appInsightsNS, "problems", "resource-group", "application resource group"),
			stringFlag(appInsightsNS, "problems", "component", "component name"),
			timeFlag("start", "problems at or after"),
			timeFlag("end", "problems at or before"),
			visibility,
			stringFlag(appInsightsNS, "problems", "account-id", "AWS account that owns the application"),
		},
		Action:   problemsRunner.Run,
		Examples: problemsRunner.Examples,
		Meta:     meta,
	}).Build()

	components := (&QueryCommandBuilder{
		Service:   appInsightsNS,
		Name:      "components",
		Usage:     "list the components of an application",
		UsageText: "awsq appinsights components --resource-group NAME [options]",
		Flags: []cli.Flag{
			stringFlag(appInsightsNS, "components", "resource-group", "application resource group (required)"),
			stringFlag(appInsightsNS, "components", "account-id", "AWS account that owns the application"),
		},
		Action:   componentsRunner.Run,
		Examples: componentsRunner.Examples,
		Meta:     meta,
	}).Build()

	return &cli.Command{
		Name:     appInsightsNS,
		Usage:    "CloudWatch Application Insights applications, problems and components",
		Metadata: map[string]any{"meta": meta},
		Commands: []*cli.Command{applications, problems, components},
	}
}
