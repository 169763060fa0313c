// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for awsq. Each AWS service is a
// command group and each paginated operation a subcommand; this package wires
// flags, validators, actions, and shell completion for them.
package command
