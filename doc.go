// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// awsq is a command line tool that streams paginated AWS listings. Each
// service is a command group and each paginated operation a subcommand:
//
//	awsq <service> <operation> [flags]
//
// Pages are written as they arrive; an interrupted or capped listing
// reports the token to resume from.
package main
