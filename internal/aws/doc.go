// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package aws loads the AWS SDK v2 configuration, builds the service clients
// awsq pages through, and turns SDK failures into errors that say which
// service, region and page failed.
package aws
