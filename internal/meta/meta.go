// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/staranto/awsqgo/internal/config"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	// Args is the argument list after @set expansion.
	Args    []string
	Config  config.Type
	Context context.Context
}
