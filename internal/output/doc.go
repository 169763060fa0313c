// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output renders pages of results as they arrive. Each format has an
// Emitter that is fed one page at a time, so nothing is buffered beyond the
// current page.
package output
