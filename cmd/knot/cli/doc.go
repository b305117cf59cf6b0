// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command-tree framework behind the knot
// CLI: named subcommands with pflag flag sets, structured help
// output, typo suggestions for unknown subcommands, and an
// [ExitError] escape hatch for commands that manage their own output
// and only need a non-zero exit code.
package cli
