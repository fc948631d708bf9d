// Package brew locates the Homebrew binary and captures the output of its
// config subcommand.
//
// The Client resolves the binary through an injectable PATH lookup and runs
// it through an injectable command factory so tests can substitute both.
package brew
