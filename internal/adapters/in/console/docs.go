// Package console adapts line-based text streams (stdin/stdout) to the
// ports.Console interface used by the quote session handler.
package console
