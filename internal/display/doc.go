// Package display renders matched lines for the terminal or for a pipe.
//
// A Formatter turns the match events of one source into a text block:
//
//	/path/to/file.go            <- banner, before the first match only
//	12: matched line text       <- "12: " only with line numbers on
//
// When standard output is a terminal the first matched span of every line is
// highlighted and the banner is colored. When output is redirected no ANSI
// escape sequence is ever written, so downstream tools see the lines exactly
// as they were read.
//
// A Printer is the shared output sink of a scan. It writes each block with a
// single call under a mutex, so blocks from concurrently scanned files never
// interleave mid-line.
package display
