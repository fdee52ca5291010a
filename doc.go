// Package lw is a set of small numeric tools and the libraries behind them.
//
// Libraries:
//
//	softnum       overflow-checked integer arithmetic, generic over every integer kind
//	matrix        generic dense matrices: arithmetic, determinants, adjugate, inverse
//	radix         integer conversion between bases 2..36 on top of softnum
//	bin2dec       binary numeral parsing into uint32
//	textreplace   line-oriented substring replacement over streams
//
// Command-line tools (cmd/):
//
//	radix      <from> <to> <value>
//	bin2dec    [binary]
//	replace    [<in> <out> <search> <replace>]
//	multmatrix [<file1> <file2>]
//	invert     [file]
//
// Every tool prints ERROR on failure and accepts -h / --help anywhere on the
// command line. Tools that take no arguments read their input from stdin.
// Settings come from LW_* environment variables (LW_LOG_LEVEL,
// LW_MATRIX_ORDER, LW_PRECISION, LW_EPSILON).
package lw
