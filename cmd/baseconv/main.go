// Command baseconv converts numbers between positional numeral systems
// with bases from -36 to 36.
//
// Usage:
//
//	baseconv conv [-from BASE] [-to BASE] [-prec DIGITS] NUMBER
//	baseconv all [-from BASE] [-prec DIGITS] [-pos] NUMBER
//
// The conv subcommand reads NUMBER in base -from (default 10) and writes
// it in base -to (default 2).
// The all subcommand writes NUMBER in every base from -36 to 36,
// or only in the bases from 2 to 36 with -pos.
// Results longer than 50 characters are shortened in this table.
//
// NUMBER can have a fractional part, such as FF.8 in base 16.
// Fractional digits are written up to -prec digits (default 20),
// and repeating digits are enclosed in parentheses, such as 0.1(6).
// Negative numbers must follow "--", as in
//
//	baseconv conv -to 16 -- -255
//
// Negative bases never use a sign: every number, positive or negative,
// is written with non-negative digits only.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bobg/subcmd/v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	return subcmd.Run(context.Background(), maincmd{out: out}, args)
}
