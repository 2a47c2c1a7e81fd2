package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bobg/subcmd/v2"
	"github.com/pkg/errors"

	"github.com/govalues/radix"
)

const rule = "----------------------------------------"

type maincmd struct {
	out io.Writer
}

func (c maincmd) Subcmds() subcmd.Map {
	return subcmd.Commands(
		"conv", c.conv, "convert a number from one base to another", subcmd.Params(
			"-from", subcmd.Int, 10, "base of the number",
			"-to", subcmd.Int, 2, "base to convert to",
			"-prec", subcmd.Int, radix.DefaultPrec, "maximum number of fractional digits",
			"number", subcmd.String, "", "number to convert",
		),
		"all", c.all, "convert a number to all bases", subcmd.Params(
			"-from", subcmd.Int, 10, "base of the number",
			"-prec", subcmd.Int, radix.DefaultPrec, "maximum number of fractional digits",
			"-pos", subcmd.Bool, false, "only positive bases",
			"number", subcmd.String, "", "number to convert",
		),
	)
}

// setup validates the arguments shared by all subcommands.
func setup(from, prec int) (radix.Base, radix.Converter, error) {
	b, err := radix.NewBase(from)
	if err != nil {
		return 0, radix.Converter{}, errors.Wrap(err, "parsing -from")
	}
	c, err := radix.NewConverter(prec)
	if err != nil {
		return 0, radix.Converter{}, errors.Wrap(err, "parsing -prec")
	}
	return b, c, nil
}

func (c maincmd) conv(_ context.Context, from, to, prec int, number string, _ []string) error {
	number = strings.TrimSpace(number)
	fb, conv, err := setup(from, prec)
	if err != nil {
		return err
	}
	tb, err := radix.NewBase(to)
	if err != nil {
		return errors.Wrap(err, "parsing -to")
	}
	res, err := conv.Convert(number, fb, tb)
	if err != nil {
		return errors.Wrapf(err, "converting %s", number)
	}

	fmt.Fprintf(c.out, "Number in base %v: \t%s\n", fb, number)
	fmt.Fprintf(c.out, "Number in base %v: \t%s\n", tb, res)
	if res.IsTruncated() {
		fmt.Fprintf(c.out, "(cut after %d fractional digits)\n", conv.Prec())
	}
	return nil
}

func (c maincmd) all(_ context.Context, from, prec int, pos bool, number string, _ []string) error {
	number = strings.TrimSpace(number)
	fb, conv, err := setup(from, prec)
	if err != nil {
		return err
	}
	lines, err := conv.SweepText(number, fb, pos)
	if err != nil {
		return errors.Wrapf(err, "converting %s", number)
	}

	fmt.Fprintf(c.out, "Original number in base %v: %s\n", fb, number)
	fmt.Fprintln(c.out, rule)
	for _, l := range lines {
		fmt.Fprintf(c.out, "Number in base %3v: \t%s\n", l.Base, l.Text)
	}
	fmt.Fprintln(c.out, rule)
	return nil
}
