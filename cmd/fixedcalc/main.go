// Command fixedcalc runs binary fixed-point operations from a terminal
// and previews how values look on the character LCD.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	fixed "github.com/avdva/binfixed"
	"github.com/avdva/binfixed/display"
)

// CLI defines the command-line interface for fixedcalc.
type CLI struct {
	Shift  uint   `short:"s" default:"16" help:"Number of fractional bits, 0..31"`
	Config string `short:"c" type:"path" help:"Board profile (YAML)"`

	ToFixed   ToFixedCmd   `cmd:"" help:"Convert an integer to fixed point"`
	FromFixed FromFixedCmd `cmd:"" help:"Convert a value to an integer, rounding toward negative infinity"`
	Mul       MulCmd       `cmd:"" help:"Multiply two values"`
	Div       DivCmd       `cmd:"" help:"Divide two values"`
	IntPart   IntPartCmd   `cmd:"" help:"Integer part of a value"`
	Frac      FracCmd      `cmd:"" help:"Fractional bits of the magnitude of a value"`
	Float     FloatCmd     `cmd:"" help:"Convert a value to float32"`
	Log2      Log2Cmd      `cmd:"" name:"log2" help:"Base-2 logarithm of a value"`
	Show      ShowCmd      `cmd:"" help:"Preview a labeled value on the LCD"`
}

// env is passed to every command.
type env struct {
	out   io.Writer
	shift uint
	opts  display.Opts
}

// operand parses a decimal string, like "1.25", or a raw value, like "r81920".
func (e *env) operand(s string) (fixed.Value, error) {
	if raw, ok := strings.CutPrefix(s, "r"); ok {
		i, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fixed.Zero, fmt.Errorf("bad raw value %q: %w", s, err)
		}
		return fixed.Value(i), nil
	}
	return fixed.FromString(s, e.shift)
}

func (e *env) operands(ss ...string) ([]fixed.Value, error) {
	vals := make([]fixed.Value, len(ss))
	for i, s := range ss {
		v, err := e.operand(s)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func (e *env) printValue(v fixed.Value, err error) error {
	if err != nil {
		return err
	}
	d, err := v.Decimal(e.shift)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.out, "%s (raw %d)\n", d, v)
	return err
}

type ToFixedCmd struct {
	Value int32 `arg:"" help:"Integer"`
}

func (c *ToFixedCmd) Run(e *env) error {
	return e.printValue(fixed.FromInt32(c.Value, e.shift))
}

type FromFixedCmd struct {
	Value string `arg:"" help:"Value"`
}

func (c *FromFixedCmd) Run(e *env) error {
	v, err := e.operand(c.Value)
	if err != nil {
		return err
	}
	i, err := v.Int32(e.shift)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, i)
	return err
}

type MulCmd struct {
	A string `arg:"" help:"Multiplicand"`
	B string `arg:"" help:"Multiplier"`
}

func (c *MulCmd) Run(e *env) error {
	vals, err := e.operands(c.A, c.B)
	if err != nil {
		return err
	}
	return e.printValue(vals[0].Mul(vals[1], e.shift))
}

type DivCmd struct {
	A string `arg:"" help:"Dividend"`
	B string `arg:"" help:"Divisor"`
}

func (c *DivCmd) Run(e *env) error {
	vals, err := e.operands(c.A, c.B)
	if err != nil {
		return err
	}
	return e.printValue(vals[0].Div(vals[1], e.shift))
}

type IntPartCmd struct {
	Value string `arg:"" help:"Value"`
}

func (c *IntPartCmd) Run(e *env) error {
	v, err := e.operand(c.Value)
	if err != nil {
		return err
	}
	return e.printValue(v.IntegerPart(e.shift))
}

type FracCmd struct {
	Value string `arg:"" help:"Value"`
}

func (c *FracCmd) Run(e *env) error {
	v, err := e.operand(c.Value)
	if err != nil {
		return err
	}
	f, err := v.FracMagnitude(e.shift)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, f)
	return err
}

type FloatCmd struct {
	Value string `arg:"" help:"Value"`
}

func (c *FloatCmd) Run(e *env) error {
	v, err := e.operand(c.Value)
	if err != nil {
		return err
	}
	f, err := v.Float32(e.shift)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out, strconv.FormatFloat(float64(f), 'g', -1, 32))
	return err
}

type Log2Cmd struct {
	Value string `arg:"" help:"Value"`
}

func (c *Log2Cmd) Run(e *env) error {
	v, err := e.operand(c.Value)
	if err != nil {
		return err
	}
	return e.printValue(v.Log2(e.shift))
}

type ShowCmd struct {
	Label string `arg:"" help:"Label"`
	Value string `arg:"" help:"Value"`
}

func (c *ShowCmd) Run(e *env) error {
	v, err := e.operand(c.Value)
	if err != nil {
		return err
	}
	opts := e.opts.WithDefaults()
	opts.PageDelay = 0
	drv := display.NewTextDriver(opts.Width, opts.Height)
	lcd := display.New(drv, opts)
	if err := lcd.PrintLabeledFixed(0, 0, c.Label, v, e.shift, true); err != nil {
		return err
	}
	border := "+" + strings.Repeat("-", int(opts.Width)) + "+"
	fmt.Fprintln(e.out, border)
	for _, line := range drv.Lines() {
		fmt.Fprintf(e.out, "|%-*s|\n", int(opts.Width), line)
	}
	_, err = fmt.Fprintln(e.out, border)
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("fixedcalc"),
		kong.Description("Binary fixed-point calculator"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	e := &env{out: stdout, shift: cli.Shift, opts: display.DefaultOpts}
	if cli.Config != "" {
		cfg, err := LoadConfig(cli.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		e.opts = cfg.Opts()
	}
	return ctx.Run(e)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fixedcalc: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
