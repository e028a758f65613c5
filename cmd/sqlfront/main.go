// Command sqlfront inspects how SQL literal text and flat expression
// lists are interpreted: escape decoding, typed literal parsing,
// interval arithmetic, collation names, precedence climbing and caret
// diagnostics.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vegasq/sqlfront/diag"
	"github.com/vegasq/sqlfront/expr"
	"github.com/vegasq/sqlfront/literal"
	"github.com/vegasq/sqlfront/output"
)

const version = "0.1.0"

func main() {
	app := &cli.Command{
		Name:    "sqlfront",
		Usage:   "Inspect SQL literal parsing and expression assembly",
		Version: version,
		Commands: []*cli.Command{
			decodeCommand(),
			literalCommand(),
			intervalCommand(),
			collationCommand(),
			exprCommand(),
			caretsCommand(),
		},
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// commonFlags are shared by every grid-producing subcommand.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: table, json, or csv",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log reduction steps to stderr",
		},
	}
}

func setup(cmd *cli.Command) (output.Formatter, error) {
	if cmd.Bool("verbose") {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)
		expr.Logger = logger
	}
	return output.New(cmd.String("format"), os.Stdout)
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode backslash escapes in literal text",
		ArgsUsage: "TEXT",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := cmd.Args().First()
			if text == "" {
				return fmt.Errorf("missing TEXT argument")
			}
			formatter, err := setup(cmd)
			if err != nil {
				return err
			}
			decoded, err := literal.DecodeEscapes(text)
			if err != nil {
				return err
			}
			return formatter.Format(
				[]string{"INPUT", "DECODED", "LENGTH"},
				[][]string{{text, decoded, strconv.Itoa(len(decoded))}},
			)
		},
	}
}

func literalCommand() *cli.Command {
	return &cli.Command{
		Name:      "literal",
		Usage:     "Parse literal text as a typed value",
		ArgsUsage: "TEXT",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Literal kind: decimal, string, cstring, date, time, timetz, timestamp, timestamptz, uuid",
				Value:   "decimal",
			},
			&cli.IntFlag{
				Name:    "precision",
				Aliases: []string{"p"},
				Usage:   "Max fractional-second digits, -1 to keep all",
				Value:   -1,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := cmd.Args().First()
			if text == "" {
				return fmt.Errorf("missing TEXT argument")
			}
			formatter, err := setup(cmd)
			if err != nil {
				return err
			}
			kind := cmd.String("kind")
			value, precision, err := parseLiteral(kind, text, int(cmd.Int("precision")))
			if err != nil {
				return err
			}
			return formatter.Format(
				[]string{"KIND", "INPUT", "VALUE", "PRECISION"},
				[][]string{{strings.ToUpper(kind), text, value, precision}},
			)
		},
	}
}

// parseLiteral dispatches to the literal parser for kind and renders
// the result for display.
func parseLiteral(kind, text string, maxPrecision int) (value, precision string, err error) {
	precision = "-"
	switch kind {
	case "decimal":
		d, err := literal.ParseDecimal(text)
		if err != nil {
			return "", "", err
		}
		value = d.String()
	case "string":
		if err := checkQuoted(text); err != nil {
			return "", "", err
		}
		value = literal.ParseString(text)
	case "cstring":
		if err := checkQuoted(text); err != nil {
			return "", "", err
		}
		v, err := literal.ParseCString(text)
		if err != nil {
			return "", "", err
		}
		value = v
	case "date":
		t, err := literal.ParseDate(text)
		if err != nil {
			return "", "", err
		}
		value = t.Format(literal.DateFormat)
	case "time":
		pt, err := literal.ParseTime(text, maxPrecision)
		if err != nil {
			return "", "", err
		}
		value = literal.TimeValue{PrecisionTime: pt}.String()
		precision = strconv.Itoa(pt.Precision)
	case "timetz":
		pt, err := literal.ParseTimeTz(text, maxPrecision)
		if err != nil {
			return "", "", err
		}
		value = literal.TimeValue{PrecisionTime: pt, Zoned: true}.String()
		precision = strconv.Itoa(pt.Precision)
	case "timestamp":
		pt, err := literal.ParseTimestamp(text, maxPrecision)
		if err != nil {
			return "", "", err
		}
		value = literal.TimestampValue{PrecisionTime: pt}.String()
		precision = strconv.Itoa(pt.Precision)
	case "timestamptz":
		pt, err := literal.ParseTimestampTz(text, maxPrecision)
		if err != nil {
			return "", "", err
		}
		value = literal.TimestampValue{PrecisionTime: pt, Zoned: true}.String()
		precision = strconv.Itoa(pt.Precision)
	case "uuid":
		id, err := literal.ParseUUID(text)
		if err != nil {
			return "", "", err
		}
		value = id.String()
	default:
		return "", "", fmt.Errorf("unknown literal kind %q", kind)
	}
	return value, precision, nil
}

// checkQuoted rejects text the string parsers assume the grammar has
// already matched as a quoted literal.
func checkQuoted(text string) error {
	if len(text) < 2 || !strings.HasSuffix(text, "'") ||
		strings.IndexByte(text, '\'') == len(text)-1 {
		return fmt.Errorf("string literal must be quoted, e.g. 'abc'")
	}
	return nil
}

func intervalCommand() *cli.Command {
	return &cli.Command{
		Name:      "interval",
		Usage:     "Evaluate interval literal text against a qualifier",
		ArgsUsage: "TEXT",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:  "from",
				Usage: "Leading interval field (year, month, day, hour, minute, second)",
				Value: "day",
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Trailing interval field, defaults to the leading field",
			},
			&cli.BoolFlag{
				Name:  "negate",
				Usage: "Apply a leading minus sign outside the quoted text",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text := cmd.Args().First()
			if text == "" {
				return fmt.Errorf("missing TEXT argument")
			}
			formatter, err := setup(cmd)
			if err != nil {
				return err
			}
			from, err := literal.ParseUnit(cmd.String("from"))
			if err != nil {
				return err
			}
			to := from
			if s := cmd.String("to"); s != "" {
				if to, err = literal.ParseUnit(s); err != nil {
					return err
				}
			}
			q, err := literal.NewQualifier(from, to)
			if err != nil {
				return err
			}
			sign := 1
			if cmd.Bool("negate") {
				sign = -1
			}
			iv, err := literal.ParseInterval(sign, text, q)
			if err != nil {
				return err
			}
			unit := "MILLISECONDS"
			var total int64
			if q.IsYearMonth() {
				unit = "MONTHS"
				total, err = iv.Months()
			} else {
				total, err = iv.Millis()
			}
			if err != nil {
				return err
			}
			return formatter.Format(
				[]string{"INTERVAL", "QUALIFIER", unit},
				[][]string{{iv.String(), q.String(), strconv.FormatInt(total, 10)}},
			)
		},
	}
}

func collationCommand() *cli.Command {
	return &cli.Command{
		Name:      "collation",
		Usage:     "Split a collation name into charset, locale and strength",
		ArgsUsage: "NAME",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return fmt.Errorf("missing NAME argument")
			}
			formatter, err := setup(cmd)
			if err != nil {
				return err
			}
			c, err := literal.ParseCollation(name, literal.DefaultConfig)
			if err != nil {
				return err
			}
			return formatter.Format(
				[]string{"CHARSET", "LOCALE", "STRENGTH"},
				[][]string{{c.Charset, c.Locale.String(), c.Strength}},
			)
		},
	}
}

func exprCommand() *cli.Command {
	return &cli.Command{
		Name:      "expr",
		Usage:     "Assemble a whitespace-separated token list into an expression tree",
		ArgsUsage: "TOKEN...",
		Flags:     commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tokens := strings.Fields(strings.Join(cmd.Args().Slice(), " "))
			if len(tokens) == 0 {
				return fmt.Errorf("missing expression tokens")
			}
			formatter, err := setup(cmd)
			if err != nil {
				return err
			}
			node, err := expr.Reduce(buildItems(tokens))
			var inv *expr.InvariantError
			if errors.As(err, &inv) {
				return fmt.Errorf("internal error: %w", err)
			}
			if err != nil {
				return err
			}
			return formatter.Format(
				[]string{"EXPRESSION", "TREE", "POSITION"},
				[][]string{{strings.Join(tokens, " "), node.String(), node.Span().String()}},
			)
		},
	}
}

func caretsCommand() *cli.Command {
	return &cli.Command{
		Name:      "carets",
		Usage:     "Mark a source region with carets, reading SQL from a file or stdin",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "line", Usage: "Start line", Value: 1},
			&cli.IntFlag{Name: "col", Usage: "Start column", Value: 1},
			&cli.IntFlag{Name: "end-line", Usage: "End line, defaults to start line"},
			&cli.IntFlag{Name: "end-col", Usage: "End column, defaults to start column"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src, err := readSource(cmd.Args().First())
			if err != nil {
				return err
			}
			line, col := int(cmd.Int("line")), int(cmd.Int("col"))
			endLine, endCol := int(cmd.Int("end-line")), int(cmd.Int("end-col"))
			if endLine == 0 {
				endLine = line
			}
			if endCol == 0 {
				endCol = col
			}
			sp := diag.Range(line, col, endLine, endCol)
			fmt.Printf("%s\n%s\n", sp, diag.Carets(src, sp))
			return nil
		},
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("missing FILE argument (use - for stdin)")
	}
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// exprOps is the operator table the expr command demonstrates. A real
// dialect registers its own table; this one covers the usual logical,
// comparison and arithmetic operators.
var exprOps = map[string]*expr.Operator{
	"OR":  expr.InfixOp("OR", 4),
	"AND": expr.InfixOp("AND", 6),
	"NOT": expr.PrefixOp("NOT", 8),
	"=":   expr.InfixOp("=", 10),
	"<>":  expr.InfixOp("<>", 10),
	"<":   expr.InfixOp("<", 10),
	">":   expr.InfixOp(">", 10),
	"<=":  expr.InfixOp("<=", 10),
	">=":  expr.InfixOp(">=", 10),
	"||":  expr.InfixOp("||", 18),
	"+":   expr.InfixOp("+", 20),
	"-":   expr.InfixOp("-", 20),
	"*":   expr.InfixOp("*", 22),
	"/":   expr.InfixOp("/", 22),
}

// signOps replace + and - when they appear where an operand is
// expected.
var signOps = map[string]*expr.Operator{
	"-": expr.PrefixOp("-", 26),
	"+": expr.PrefixOp("+", 26),
}

// buildItems classifies whitespace-separated tokens into operands and
// operator occurrences, tracking one-line source positions.
func buildItems(tokens []string) []expr.Item {
	items := make([]expr.Item, 0, len(tokens))
	col := 1
	prevAtom := false
	for _, tok := range tokens {
		pos := diag.Range(1, col, 1, col+len(tok)-1)
		col += len(tok) + 1
		up := strings.ToUpper(tok)
		if op, ok := exprOps[up]; ok {
			if sign, isSign := signOps[up]; isSign && !prevAtom {
				items = append(items, expr.NewOpItem(sign, pos))
			} else {
				items = append(items, expr.NewOpItem(op, pos))
			}
			prevAtom = op.Kind == expr.Postfix
			continue
		}
		switch {
		case len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'"):
			items = append(items, &expr.Literal{
				Value: literal.StringValue{S: literal.ParseString(tok)},
				Pos:   pos,
			})
		default:
			if d, err := literal.ParseDecimal(tok); err == nil {
				items = append(items, &expr.Literal{
					Value: literal.Numeric{Val: d},
					Pos:   pos,
				})
			} else {
				items = append(items, &expr.Identifier{Name: tok, Pos: pos})
			}
		}
		prevAtom = true
	}
	return items
}
