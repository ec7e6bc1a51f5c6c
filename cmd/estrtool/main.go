// Command estrtool is a small driver over the tinystr engine: it
// exercises construction, concatenation, numeric conversion,
// magic-string recognition and pool stats end-to-end from the command
// line the way a human would poke at the library while learning it.
// Equality, relational compare, substring and trim have no subcommand.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/vsperson/tinystr"
	"github.com/vsperson/tinystr/config"
	"github.com/vsperson/tinystr/internal/elog"
)

func main() {
	app := &cli.App{
		Name:  "estrtool",
		Usage: "inspect and exercise the tinystr string engine",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable precondition assertions and verbose logging"},
			&cli.StringFlag{Name: "config", Usage: "path to a TOML config file"},
		},
		Commands: []*cli.Command{
			newCmdInspect(),
			newCmdConcat(),
			newCmdNumeric(),
			newCmdMagic(),
			newCmdStats(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newEngine(c *cli.Context) (*tinystr.Engine, error) {
	e := tinystr.NewEngine(config.Default(), nil)
	e.WithLogger(elog.New(c.Bool("debug")))

	if path := c.String("config"); path != "" {
		if err := e.LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if c.Bool("debug") {
		e.SetDebug(true)
	}
	return e, nil
}

func newCmdInspect() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "build a string and report its canonical storage variant",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("inspect takes exactly one argument", 1)
			}
			e, err := newEngine(c)
			if err != nil {
				return err
			}
			s := e.NewFromBytes([]byte(c.Args().First()))
			defer e.Deref(s)

			fmt.Printf("container=%s size=%d length=%d hash=%#x\n",
				s.Container(), e.Size(s), e.Len(s), s.Hash())
			return nil
		},
	}
}

func newCmdConcat() *cli.Command {
	return &cli.Command{
		Name:      "concat",
		Usage:     "concatenate two strings and report the (non-canonicalized) result",
		ArgsUsage: "<a> <b>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("concat takes exactly two arguments", 1)
			}
			e, err := newEngine(c)
			if err != nil {
				return err
			}
			a := e.NewFromBytes([]byte(c.Args().Get(0)))
			b := e.NewFromBytes([]byte(c.Args().Get(1)))
			defer e.Deref(a)
			defer e.Deref(b)

			result := e.Concat(a, b)
			defer e.Deref(result)

			fmt.Printf("%s container=%s size=%d length=%d hash=%#x\n",
				e.Bytes(result), result.Container(), e.Size(result), e.Len(result), result.Hash())
			return nil
		},
	}
}

func newCmdNumeric() *cli.Command {
	return &cli.Command{
		Name:      "numeric",
		Usage:     "convert a string to a number and test array-index validity",
		ArgsUsage: "<text>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("numeric takes exactly one argument", 1)
			}
			e, err := newEngine(c)
			if err != nil {
				return err
			}
			s := e.NewFromBytes([]byte(c.Args().First()))
			defer e.Deref(s)

			num := e.ToNumber(s)
			index, isIndex := e.GetArrayIndex(s)

			fmt.Printf("number=%v arrayIndex=%d isArrayIndex=%t\n", num, index, isIndex)
			return nil
		},
	}
}

func newCmdMagic() *cli.Command {
	return &cli.Command{
		Name:      "magic",
		Usage:     "test whether a string recognizes as a built-in or extended magic string",
		ArgsUsage: "<text>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "register", Usage: "register an application-extended magic string before testing"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("magic takes exactly one argument", 1)
			}
			e, err := newEngine(c)
			if err != nil {
				return err
			}
			for _, s := range c.StringSlice("register") {
				e.RegisterExtendedMagicString([]byte(s))
			}

			s := e.NewFromBytes([]byte(c.Args().First()))
			defer e.Deref(s)

			if id, ok := e.MagicID(s); ok {
				fmt.Printf("builtin magic id=%d\n", id)
				return nil
			}
			if id, ok := e.ExtendedMagicID(s); ok {
				fmt.Printf("extended magic id=%d\n", id)
				return nil
			}
			fmt.Println("not a magic string")
			return nil
		},
	}
}

func newCmdStats() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "report pool and table statistics for a fresh engine",
		Action: func(c *cli.Context) error {
			e, err := newEngine(c)
			if err != nil {
				return err
			}
			fmt.Printf("chunk pool outstanding: %s\n", humanize.Bytes(uint64(e.ChunkBytesOutstanding())))
			fmt.Printf("number pool outstanding: %s\n", humanize.Bytes(uint64(e.NumberBytesOutstanding())))
			fmt.Printf("extended magic strings registered: %d\n", e.ExtendedMagicCount())
			return nil
		},
	}
}
