// clr demo binary: showcases the styling table and feeds the process-wide
// tag filter from command line flags.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/abyssdigger/clr"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "clr",
		Usage: "Console text styling and logging showcase",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "blacklist-tags",
				Usage: "Comma-separated tags to suppress",
			},
			&cli.StringFlag{
				Name:  "whitelist-tags",
				Usage: "Comma-separated tags to rescue from blacklisting",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML configuration file path",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			clr.Blacklist(clr.SplitTagList(c.String("blacklist-tags"))...)
			clr.Whitelist(clr.SplitTagList(c.String("whitelist-tags"))...)
			if path := c.String("config"); path != "" {
				cfg, err := clr.LoadConfig(path)
				if err != nil {
					return ctx, err
				}
				cfg.SeedFilter(nil)
				clr.Configure(cfg.Options()...)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			stylesCommand(),
			logCommand(),
			identCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// stylesCommand prints the whole built-in style table.
func stylesCommand() *cli.Command {
	return &cli.Command{
		Name:  "styles",
		Usage: "Show the built-in style table",
		Action: func(ctx context.Context, c *cli.Command) error {
			named := []struct {
				name  string
				style clr.Style
			}{
				{"Bold", clr.Bold}, {"Dim", clr.Dim}, {"Italic", clr.Italic},
				{"Underline", clr.Underline}, {"Inverse", clr.Inverse}, {"Strike", clr.Strike},
				{"Black", clr.Black}, {"Red", clr.Red}, {"Green", clr.Green},
				{"Yellow", clr.Yellow}, {"Blue", clr.Blue}, {"Magenta", clr.Magenta},
				{"Cyan", clr.Cyan}, {"White", clr.White}, {"Gray", clr.Gray},
				{"BrightRed", clr.BrightRed}, {"BrightGreen", clr.BrightGreen},
				{"BrightYellow", clr.BrightYellow}, {"BrightBlue", clr.BrightBlue},
				{"BrightMagenta", clr.BrightMagenta}, {"BrightCyan", clr.BrightCyan},
				{"BrightWhite", clr.BrightWhite},
			}
			for _, n := range named {
				fmt.Println(n.style(n.name))
			}
			fmt.Println(clr.Rainbow("Rainbow: all the colors at once"))
			fmt.Println(clr.Rainbow16("Rainbow16: the 16-color variant"))
			fmt.Println(clr.RGB(255, 128, 0)("RGB(255,128,0)"), clr.Color256(93)("Color256(93)"))
			return nil
		},
	}
}

// logCommand emits one line through the full pipeline, with optional tags,
// so the filter flags can be tried out.
func logCommand() *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "Emit a log line through the pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tags",
				Usage: "Comma-separated tags to attach to the logger",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Level helper to use (log, error, warn, info, debug, ok, neutral, bad)",
				Value: "log",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			l := clr.New(clr.WithTags(clr.SplitTagList(c.String("tags"))...))
			defer l.Wait()
			msg := "styled " + clr.Green("hello") + " from clr " + l.Timestamp()
			if c.Args().Len() > 0 {
				msg = c.Args().First()
			}
			switch c.String("level") {
			case "error":
				l.Error(msg)
			case "warn":
				l.Warn(msg)
			case "info":
				l.Info(msg)
			case "debug":
				l.Debug(msg)
			case "ok", "good":
				l.Ok(msg)
			case "neutral":
				l.Neutral(msg)
			case "bad":
				l.Bad(msg)
			default:
				l.Log(msg)
			}
			return nil
		},
	}
}

// identCommand prints random identifiers (the bundled utility).
func identCommand() *cli.Command {
	return &cli.Command{
		Name:  "ident",
		Usage: "Print a random identifier",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "short",
				Usage: "Print a short identifier of N characters instead",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if n := c.Int("short"); n > 0 {
				fmt.Println(clr.ShortIdent(int(n)))
			} else {
				fmt.Println(clr.NewIdent())
			}
			return nil
		},
	}
}
