package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"sitegen/convert"
)

var cli struct {
	Input   string `arg:"" optional:"" help:"Markdown file to convert. Defaults to stdin." type:"existingfile"`
	Output  string `arg:"" optional:"" help:"File to write the HTML fragment to. Defaults to stdout." type:"path"`
	Verbose bool   `short:"v" help:"Enable verbose logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("sitegen"),
		kong.Description("Convert a markdown document to an HTML fragment."),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	var in io.Reader = os.Stdin
	if cli.Input != "" {
		f, err := os.Open(cli.Input)
		if err != nil {
			slog.Error("Failed to open input", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	var out io.Writer = os.Stdout
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			slog.Error("Failed to create output", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	slog.Debug("Converting", "input", cli.Input, "output", cli.Output)
	if err := convert.ToHTML(in, out); err != nil {
		slog.Error("Conversion failed", "error", err)
		os.Exit(1)
	}
}
