// Command propose interprets .prs geometry scripts and emits SVG, the CLI
// surface of spec.md §6. Structurally grounded on original_source/src/cli.rs
// clap::Parser driver (file-vs-directory branching, clear() between files
// in directory mode); built on github.com/urfave/cli/v2, the pack's
// declarative-flag-parsing analogue of clap.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/urfave/cli/v2"

	"github.com/atzlt/propose/config"
	"github.com/atzlt/propose/interp"
	"github.com/atzlt/propose/lang"
	"github.com/atzlt/propose/lint"
	"github.com/atzlt/propose/parse"
)

func main() {
	app := &cli.App{
		Name:  "propose",
		Usage: "interpret a geometry script and emit SVG",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output path (file mode only)"},
			&cli.StringFlag{Name: "ext", Aliases: []string{"x"}, Value: "prs", Usage: "input file extension to match in directory mode"},
			&cli.BoolFlag{Name: "dry-run", Usage: "interpret without writing any file; print the emitted SVG to stdout"},
			&cli.BoolFlag{Name: "strict", Usage: "treat lint findings as a run failure"},
		},
		ArgsUsage: "<input>",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	input := c.Args().First()
	if input == "" {
		return cli.Exit("missing input path", 1)
	}
	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return runDir(c, input)
	}
	return runFile(c, input, c.String("output"))
}

func runDir(c *cli.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	ext := "." + strings.TrimPrefix(c.String("ext"), ".")
	state := interp.New()
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		path := filepath.Join(dir, e.Name())
		output := strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
		if err := interpretOne(c, state, path, output); err != nil {
			log.Printf("cannot interpret %s: %v", path, err)
		}
		state.Clear()
	}
	return nil
}

func runFile(c *cli.Context, path, output string) error {
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".svg"
	}
	return interpretOne(c, interp.New(), path, output)
}

// interpretOne reads, transcodes, parses, lints and interprets one script,
// then writes (or prints, under --dry-run) the resulting SVG.
func interpretOne(c *cli.Context, state *interp.State, path, output string) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	main, err := parse.Parse(src)
	if err != nil {
		return fmt.Errorf("cannot interpret file: %w", err)
	}
	if c.Bool("strict") {
		findings := lint.CheckColors(main)
		findings = append(findings, lint.CheckLabelBounds(main, config.NewDefault())...)
		if len(findings) > 0 {
			for _, f := range findings {
				log.Println("lint:", f.String())
			}
			return fmt.Errorf("%d lint finding(s) in %s", len(findings), path)
		}
	}
	if c.Bool("dry-run") {
		// the script's own save statements emit without writing a file
		for i, stmt := range main.Statements {
			if _, ok := stmt.(lang.Save); ok {
				main.Statements[i] = lang.Save{}
			}
		}
	}
	if err := state.EvalProgram(main); err != nil {
		return fmt.Errorf("cannot interpret file: %w", err)
	}
	if c.Bool("dry-run") {
		svg, err := state.Emit()
		if err != nil {
			return err
		}
		fmt.Println(svg)
		return nil
	}
	svg, err := state.Emit()
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("cannot save to output: %w", err)
	}
	return nil
}

// readSource transcodes a script file of unknown/legacy encoding to UTF-8
// before handing it to the lexer, the direct analogue of the teacher's
// ReadIcon using charset.NewReaderLabel to transcode arbitrary XML source.
func readSource(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	r, err := charset.NewReader(f, "text/plain")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}
