package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/op8d/lexemizer"
)

var cli struct {
	Source string `arg:"" optional:"" help:"Rust 2018 source text to lexemize."`
	File   string `short:"f" type:"existingfile" help:"Read the source text from a file instead."`
	Debug  bool   `help:"Dump the raw result instead of the rendering."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Divide Rust 2018 source text into classified lexemes.`),
	)
	src := cli.Source
	if cli.File != "" {
		if cli.Source != "" {
			kctx.Fatalf("provide either a source argument or --file, not both")
		}
		data, err := os.ReadFile(cli.File)
		kctx.FatalIfErrorf(err)
		src = string(data)
	} else if cli.Source == "" {
		kctx.Fatalf(`expected a source argument or --file, eg. lexemize "const ROUGHLY_PI: f32 = 3.14;"`)
	}
	result := lexemizer.Lexemize(src)
	if cli.Debug {
		repr.Println(result)
		return
	}
	fmt.Print(result)
}
