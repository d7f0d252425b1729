package main

import (
	"os"

	"github.com/handiism/kanji-colorize/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
