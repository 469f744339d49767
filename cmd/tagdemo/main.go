// Command tagdemo exercises the taglog package end to end: console setup,
// threshold selection, palette loading and a showcase of markup output.
//
// Usage:
//
//	tagdemo [--level debug|info|warn|error|none] [--palette file.toml] [--no-color]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/abyssdigger/taglog"
	"github.com/adrg/xdg"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

var (
	flagLevel   = pflag.StringP("level", "l", "", "override the LOG_LEVEL threshold (debug|info|warn|error|none)")
	flagPalette = pflag.StringP("palette", "p", "", "TOML alias palette file (default: tagdemo/palette.toml under the XDG config dir)")
	flagNoColor = pflag.Bool("no-color", false, "compose plain lines without ANSI escapes")
)

func main() {
	pflag.Parse()

	restore, err := taglog.EnableConsole(os.Stdout)
	if err == nil {
		defer restore()
	}

	level := taglog.Threshold()
	if *flagLevel != "" {
		level = taglog.ParseLevel(*flagLevel)
	}
	logger := taglog.InitWithParams(level, os.Stdout)
	if *flagNoColor || !taglog.WantColor(os.Stdout) {
		logger.SetColors(false)
	}

	loadPalette(logger)
	logger.Alias("hot", "bold,red").Alias("calm", "italic,cyan")

	logger.Infof("threshold is <bold>%s</>, terminal profile %s", level, profileName(taglog.Profile()))
	showcase(logger)
}

// loadPalette registers aliases from the palette file, looking it up under
// the XDG config home when no explicit path is given.
func loadPalette(logger *taglog.Logger) {
	path := *flagPalette
	if path == "" {
		found, err := xdg.SearchConfigFile("tagdemo/palette.toml")
		if err != nil {
			return // no palette anywhere, inline aliases still work
		}
		path = found
	}
	n, err := logger.Aliases().LoadPaletteFile(path)
	if err != nil {
		logger.Errorf("palette <underline>%s</>: %v", path, err)
		return
	}
	logger.Debugf("palette <underline>%s</>: %d aliases", path, n)
}

func showcase(logger *taglog.Logger) {
	logger.NewLine()
	logger.Debug("starting the <gray>markup</> walk-through")
	logger.Info("styles: <bold>bold</>, <italic>italic</>, <underline>underline</>, <bold,underline>both</>")
	logger.Info("colors: <red>red</> <green>green</> <yellow>yellow</> <blue>blue</> <magenta>magenta</> <cyan>cyan</> <gray>gray</>")
	logger.Info("first color wins: <red,blue>red, not blue</>")
	logger.Warn("unknown tokens vanish: <sparkle>just text</>")
	logger.Warn("malformed markup passes through: a < b, <bold>unterminated")
	logger.Error("aliases: <hot>alert!</> and <calm>all clear</>")

	for _, name := range logger.Aliases().Names() {
		tokens, _ := logger.Aliases().Lookup(name)
		logger.Debugf("alias <bold>%s</> = %s", name, tokens)
	}

	logger.NewLine()
	log.SetFlags(0) // taglog decorates the line, the std logger must not
	log.SetOutput(logger.Lvl(taglog.LVL_INFO))
	log.Printf("routed through the standard log package, pid %d", os.Getpid())

	fmt.Fprintf(logger.Lvl(taglog.LVL_WARN), "io.Writer adapter at %s level", taglog.LVL_WARN)
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256-color"
	case termenv.ANSI:
		return "ansi"
	}
	return "monochrome"
}
