package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/phao5814/gdb-colour-filter/internal/backtrace"
	"github.com/phao5814/gdb-colour-filter/internal/logger"
	"github.com/phao5814/gdb-colour-filter/pkg/color"
)

// Main entry point for the colourbt backtrace printer.
func main() {
	options := backtrace.Backtrace{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.IntVar(&options.Width, "w", 0, "Screen width (0 = detect)")
	flag.IntVar(&options.PID, "p", 0, "Attach to process ID")
	flag.StringVar(&options.GDBPath, "x", "gdb", "Path to gdb executable")
	flag.StringVar(&options.BreakAt, "b", "", "Run to breakpoint location (e.g., main, file.c:12)")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] <program> [core]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if len(args) == 0 && options.PID == 0 {
		log.Fatal("No target provided", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	if len(args) > 0 {
		options.Target = args[0]
	}
	if len(args) > 1 {
		options.Core = args[1]
	}

	err := options.Run()
	if err != nil {
		log.Fatal("Backtrace failed", "error", err)
	}
}
