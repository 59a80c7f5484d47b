package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

const progName = "pkz"
const usageMessageRaw = `
Usage: pkz [-d] SUBCOMMAND FILE

Subcommands:
  compress FILE
	Compress FILE and write the result to FILE.pkz.

  decompress FILE.pkz
	Decompress FILE.pkz and write the result to FILE.

Options:
  -d, -debug
	Log every compression step to standard error.
`

var log = logging.MustGetLogger("pkz/cmd")

// usageError reports a malformed command line.
type usageError string

func (e usageError) Error() string { return string(e) }

func usageErrorf(format string, args ...interface{}) error {
	return usageError(fmt.Sprintf(format, args...))
}

// invocation is a fully parsed command line.
type invocation struct {
	command func(path string) (string, error)
	path    string
	debug   bool
}

// argCursor hands out positional arguments in order.
type argCursor struct {
	args []string
	next int
}

func (c *argCursor) take(expected string) (string, error) {
	if c.next >= len(c.args) {
		return "", usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := c.args[c.next]
	c.next++
	return arg, nil
}

func (c *argCursor) done() error {
	if c.next < len(c.args) {
		return usageErrorf("too many arguments at %d (%q)", c.next, c.args[c.next])
	}
	return nil
}

// parseArgs parses the command line, excluding the program name.  It returns
// flag.ErrHelp when help was requested.
func parseArgs(args []string) (invocation, error) {
	var inv invocation

	flags := flag.NewFlagSet(progName, flag.ContinueOnError)
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	flags.BoolVar(&inv.debug, "debug", false, "")
	flags.BoolVar(&inv.debug, "d", false, "")
	if err := flags.Parse(args); err == flag.ErrHelp {
		return inv, err
	} else if err != nil {
		return inv, usageErrorf("%s", err.Error())
	}

	cursor := &argCursor{args: flags.Args()}
	cmdArg, err := cursor.take("SUBCOMMAND")
	if err != nil {
		return inv, err
	}
	switch cmdArg {
	case "compress":
		inv.command = compressFile
	case "decompress":
		inv.command = decompressFile
	default:
		return inv, usageErrorf("bad subcommand %q", cmdArg)
	}

	if inv.path, err = cursor.take("FILE"); err != nil {
		return inv, err
	}
	return inv, cursor.done()
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	usage := strings.TrimLeft(usageMessageRaw, "\n")
	inv, err := parseArgs(os.Args[1:])
	var uerr usageError
	switch {
	case err == flag.ErrHelp:
		io.WriteString(os.Stdout, usage)
		os.Exit(0)
	case errors.As(err, &uerr):
		fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, uerr, usage)
		os.Exit(64)
	}

	if inv.debug {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	outPath, err := inv.command(inv.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err)
		os.Exit(1)
	}
	log.Infof("wrote %s", outPath)
}
