// Command filewriter appends stdin to a file and reopens the file when it
// disappears or is replaced, e.g. by an external log rotator.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/kjk/filewriter/appender"
	"github.com/kjk/filewriter/filerotate"
	"github.com/kjk/filewriter/log"
)

const verboseEnv = "FILEWRITER_VERBOSE"

func printUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: %s [-v] <filename>\n", name)
	fmt.Fprintf(w, "Writes everything from stdin to <filename> and reopens the output file if it disappears or changes inode\n")
}

func didOpen(path string, id filerotate.Identity) {
	log.Verbosef("opened '%s', inode %s", path, id)
}

func didClose(path string, didRotate bool, written int64) {
	size := humanize.Bytes(uint64(written))
	if didRotate {
		log.Verbosef("'%s' was rotated, closed old file after writing %s", path, size)
		return
	}
	log.Verbosef("closed '%s' after writing %s", path, size)
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	name := filepath.Base(args[0])
	log.Output = stderr
	log.VerboseFromEnv(verboseEnv)

	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		printUsage(stderr, name)
	}
	verbose := flags.BoolP("verbose", "v", false, "log opens, rotations and closes to stderr")
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		// pflag stays silent with ContinueOnError
		log.Errorf("%s", err)
		printUsage(stderr, name)
		return 1
	}
	if *verbose {
		log.Verbose = true
	}
	if flags.NArg() < 1 {
		printUsage(stderr, name)
		return 1
	}

	config := &filerotate.Config{
		Path:     flags.Arg(0),
		DidOpen:  didOpen,
		DidClose: didClose,
	}
	f, err := filerotate.New(config)
	if log.IfErrf(err) {
		return 1
	}
	err = appender.RunFile(stdin, f)
	if log.IfErrf(err, "%s", appender.Message(err)) {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stderr))
}
