package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/dtd"
	"github.com/lestrrat-go/dtd/encoding"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type cmdopts struct {
	InternalSubset string `long:"internal-subset" value-name:"FILE" description:"parse FILE as the internal subset before each DTD"`
	Encoding       string `long:"encoding" value-name:"NAME" description:"encoding of the input (detected if not given)"`
	LoadExternal   bool   `long:"load-external" description:"look up external entities relative to each DTD"`
	Dump           bool   `long:"dump" description:"print the parsed declarations"`
	Tables         bool   `long:"tables" description:"print elements, attributes and entities as tables"`
	Spew           bool   `long:"spew" description:"dump the internal structure of the parsed DTD"`
	Events         bool   `long:"events" description:"print declaration events as they are reported"`
	NoColor        bool   `long:"no-color" description:"do not colorize errors and warnings"`
	Version        bool   `long:"version" description:"display the version of the DTD library used"`
}

func main() {
	os.Exit(_main())
}

func _main() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "dtdlint: using dtd version %s\n", dtd.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : dtdlint [options] DTDfiles ...
	Parse the DTD files and report errors and warnings.
	Reads from the standard input when no file is given.
	The exit status is 0 only if every DTD is well formed and valid.
	--internal-subset FILE : parse FILE as the internal subset first
	--encoding NAME : encoding of the input (detected if not given)
	--load-external : look up external entities relative to each DTD
	--dump : print the parsed declarations
	--tables : print elements, attributes and entities as tables
	--spew : dump the internal structure of the parsed DTD
	--events : print declaration events as they are reported
	--no-color : do not colorize errors and warnings
	--version : display the version of the DTD library used
`)
}

type input struct {
	name string
	dir  string
	r    io.Reader
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, args)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	if opts.NoColor || !isTerminal(stderr) {
		color.NoColor = true
	}

	var inputs []input
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			inputs = append(inputs, input{name: f, dir: filepath.Dir(f)})
		}
	case !isTerminal(stdin):
		inputs = append(inputs, input{name: "-", dir: ".", r: stdin})
	default:
		showUsage(stderr)
		return 1
	}

	var options []dtd.ParseOption
	if opts.InternalSubset != "" {
		subset, err := readText(opts.InternalSubset, nil, opts.Encoding)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
		options = append(options, dtd.WithInternalSubset(subset))
	}
	if opts.LoadExternal {
		options = append(options, dtd.WithExternalEntityLoading(true))
	}
	if opts.Events {
		options = append(options, dtd.WithHandler(newEventEmitter(stdout)))
	}

	p := dtd.NewParser(options...)
	status := 0
	for _, in := range inputs {
		text, err := readText(in.name, in.r, opts.Encoding)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			status = 1
			continue
		}

		d := p.Parse(context.Background(), text, dtd.WithBaseDir(in.dir))
		report(stderr, in.name, d)
		if !d.IsWellFormedAndValid() {
			status = 1
		}

		if opts.Dump {
			if err := dtd.DumpDTD(stdout, d); err != nil {
				fmt.Fprintf(stderr, "%s\n", errors.Wrap(err, "failed to dump DTD"))
				return 1
			}
		}
		if opts.Tables {
			renderTables(stdout, d)
		}
		if opts.Spew {
			spew.Fdump(stdout, d)
		}
	}

	return status
}

// readText reads a whole file, or r if it is not nil, and decodes it
// to UTF-8
func readText(name string, r io.Reader, encname string) (string, error) {
	if r == nil {
		f, err := os.Open(name)
		if err != nil {
			return "", errors.Wrapf(err, "failed to open %s", name)
		}
		defer f.Close()
		r = f
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", name)
	}

	text, err := encoding.Decode(buf, encname)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode %s", name)
	}
	return text, nil
}

var (
	errorColor   = color.New(color.FgHiRed, color.Bold)
	warningColor = color.New(color.FgHiYellow)
)

func report(out io.Writer, name string, d *dtd.DTD) {
	for _, e := range d.Errors() {
		fmt.Fprintf(out, "%s: %s %s\n", name, errorColor.Sprint("error:"), e)
	}
	for _, w := range d.Warnings() {
		fmt.Fprintf(out, "%s: %s %s\n", name, warningColor.Sprint("warning:"), w)
	}
}
