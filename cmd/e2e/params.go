package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/spec-kit/mock-bank-api/internal/suite"
)

type commandParams struct {
	baseURL string
	filters suite.RegexFilters
	debug   bool
	seed    int64
}

func (c *commandParams) Read(args []string, defaultURL string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.baseURL, "url", defaultURL, "mock API base URL")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "print request/response debug output for failed tests")
	fs.Int64Var(&c.seed, "seed", 0, "fixture factory seed (0 picks a random seed)")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.baseURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand returns a shell command that runs only the failed scenarios again.
func (c *commandParams) rerunCommand(failures []suite.TestResult) string {
	var b commandBuilder
	b.add("go", "run", "./cmd/e2e", "-url", c.baseURL)
	if c.debug {
		b.add("-debug")
	}
	names := make([]string, 0, len(failures))
	for _, f := range failures {
		names = append(names, regexp.QuoteMeta(f.TestID.String()))
	}
	b.add("-run", "^("+strings.Join(names, "|")+")$")
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
