package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/Bahjat/seo-tag-inspector/internal/inspector"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/errs"
	"github.com/Bahjat/seo-tag-inspector/internal/platform/logger"
	"github.com/Bahjat/seo-tag-inspector/internal/proxyclient"
	"github.com/Bahjat/seo-tag-inspector/internal/report"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailed    = 1
	exitUsage     = 2
	exitProxyDown = 3
)

type options struct {
	Proxy    string        `long:"proxy" env:"SEO_PROXY_URL" default:"http://localhost:4000" description:"Base URL of the fetch proxy"`
	Timeout  time.Duration `long:"timeout" default:"30s" description:"Overall time limit for one inspection"`
	JSON     bool          `long:"json" description:"Print the result as JSON"`
	LogLevel string        `long:"log-level" env:"LOG_LEVEL" default:"ERROR" description:"Log level (DEBUG, INFO, WARN, ERROR)"`

	Args struct {
		URL string `positional-arg-name:"URL" description:"Page to inspect"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS] URL"

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logger.NewTo(stderr, opts.LogLevel, "text")

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	insp := inspector.New(proxyclient.New(opts.Proxy, opts.Timeout), nil, log)
	result, err := insp.Inspect(ctx, opts.Args.URL)
	if err != nil {
		var appErr *errs.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintln(stderr, appErr.Message)
		} else {
			fmt.Fprintln(stderr, err)
		}
		if errs.KindOf(err) == errs.UpstreamUnavailable {
			return exitProxyDown
		}
		return exitFailed
	}

	render := report.Text
	if opts.JSON {
		render = report.JSON
	}
	if err := render(stdout, result); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailed
	}
	return exitOK
}
