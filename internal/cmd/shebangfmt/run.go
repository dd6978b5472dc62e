package shebangfmt

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hashbang/shebangfmt/internal/cli"
	"github.com/hashbang/shebangfmt/internal/diffutil"
	"github.com/hashbang/shebangfmt/internal/filekind"
	"github.com/hashbang/shebangfmt/internal/shebang"
	"github.com/hashbang/shebangfmt/internal/version"
	"github.com/hashbang/shebangfmt/internal/watch"
)

// Run executes shebangfmt with the given arguments.
// Returns exit code.
func Run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return RunWithIO(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

// RunWithIO allows custom IO for embedding/testing.
func RunWithIO(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		writeFlag   bool
		diffFlag    bool
		checkFlag   bool
		listFlag    bool
		watchFlag   bool
		versionFlag bool
	)

	fs := flag.NewFlagSet("shebangfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&writeFlag, "w", false, "write result to file instead of stdout")
	fs.BoolVar(&diffFlag, "d", false, "display diff instead of formatted output")
	fs.BoolVar(&checkFlag, "check", false, "exit with non-zero status if files need formatting")
	fs.BoolVar(&listFlag, "l", false, "list files whose shebang line differs")
	fs.BoolVar(&watchFlag, "watch", false, "watch paths and rewrite shebang lines on change (implies -w)")
	fs.BoolVar(&versionFlag, "version", false, "print version and exit")

	fs.Usage = func() {
		cli.Writeln(stderr, "Usage: shebangfmt [flags] [path ...]")
		cli.Writeln(stderr)
		cli.Writeln(stderr, "Normalizes the shebang (#!) line of script files. With no paths,")
		cli.Writeln(stderr, "reads from stdin and writes to stdout.")
		cli.Writeln(stderr)
		cli.Writeln(stderr, "Directories are walked recursively; only recognized script files")
		cli.Writeln(stderr, "(shell, python, perl, ruby, and friends) are formatted.")
		cli.Writeln(stderr)
		cli.Writeln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cli.ExitOK
		}
		return cli.ExitError
	}

	if versionFlag {
		cli.Writef(stdout, "shebangfmt %s\n", version.String())
		return cli.ExitOK
	}

	// Validate flag combinations
	if writeFlag && diffFlag {
		cli.Writeln(stderr, "shebangfmt: cannot use -w and -d together")
		return cli.ExitError
	}
	if writeFlag && checkFlag {
		cli.Writeln(stderr, "shebangfmt: cannot use -w and -check together")
		return cli.ExitError
	}
	if watchFlag && (diffFlag || checkFlag || listFlag) {
		cli.Writeln(stderr, "shebangfmt: cannot use -watch with -d, -check, or -l")
		return cli.ExitError
	}

	paths := fs.Args()

	if watchFlag {
		if len(paths) == 0 {
			cli.Writeln(stderr, "shebangfmt: -watch requires at least one path")
			return cli.ExitError
		}
		return watchPaths(ctx, paths, stdout, stderr)
	}

	// No paths: read from stdin
	if len(paths) == 0 {
		return formatStdin(stdin, stdout, stderr, checkFlag, diffFlag)
	}

	// Format files
	return formatPaths(ctx, paths, stdout, stderr, writeFlag, diffFlag, checkFlag, listFlag)
}

func formatStdin(stdin io.Reader, stdout, stderr io.Writer, checkFlag, diffFlag bool) int {
	src, err := io.ReadAll(stdin)
	if err != nil {
		cli.Writef(stderr, "shebangfmt: reading stdin: %v\n", err)
		return cli.ExitError
	}

	formatted := shebang.Format(src)

	if checkFlag {
		if !bytes.Equal(src, formatted) {
			cli.Writeln(stderr, "<stdin>")
			return cli.ExitNeedsFormat
		}
		return cli.ExitOK
	}

	if diffFlag {
		diffutil.Write(stdout, diffutil.Unified("<stdin>", src, formatted))
		return cli.ExitOK
	}

	cli.WriteBytes(stdout, formatted)
	return cli.ExitOK
}

func formatPaths(ctx context.Context, paths []string, stdout, stderr io.Writer, writeFlag, diffFlag, checkFlag, listFlag bool) int {
	var files []string

	// Expand paths (including directories)
	for _, path := range paths {
		expanded, err := expandPath(path)
		if err != nil {
			cli.Writef(stderr, "shebangfmt: %v\n", err)
			return cli.ExitError
		}
		files = append(files, expanded...)
	}

	if len(files) == 0 {
		cli.Writeln(stderr, "shebangfmt: no files to format")
		return cli.ExitOK
	}

	// Format files concurrently; report sequentially in input order.
	results := make([]*shebang.Result, len(files))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = shebang.FormatFile(path)
			return nil
		})
	}
	_ = g.Wait()

	needsFormat := false
	hasError := false

	for _, result := range results {
		if result.Err != nil {
			cli.Writef(stderr, "shebangfmt: %s: %v\n", result.Path, result.Err)
			hasError = true
			continue
		}

		if !result.Changed() {
			continue
		}

		needsFormat = true

		if checkFlag || listFlag {
			cli.Writeln(stdout, result.Path)
			continue
		}

		if writeFlag {
			if err := os.WriteFile(result.Path, result.Formatted, 0o644); err != nil {
				cli.Writef(stderr, "shebangfmt: %s: %v\n", result.Path, err)
				hasError = true
			}
			continue
		}

		if diffFlag {
			diffutil.Write(stdout, diffutil.Unified(result.Path, result.Original, result.Formatted))
			continue
		}

		// Default: print formatted output
		cli.Writef(stdout, "==> %s <==\n", result.Path)
		cli.WriteBytes(stdout, result.Formatted)
	}

	if hasError {
		return cli.ExitError
	}
	if checkFlag && needsFormat {
		return cli.ExitNeedsFormat
	}
	return cli.ExitOK
}

// watchPaths formats the given paths in place, then keeps rewriting script
// files as they change until the context is cancelled.
func watchPaths(ctx context.Context, paths []string, stdout, stderr io.Writer) int {
	// Initial pass so existing files start out normalized.
	if code := formatPaths(ctx, paths, stdout, stderr, true, false, false, false); code == cli.ExitError {
		return code
	}

	watcher, err := watch.NewWatcher()
	if err != nil {
		cli.Writef(stderr, "shebangfmt: %v\n", err)
		return cli.ExitError
	}
	defer func() { _ = watcher.Close() }()

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			cli.Writef(stderr, "shebangfmt: %v\n", err)
			return cli.ExitError
		}
	}

	for {
		select {
		case <-ctx.Done():
			return cli.ExitOK

		case event := <-watcher.Events:
			result := shebang.FormatFile(event.Path)
			if result.Err != nil {
				cli.Writef(stderr, "shebangfmt: %s: %v\n", event.Path, result.Err)
				continue
			}
			if !result.Changed() {
				continue
			}
			if err := os.WriteFile(event.Path, result.Formatted, 0o644); err != nil {
				cli.Writef(stderr, "shebangfmt: %s: %v\n", event.Path, err)
				continue
			}
			cli.Writeln(stdout, event.Path)

		case err := <-watcher.Errors:
			cli.Writef(stderr, "shebangfmt: watch: %v\n", err)
		}
	}
}

// expandPath expands a path to a list of files to format.
// If path is a directory, it recursively finds all recognized script files.
func expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories
			if strings.HasPrefix(d.Name(), ".") && d.Name() != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if filekind.IsScriptFile(d.Name()) {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
