package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/pkg/browser"

	"github.com/phyten/nlsfmt/internal/config"
	"github.com/phyten/nlsfmt/internal/engine"
	"github.com/phyten/nlsfmt/internal/engine/opts"
	"github.com/phyten/nlsfmt/internal/nls"
	"github.com/phyten/nlsfmt/internal/output"
	"github.com/phyten/nlsfmt/internal/termcolor"
	"github.com/phyten/nlsfmt/internal/textutil"
	"github.com/phyten/nlsfmt/internal/util"
	"github.com/phyten/nlsfmt/internal/web"
)

const (
	exitOK    = 0
	exitDiff  = 1
	exitUsage = 2
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serveCmd(os.Args[2:])
		return
	}
	os.Exit(formatCmd(os.Args[1:]))
}

// multiFlag collects repeated string flags.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func formatCmd(args []string) int {
	fs := flag.NewFlagSet("nlsfmt", flag.ExitOnError)

	var (
		formatter    = fs.String("formatter", "", "external formatter command (reads stdin, writes stdout)")
		write        = fs.Bool("write", false, "rewrite changed files in place")
		check        = fs.Bool("check", false, "report files that would change without writing")
		outputFmt    = fs.String("output", "", "table|tsv|json|csv|md|ndjson")
		colorFlag    = fs.String("color", "", "auto|always|never")
		fields       = fs.String("fields", "", "comma-separated columns (file,lang,status,literals,markers,message)")
		excludeTyp   = fs.Bool("exclude-typical", false, "exclude vendor/, node_modules/, dist/, build/ etc.")
		jobs         = fs.Int("jobs", 0, "max parallel workers")
		repo         = fs.String("repo", "", "repo root (default: current dir)")
		maxFileBytes = fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
		noProgress   = fs.Bool("no-progress", false, "disable progress/ETA")
		forceProg    = fs.Bool("progress", false, "force progress even when piped")
		verbose      = fs.Bool("verbose", false, "trace literal extraction per file")
		configPath   = fs.String("config", "", "explicit config file (default: search .nlsfmt.*)")
	)
	var formatterArgs, paths, excludes, pathRegex, langs multiFlag
	fs.Var(&formatterArgs, "formatter-arg", "extra formatter argument (repeatable)")
	fs.Var(&paths, "path", "limit to path (repeatable, comma-separated ok)")
	fs.Var(&excludes, "exclude", "exclude pathspec (repeatable)")
	fs.Var(&pathRegex, "path-regex", "keep only paths matching regexp (repeatable)")
	fs.Var(&langs, "lang", "limit to languages (repeatable, e.g. java,kotlin)")
	fs.BoolVar(write, "w", false, "shorthand for --write")
	_ = fs.Parse(args)

	fileCfg, envCfg, err := loadConfigLayers(*repo, *configPath)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	flagCfg := config.EngineConfig{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "formatter":
			flagCfg.Formatter = formatter
		case "formatter-arg":
			vals := opts.SplitMulti(formatterArgs)
			flagCfg.FormatterArgs = &vals
		case "write", "w":
			flagCfg.Write = write
		case "check":
			flagCfg.Check = check
		case "path":
			vals := opts.SplitMulti(paths)
			flagCfg.Paths = &vals
		case "exclude":
			vals := opts.SplitMulti(excludes)
			flagCfg.Excludes = &vals
		case "path-regex":
			vals := opts.SplitMulti(pathRegex)
			flagCfg.PathRegex = &vals
		case "lang":
			vals := opts.SplitMulti(langs)
			flagCfg.Langs = &vals
		case "exclude-typical":
			flagCfg.ExcludeTypical = excludeTyp
		case "jobs":
			flagCfg.Jobs = jobs
		case "repo":
			flagCfg.Repo = repo
		case "output":
			flagCfg.Output = outputFmt
		case "color":
			flagCfg.Color = colorFlag
		case "max-file-bytes":
			flagCfg.MaxFileBytes = maxFileBytes
		}
	})

	repoDir := "."
	base := config.EngineSettingsFromOptions(opts.Defaults(repoDir))
	settings := config.MergeEngine(base, fileCfg.Engine, envCfg.Engine, flagCfg)

	options := opts.Defaults(repoDir)
	settings.ApplyToOptions(&options)
	options.Progress = util.ShouldShowProgress(*forceProg, *noProgress)
	options.Verbose = *verbose

	// Positional arguments narrow the run like repeated --path flags.
	if rest := fs.Args(); len(rest) > 0 {
		options.Paths = append(options.Paths, rest...)
	}

	// The formatter setting is a full command line; split off its args.
	cmd, cmdArgs := splitCommand(settings.Formatter)
	options.FormatterCmd = cmd
	options.FormatterArgs = append(cmdArgs, options.FormatterArgs...)

	if err := opts.NormalizeAndValidate(&options); err != nil {
		log.Print(err)
		return exitUsage
	}
	outFmt, err := opts.NormalizeOutput(settings.Output)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	colorMode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	sel, err := output.ResolveFields(*fields)
	if err != nil {
		log.Print(err)
		return exitUsage
	}

	if options.Check {
		options.Write = false
	}

	res, err := engine.Run(context.Background(), options)
	if err != nil {
		log.Print(err)
		return exitDiff
	}

	if err := renderResult(os.Stdout, res, outFmt, sel, colorMode); err != nil {
		log.Print(err)
		return exitDiff
	}
	printSummary(res, options.Check)

	if res.Failed > 0 {
		return exitDiff
	}
	if options.Check && res.Formatted > 0 {
		return exitDiff
	}
	return exitOK
}

func loadConfigLayers(repoFlag, explicitPath string) (config.Config, config.Config, error) {
	repoDir := strings.TrimSpace(repoFlag)
	if repoDir == "" {
		repoDir = "."
	}
	if explicitPath == "" {
		explicitPath = os.Getenv("NLSFMT_CONFIG")
	}
	found, _, err := config.Find(repoDir, explicitPath, os.Getenv("XDG_CONFIG_HOME"), "")
	if err != nil {
		return config.Config{}, config.Config{}, err
	}
	fileCfg, err := config.Load(found)
	if err != nil {
		return config.Config{}, config.Config{}, err
	}
	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return config.Config{}, config.Config{}, err
	}
	return fileCfg, envCfg, nil
}

// splitCommand breaks a formatter command line into the binary and its
// leading arguments. Quoting is not interpreted; use --formatter-arg for
// arguments that contain spaces.
func splitCommand(cmdline string) (string, []string) {
	parts := strings.Fields(cmdline)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts[1:]
}

func renderResult(w io.Writer, res *engine.Result, outFmt string, sel output.FieldSelection, colorMode termcolor.ColorMode) error {
	switch outFmt {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "csv":
		return output.WriteCSV(w, res.Files, sel)
	case "md":
		return output.WriteMarkdownTable(w, res.Files, sel)
	case "ndjson":
		return output.WriteNDJSON(w, res.Files)
	case "tsv":
		return printTSV(w, res, sel)
	default:
		return printTable(w, res, sel, colorMode)
	}
}

func printTSV(w io.Writer, res *engine.Result, sel output.FieldSelection) error {
	tw := tabwriter.NewWriter(w, 0, 8, 0, '\t', 0) // tabs only
	fmt.Fprintln(tw, strings.Join(output.Headers(sel.Fields), "\t"))
	for _, r := range res.Files {
		fmt.Fprintln(tw, strings.Join(output.RowValues(r, sel.Fields), "\t"))
	}
	return tw.Flush()
}

func printTable(w io.Writer, res *engine.Result, sel output.FieldSelection, colorMode termcolor.ColorMode) error {
	env := termcolor.EnvMap(os.Environ())
	mode := colorMode
	if mode == termcolor.ModeAuto {
		mode = termcolor.DetectMode(os.Stdout, env)
	}
	enabled := termcolor.Enabled(mode, os.Stdout)
	profile := termcolor.DetectProfile(env)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	headers := output.Headers(sel.Fields)
	for i, h := range headers {
		headers[i] = termcolor.Apply(termcolor.HeaderStyle(), h, enabled)
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, r := range res.Files {
		row := output.RowValues(r, sel.Fields)
		for i, f := range sel.Fields {
			switch f.Key {
			case "status":
				row[i] = termcolor.Apply(termcolor.StatusStyle(r.Status), row[i], enabled)
			case "markers":
				row[i] = termcolor.Apply(termcolor.MarkerStyle(r.Markers, profile), row[i], enabled)
			case "lang":
				row[i] = termcolor.Apply(termcolor.LangStyle(r.Lang), row[i], enabled)
			case "message":
				row[i] = textutil.TruncateByWidth(row[i], 80, "…")
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func printSummary(res *engine.Result, check bool) {
	verb := "formatted"
	if check {
		verb = "would change"
	}
	log.Printf("%d %s, %d unchanged, %d skipped, %d failed (%d files, %dms)",
		res.Formatted, verb, res.Unchanged, res.Skipped, res.Failed, res.Total, res.ElapsedMS)
	for _, e := range res.Errors {
		log.Printf("  %s: %s: %s", e.File, e.Stage, e.Message)
	}
}

func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port       = fs.Int("p", 0, "port")
		repo       = fs.String("repo", ".", "repo root")
		open       = fs.Bool("open", false, "open the UI in a browser")
		formatter  = fs.String("formatter", "", "default formatter command")
		configPath = fs.String("config", "", "explicit config file")
	)
	_ = fs.Parse(args)

	fileCfg, envCfg, err := loadConfigLayers(*repo, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	flagServe := config.ServeConfig{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			flagServe.Port = port
		case "open":
			flagServe.Open = open
		}
	})
	serveSettings := config.MergeServe(config.DefaultServeSettings(), fileCfg.Serve, envCfg.Serve, flagServe)
	serveSettings, err = config.NormalizeServe(serveSettings)
	if err != nil {
		log.Fatal(err)
	}

	defaultFormatter := config.ResolveAndTrim("", fileCfg.Engine.Formatter, envCfg.Engine.Formatter)
	if trimmed := strings.TrimSpace(*formatter); trimmed != "" {
		defaultFormatter = trimmed
	}

	mux := http.NewServeMux()
	web.Register(mux)

	mux.HandleFunc("/api/format", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST required", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, 10<<20))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cmdline := strings.TrimSpace(r.URL.Query().Get("formatter"))
		if cmdline == "" {
			cmdline = defaultFormatter
		}
		cmd, cmdArgs := splitCommand(cmdline)
		if cmd == "" {
			http.Error(w, "formatter is required", http.StatusBadRequest)
			return
		}
		f := &engine.Formatter{Cmd: cmd, Args: cmdArgs, Dir: *repo}
		formatted, extraction, err := engine.FormatSource(r.Context(), string(body), nil, f, nil)
		if err != nil {
			var mismatch *nls.MismatchError
			status := http.StatusBadGateway
			if errors.As(err, &mismatch) {
				status = http.StatusConflict
			}
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"formatted": formatted,
			"literals":  len(extraction.Literals),
			"markers":   extraction.MarkerCount(),
		})
	})

	mux.HandleFunc("/api/run", func(w http.ResponseWriter, r *http.Request) {
		options, err := opts.ApplyWebQueryToOptions(opts.Defaults(*repo), r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(options.FormatterCmd) == "" {
			options.FormatterCmd = defaultFormatter
		}
		cmd, cmdArgs := splitCommand(options.FormatterCmd)
		options.FormatterCmd = cmd
		options.FormatterArgs = append(cmdArgs, options.FormatterArgs...)
		// The web UI never writes; it only reports what would change.
		options.Write = false
		options.Check = true
		options.Progress = false
		if err := opts.NormalizeAndValidate(&options); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := engine.Run(r.Context(), options)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	})

	addr := fmt.Sprintf(":%d", serveSettings.Port)
	url := fmt.Sprintf("http://localhost:%d/", serveSettings.Port)
	log.Printf("nlsfmt serve listening on %s (repo=%s)", addr, mustAbs(*repo))
	if serveSettings.Open {
		go func() {
			if err := browser.OpenURL(url); err != nil {
				log.Printf("open browser: %v", err)
			}
		}()
	}
	log.Fatal(http.ListenAndServe(addr, mux))
}

func mustAbs(p string) string {
	a, _ := filepath.Abs(p)
	return a
}
