package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/phyten/nlsfmt/internal/detect"
	"github.com/phyten/nlsfmt/internal/model"
	"github.com/phyten/nlsfmt/internal/util"
)

// Run formats every candidate file under opts.RepoDir and reports the
// per-file outcomes. Individual failures are collected in Result.Errors;
// only setup problems (bad options, git not usable) abort the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if strings.TrimSpace(opts.FormatterCmd) == "" {
		return nil, errors.New("no formatter command configured")
	}

	files, err := gitListFiles(opts.RepoDir, opts.Paths, opts.Excludes, opts.ExcludeTypical)
	if err != nil {
		return nil, err
	}
	files = filterPathsByRegex(files, opts.PathRegexCompiled)
	if len(files) == 0 {
		return &Result{ElapsedMS: msSince(start)}, nil
	}

	out := make([]model.FileResult, len(files))
	prog := util.NewProgress(len(files), opts.Progress)
	var errsMu sync.Mutex
	var errs []ItemError

	type job struct {
		idx  int
		path string
	}
	jobs := make(chan job)
	var wg sync.WaitGroup

	// Workers always drain the jobs channel; returning early would strand
	// the dispatch send below. Cancellation is handled per file inside
	// processOne, which fails fast once the context is done.
	worker := func() {
		defer wg.Done()
		for j := range jobs {
			res, itemErr := processOne(ctx, opts, j.path)
			if itemErr != nil {
				errsMu.Lock()
				errs = append(errs, *itemErr)
				errsMu.Unlock()
			}
			out[j.idx] = res
			prog.Advance()
		}
	}

	nw := opts.Jobs
	if nw < 1 {
		nw = 1
	}
	if nw > len(files) {
		nw = len(files)
	}
	wg.Add(nw)
	for i := 0; i < nw; i++ {
		go worker()
	}
	for i, path := range files {
		jobs <- job{idx: i, path: path}
	}
	close(jobs)
	wg.Wait()
	prog.Done()

	sort.SliceStable(out, func(i, j int) bool { return out[i].File < out[j].File })
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].File == errs[j].File {
			return errs[i].Stage < errs[j].Stage
		}
		return errs[i].File < errs[j].File
	})

	res := &Result{
		Files:      out,
		Total:      len(out),
		ElapsedMS:  msSince(start),
		Errors:     errs,
		ErrorCount: len(errs),
	}
	for _, f := range out {
		switch f.Status {
		case model.StatusFormatted:
			res.Formatted++
		case model.StatusUnchanged:
			res.Unchanged++
		case model.StatusSkipped:
			res.Skipped++
		case model.StatusFailed:
			res.Failed++
		}
	}
	return res, nil
}

func processOne(ctx context.Context, opts Options, relPath string) (model.FileResult, *ItemError) {
	res := model.FileResult{File: relPath}

	if err := ctx.Err(); err != nil {
		res.Status = model.StatusFailed
		res.Message = err.Error()
		return res, newItemError(relPath, "canceled", err)
	}

	full := filepath.Join(opts.RepoDir, relPath)
	data, err := os.ReadFile(full)
	if err != nil {
		res.Status = model.StatusFailed
		res.Message = err.Error()
		return res, newItemError(relPath, "read", err)
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		res.Status = model.StatusSkipped
		res.Message = "binary"
		return res, nil
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		res.Status = model.StatusSkipped
		res.Message = "too large"
		return res, nil
	}

	info := detect.FromPathAndContent(relPath, data)
	res.Lang = detect.NormalizeLangName(info.Name)
	if !detect.KnownLanguage(res.Lang) || !detect.MatchesLang(info, opts.Langs) {
		res.Status = model.StatusSkipped
		res.Message = "unsupported language"
		return res, nil
	}

	var trace func(string, ...any)
	if opts.Verbose {
		trace = func(format string, args ...any) {
			log.Printf("%s: "+format, append([]any{relPath}, args...)...)
		}
	}

	f := &Formatter{
		Cmd:    opts.FormatterCmd,
		Args:   opts.FormatterArgs,
		Dir:    opts.RepoDir,
		Runner: opts.Runner,
	}
	src := string(data)
	formatted, extraction, err := FormatSource(ctx, src, nil, f, trace)
	res.Literals = len(extraction.Literals)
	res.Markers = extraction.MarkerCount()
	if err != nil {
		res.Status = model.StatusFailed
		res.Message = err.Error()
		return res, newItemError(relPath, "format", err)
	}

	if formatted == src {
		res.Status = model.StatusUnchanged
		return res, nil
	}
	res.Status = model.StatusFormatted
	if opts.Write {
		perm := os.FileMode(0o644)
		if info, err := os.Stat(full); err == nil {
			perm = info.Mode().Perm()
		}
		if err := os.WriteFile(full, []byte(formatted), perm); err != nil {
			res.Status = model.StatusFailed
			res.Message = err.Error()
			return res, newItemError(relPath, "write", err)
		}
	}
	return res, nil
}

func newItemError(file, stage string, err error) *ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return &ItemError{File: file, Stage: stage, Message: msg}
}

func gitListFiles(repo string, includes, excludes []string, typical bool) ([]string, error) {
	args := []string{"-c", "core.quotePath=false", "ls-files", "-z", "--"}
	args = append(args, buildPathspecs(includes, excludes, typical)...)
	cmd := exec.Command("git", args...)
	cmd.Dir = repo
	out, err := cmd.Output()
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) && len(ee.Stderr) > 0 {
			return nil, fmt.Errorf("git ls-files: %w: %s", err, firstLine(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("git ls-files: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	parts := bytes.Split(out, []byte{0})
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		paths = append(paths, filepath.ToSlash(string(p)))
	}
	return paths, nil
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
