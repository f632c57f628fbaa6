package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/decomment/internal/detect"
	"github.com/phyten/decomment/internal/lang"
	"github.com/phyten/decomment/internal/model"
	"github.com/phyten/decomment/internal/scan"
	"github.com/phyten/decomment/internal/util"
)

const maxJobs = 64

var skipDirs = map[string]struct{}{
	".git": {}, ".hg": {}, ".svn": {}, ".idea": {}, ".vscode": {},
	"node_modules": {}, "vendor": {}, "dist": {}, "build": {}, "target": {},
}

// Run walks the requested paths, scans every recognised file and
// returns per-file items. Per-file failures land in Result.Errors; only
// setup problems (bad rule file, missing path) abort the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Op == "" {
		opts.Op = OpSpans
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.Jobs > maxJobs {
		opts.Jobs = maxJobs
	}

	reg, err := lang.LoadRegistry(opts.RuleFiles)
	if err != nil {
		return nil, err
	}
	if opts.Lang != "" && !reg.Known(opts.Lang) {
		return nil, &lang.NotFoundError{ID: opts.Lang}
	}

	files, err := listFiles(opts)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	if len(files) == 0 {
		res.ElapsedMS = msSince(start)
		return res, nil
	}

	prog := util.NewProgress(len(files), opts.Progress)
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item, skipped, itemErr := processFile(reg, opts, path)
			mu.Lock()
			if itemErr != nil {
				res.Errors = append(res.Errors, *itemErr)
			} else if skipped {
				res.Skipped++
			} else {
				res.Items = append(res.Items, item)
			}
			mu.Unlock()
			prog.Advance()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	prog.Done()

	sort.Slice(res.Items, func(i, j int) bool { return res.Items[i].File < res.Items[j].File })
	sort.Slice(res.Errors, func(i, j int) bool {
		if res.Errors[i].File == res.Errors[j].File {
			return res.Errors[i].Stage < res.Errors[j].Stage
		}
		return res.Errors[i].File < res.Errors[j].File
	})
	res.Total = len(res.Items)
	res.ErrorCount = len(res.Errors)
	res.ElapsedMS = msSince(start)
	return res, nil
}

// ScanText runs a single in-memory text through the matcher; the CLI
// uses it for stdin input. lang must resolve in the registry.
func ScanText(opts Options, id, text string) (Item, error) {
	reg, err := lang.LoadRegistry(opts.RuleFiles)
	if err != nil {
		return Item{}, err
	}
	rule, err := reg.Lookup(id)
	if err != nil {
		return Item{}, err
	}
	canon, _ := reg.Resolve(id)
	return buildItem(opts, "(stdin)", canon, rule, text)
}

func listFiles(opts Options) ([]string, error) {
	roots := opts.Paths
	if len(roots) == 0 {
		roots = []string{"."}
	}
	var files []string
	seen := make(map[string]struct{})
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if _, dup := seen[root]; !dup {
				seen[root] = struct{}{}
				files = append(files, root)
			}
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if _, skip := skipDirs[d.Name()]; skip && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if excluded(opts.Excludes, d.Name()) {
				return nil
			}
			if _, dup := seen[path]; !dup {
				seen[path] = struct{}{}
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func excluded(globs []string, name string) bool {
	for _, g := range globs {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}

func processFile(reg *lang.Registry, opts Options, path string) (Item, bool, *ItemError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Item{}, false, newItemError(path, "read", err)
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return Item{}, true, nil
	}
	if opts.MaxFileBytes > 0 && len(data) > opts.MaxFileBytes {
		return Item{}, true, nil
	}

	id := opts.Lang
	if id == "" {
		id = detect.FromPathAndContent(path, data)
	}
	canon, ok := reg.Resolve(id)
	if !ok {
		return Item{}, true, nil
	}
	rule, err := reg.Lookup(canon)
	if err != nil {
		return Item{}, false, newItemError(path, "lookup", err)
	}

	item, err := buildItem(opts, filepath.ToSlash(path), canon, rule, string(data))
	if err != nil {
		return Item{}, false, newItemError(path, "scan", err)
	}
	if opts.Op == OpStrip && opts.Write {
		mode := fs.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(path, []byte(item.Stripped), mode); err != nil {
			return Item{}, false, newItemError(path, "write", err)
		}
		item.Stripped = ""
	}
	return item, false, nil
}

func buildItem(opts Options, name, id string, rule lang.Rule, text string) (Item, error) {
	spans, err := scan.Scan(rule, text)
	if err != nil {
		var ub *scan.UnterminatedBlockError
		if !errors.As(err, &ub) || !opts.Lenient {
			return Item{}, err
		}
	}
	item := Item{File: name, Lang: id, TotalLines: countLines(text)}
	commentLines := make(map[int]struct{})
	for _, s := range spans {
		if s.Kind.Comment() {
			item.CommentBytes += s.Len()
			markLines(commentLines, text, s)
		}
		if opts.Op == OpSpans && (opts.IncludeCode || s.Kind.Comment()) {
			item.Spans = append(item.Spans, SpanItem{
				Start: s.Start, End: s.End, Line: s.Line, Col: s.Col,
				Kind: string(s.Kind), Text: s.Text(text),
			})
		}
	}
	item.CommentLines = len(commentLines)
	if opts.Op == OpStrip {
		var b strings.Builder
		for _, s := range spans {
			if s.Kind == model.SpanKindCode {
				b.WriteString(s.Text(text))
			}
		}
		item.Stripped = b.String()
	}
	return item, nil
}

func markLines(set map[int]struct{}, text string, s model.Span) {
	line := s.Line
	set[line] = struct{}{}
	for i := s.Start; i < s.End && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			set[line] = struct{}{}
		}
	}
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

func newItemError(file, stage string, err error) *ItemError {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = "unknown error"
	}
	return &ItemError{File: filepath.ToSlash(file), Stage: stage, Message: msg}
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }

// Validate catches option combinations that cannot work before any file
// is touched.
func (o Options) Validate() error {
	switch o.Op {
	case OpSpans, OpStrip, "":
	default:
		return fmt.Errorf("invalid op: %s", o.Op)
	}
	if o.Write && o.Op != OpStrip {
		return fmt.Errorf("write is only valid when stripping")
	}
	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max file bytes must not be negative")
	}
	return nil
}
