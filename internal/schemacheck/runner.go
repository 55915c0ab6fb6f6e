package schemacheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/randomairborne/google-classroom/pkg/codec"
	appErrors "github.com/randomairborne/google-classroom/pkg/errors"
	"github.com/randomairborne/google-classroom/pkg/jobs"
	"github.com/randomairborne/google-classroom/pkg/logger"
)

// Result is the outcome of checking one file.
type Result struct {
	Path  string
	Items []any
	Err   error
}

// Summary counts the outcomes of a run.
type Summary struct {
	Files  int
	Items  int
	Failed int
}

// Runner checks payloads against a Kind.
type Runner struct {
	codec   *codec.Codec
	logger  *zap.Logger
	workers int
}

// NewRunner builds a Runner. workers bounds how many files are read at once.
func NewRunner(c *codec.Codec, l *zap.Logger, workers int) *Runner {
	if c == nil {
		c = codec.New(codec.Config{Logger: l})
	}
	if l == nil {
		l = zap.NewNop()
	}
	return &Runner{codec: c, logger: l, workers: workers}
}

// Check decodes data as kind. A top-level array is checked element by
// element; errors are scoped with the element index.
func (r *Runner) Check(kind Kind, data []byte, format InputFormat) ([]any, error) {
	if format == InputYAML {
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		item, err := r.decode(kind, trimmed)
		if err != nil {
			return nil, err
		}
		return []any{item}, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrSchemaMismatch.Code, appErrors.ErrSchemaMismatch.Status, "malformed JSON array")
	}
	items := make([]any, 0, len(raws))
	for i, raw := range raws {
		item, err := r.decode(kind, raw)
		if err != nil {
			return nil, appErrors.Prefix(appErrors.FromError(err), fmt.Sprintf("[%d]", i))
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Runner) decode(kind Kind, raw []byte) (any, error) {
	v := kind.New()
	var err error
	if kind.Request {
		err = r.codec.DecodeRequest(raw, v)
	} else {
		err = r.codec.Decode(raw, v)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CheckFiles checks every path as kind, reading files concurrently. Results
// keep the order of paths.
func (r *Runner) CheckFiles(ctx context.Context, kind Kind, paths []string) []Result {
	results := make([]Result, len(paths))
	tasks := make([]jobs.Task, len(paths))
	for i, p := range paths {
		tasks[i] = jobs.Task{Index: i, Name: p}
		results[i].Path = p
	}

	pool := jobs.NewPool("schemacheck", func(_ context.Context, task jobs.Task) error {
		data, err := os.ReadFile(task.Name)
		if err != nil {
			return fmt.Errorf("read %s: %w", task.Name, err)
		}
		items, err := r.Check(kind, data, InputFormatFor(task.Name))
		results[task.Index].Items = items
		return err
	}, jobs.PoolConfig{Workers: r.workers, Logger: r.logger})

	for i, err := range pool.Run(ctx, tasks) {
		results[i].Err = err
		logger.FileOutcome(r.logger, results[i].Path, kind.Name, len(results[i].Items), err)
	}
	return results
}

// Summarize counts files, decoded items and failures.
func Summarize(results []Result) Summary {
	s := Summary{Files: len(results)}
	for _, res := range results {
		s.Items += len(res.Items)
		if res.Err != nil {
			s.Failed++
		}
	}
	return s
}
