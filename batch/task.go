// Package batch resizes every image of a folder on a single background task.
package batch

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/eugenmik/bulk-image-resizer/hash"
	cimg "github.com/eugenmik/bulk-image-resizer/image"
	zlog "github.com/eugenmik/bulk-image-resizer/log"
	"github.com/eugenmik/bulk-image-resizer/utils"
)

// log lines sent to the Listener
const (
	MsgNoImages  = "No images found in the source folder."
	MsgCompleted = "Conversion completed."
)

// SaveFunc encodes m into w
type SaveFunc func(w io.Writer, m image.Image, opt cimg.WriteOption) (int, error)

// Result of one file
type Result struct {
	Source    string
	Output    string
	OrigAttr  cimg.Attr
	Width     uint
	Height    uint
	InSize    int64
	OutSize   int
	Unchanged bool
}

// Option ...
type Option func(*Task)

// WithSaver replaces the encoder, the default is image.SaveTo
func WithSaver(fn SaveFunc) Option {
	return func(t *Task) {
		if fn != nil {
			t.save = fn
		}
	}
}

// WithLogger ...
func WithLogger(l zlog.Logger) Option {
	return func(t *Task) {
		if l != nil {
			t.logger = l
		}
	}
}

// Task walks Config.Source once and resizes every image it found, one at a time
type Task struct {
	ID string

	cfg     Config
	l       Listener
	save    SaveFunc
	logger  zlog.Logger
	results []Result
}

// NewTask ...
func NewTask(cfg Config, l Listener, opts ...Option) *Task {
	t := &Task{
		ID:     uuid.NewString(),
		cfg:    cfg,
		l:      l,
		save:   cimg.SaveTo,
		logger: zlog.Get(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.logger = zlog.With(t.logger, "run", t.ID)
	return t
}

// Results are the successful files of the last Run
func (t *Task) Results() []Result {
	return t.results
}

// Start runs the task on its own goroutine, the returned channel is closed after Done
func (t *Task) Start() <-chan struct{} {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		t.Run()
	}()
	return ch
}

// Run blocks until every file is handled. Done is signalled even after a
// critical failure.
func (t *Task) Run() {
	defer t.l.Done()
	defer func() {
		if r := recover(); r != nil {
			t.critical(fmt.Errorf("panic: %v", r))
		}
	}()

	if err := t.run(); err != nil {
		t.critical(err)
	}
}

func (t *Task) critical(err error) {
	t.logger.Errorw("run fail", "src", t.cfg.Source, "err", err)
	t.l.Log(fmt.Sprintf("Critical error: %s", err))
	reportError(err, map[string]string{"run": t.ID})
}

func (t *Task) run() error {
	t.logger.Infow("run start", "src", t.cfg.Source, "dst", t.cfg.Dest,
		"size", t.cfg.MaxSide, "quality", t.cfg.Quality, "overwrite", t.cfg.Overwrite)

	if !t.cfg.Overwrite {
		if err := os.MkdirAll(t.cfg.Dest, os.FileMode(0755)); err != nil {
			return err
		}
	}

	files, err := ListImages(t.cfg.Source)
	if err != nil {
		return err
	}
	total := len(files)
	if total == 0 {
		t.l.Log(MsgNoImages)
		return nil
	}

	t.results = make([]Result, 0, total)
	for i, src := range files {
		name := filepath.Base(src)
		res, err := t.process(src)
		if err != nil {
			t.logger.Warnw("process fail", "file", name, "err", err)
			t.l.Log(fmt.Sprintf("Error with %s: %s", name, err))
		} else {
			t.logger.Debugw("processed", "file", name, "width", res.Width, "height", res.Height,
				"in", res.InSize, "out", res.OutSize, "unchanged", res.Unchanged)
			t.results = append(t.results, *res)
			t.l.Log("Processed: " + name)
		}
		t.l.Progress((i + 1) * 100 / total)
	}

	t.l.Log(MsgCompleted)
	t.logger.Infow("run done", "total", total, "ok", len(t.results))
	return nil
}

func (t *Task) process(src string) (*Result, error) {
	im, insize, err := openImage(src)
	if err != nil {
		return nil, err
	}

	m, err := cimg.FitImage(im.Image(), cimg.FitOption{MaxSide: uint(t.cfg.MaxSide)})
	if err != nil {
		return nil, err
	}

	dst := t.cfg.OutputPath(src)
	opt := cimg.WriteOption{
		Format:  cimg.TypeByExt(dst),
		Quality: cimg.Quality(t.cfg.Quality),
	}
	var buf bytes.Buffer
	n, err := t.save(&buf, m, opt)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", opt.Format, err)
	}

	b := m.Bounds()
	res := &Result{
		Source:   src,
		Output:   dst,
		OrigAttr: *im.Attr,
		Width:    uint(b.Dx()),
		Height:   uint(b.Dy()),
		InSize:   insize,
		OutSize:  n,
	}
	if hash.SameAsFile(dst, buf.Bytes()) {
		res.Unchanged = true
		return res, nil
	}
	if err = utils.ReplaceFile(dst, buf.Bytes()); err != nil {
		return nil, err
	}
	return res, nil
}

// openImage decodes src and closes it before anything is written back
func openImage(src string) (*cimg.Image, int64, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	im, err := cimg.Open(f)
	if err != nil {
		return nil, 0, err
	}
	return im, int64(im.Attr.Size), nil
}
