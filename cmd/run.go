package cmd

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/eugenmik/bulk-image-resizer/batch"
	"github.com/eugenmik/bulk-image-resizer/console"
)

var cmdRun = &Command{
	UsageLine: "run -src dir [-dst dir] [-size n] [-q n] [-overwrite] [-quiet]",
	Short:     "resize a folder without opening the window",
	Long: `
Resize every .jpg, .jpeg and .png directly inside -src so the longest side
is at most -size pixels and write them into -dst, or back over the originals
with -overwrite. Progress is drawn on stderr, one line per file on stdout.
`,
}

var (
	rsrc       = cmdRun.Flag.String("src", "", "source folder")
	rdst       = cmdRun.Flag.String("dst", "", "existing destination folder")
	rsize      = cmdRun.Flag.String("size", "", "longest side in pixels (default RESIZER_TARGET_SIZE)")
	rquality   = cmdRun.Flag.String("q", "", "JPEG quality 1-95 (default RESIZER_JPEG_QUALITY)")
	roverwrite = cmdRun.Flag.Bool("overwrite", false, "replace the source files")
	rquiet     = cmdRun.Flag.Bool("quiet", false, "no progress bar")
)

func init() {
	cmdRun.Run = runBatch
}

func runBatch(args []string) bool {
	if *rsrc == "" {
		return false
	}
	in := batch.Input{
		Source:    *rsrc,
		Dest:      *rdst,
		Size:      *rsize,
		Quality:   *rquality,
		Overwrite: *roverwrite,
	}
	if in.Size == "" {
		in.Size = strconv.Itoa(settings.TargetSize)
	}
	if in.Quality == "" {
		in.Quality = strconv.Itoa(settings.JPEGQuality)
	}
	cfg, err := batch.ParseInput(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, batch.ErrorLine(err))
		setExitStatus(1)
		return true
	}

	var bar *console.Bar
	if !*rquiet {
		bar = console.NewBar(os.Stderr)
	}
	ev := make(batch.Events, 16)
	task := batch.NewTask(cfg, ev)

	g := new(errgroup.Group)
	g.Go(func() error {
		task.Run()
		return nil
	})
	g.Go(func() error { return console.Render(ev, os.Stdout, bar) })
	if err = g.Wait(); err != nil {
		logger().Warnw("render fail", "run", task.ID, "err", err)
		setExitStatus(1)
	}

	var unchanged int
	for _, res := range task.Results() {
		if res.Unchanged {
			unchanged++
		}
	}
	logger().Infow("run summary", "run", task.ID, "ok", len(task.Results()), "unchanged", unchanged)
	return true
}
