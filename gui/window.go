// Package gui is the desktop window of the resizer.
package gui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/eugenmik/bulk-image-resizer/batch"
	"github.com/eugenmik/bulk-image-resizer/config"
	"github.com/eugenmik/bulk-image-resizer/session"
)

const (
	appID = "io.github.eugenmik.bulkresize"
	title = "Bulk Image Resizer"
)

// Window implements session.View on top of fyne widgets
type Window struct {
	w fyne.Window

	src       *widget.Entry
	dst       *widget.Entry
	dstBrowse *widget.Button
	size      *widget.Entry
	quality   *widget.Entry
	overwrite *widget.Check
	start     *widget.Button
	progress  *widget.ProgressBar
	log       *widget.Label
	logScroll *container.Scroll

	lines   []string
	session *session.Session
}

// Run opens the window and blocks until it is closed
func Run(s *config.Settings) {
	a := app.NewWithID(appID)
	win := NewWindow(a, s, nil)
	win.w.ShowAndRun()
}

// NewWindow builds the form, start may be nil
func NewWindow(a fyne.App, s *config.Settings, start session.Starter) *Window {
	win := &Window{w: a.NewWindow(title)}
	win.session = session.NewSession(win, start)

	win.src = widget.NewEntry()
	win.src.SetPlaceHolder("Path to source folder...")
	srcBrowse := widget.NewButton("Browse...", func() { win.pickFolder(win.src) })

	win.dst = widget.NewEntry()
	win.dst.SetPlaceHolder("Path to destination folder...")
	win.dstBrowse = widget.NewButton("Browse...", func() { win.pickFolder(win.dst) })

	win.size = widget.NewEntry()
	win.size.SetPlaceHolder("e.g., 1920")
	win.size.SetText(strconv.Itoa(s.TargetSize))

	win.quality = widget.NewEntry()
	win.quality.SetPlaceHolder("e.g., 80")
	win.quality.SetText(strconv.Itoa(s.JPEGQuality))

	win.overwrite = widget.NewCheck("Overwrite original images", win.toggleOverwrite)

	win.start = widget.NewButton("START", win.submit)
	win.start.Importance = widget.HighImportance

	win.progress = widget.NewProgressBar()
	win.progress.Max = 100

	win.log = widget.NewLabel("")
	win.log.Wrapping = fyne.TextWrapWord
	win.logScroll = container.NewVScroll(win.log)

	form := container.NewVBox(
		widget.NewLabel("Select the source folder containing your images:"),
		container.NewBorder(nil, nil, nil, srcBrowse, win.src),
		widget.NewLabel("Select the destination folder for the resized images:"),
		container.NewBorder(nil, nil, nil, win.dstBrowse, win.dst),
		widget.NewLabel("Enter the target size for the longest side (in pixels):"),
		win.size,
		widget.NewLabel("Image quality for JPEG (1-95):"),
		win.quality,
		win.overwrite,
		win.start,
		win.progress,
	)
	win.w.SetContent(container.NewBorder(form, nil, nil, nil, win.logScroll))
	win.w.Resize(fyne.NewSize(float32(s.WindowWidth), float32(s.WindowHeight)))
	win.w.SetFixedSize(true)
	return win
}

func (win *Window) pickFolder(target *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		target.SetText(uri.Path())
	}, win.w)
}

func (win *Window) toggleOverwrite(on bool) {
	if on {
		win.dst.Disable()
		win.dstBrowse.Disable()
		return
	}
	win.dst.Enable()
	win.dstBrowse.Enable()
}

func (win *Window) submit() {
	_ = win.session.Submit(batch.Input{
		Source:    win.src.Text,
		Dest:      win.dst.Text,
		Size:      win.size.Text,
		Quality:   win.quality.Text,
		Overwrite: win.overwrite.Checked,
	})
}

// SetRunning toggles the start button
func (win *Window) SetRunning(running bool) {
	fyne.Do(func() {
		if running {
			win.start.Disable()
		} else {
			win.start.Enable()
		}
	})
}

// SetProgress ...
func (win *Window) SetProgress(percent int) {
	fyne.Do(func() {
		win.progress.SetValue(float64(percent))
	})
}

// AppendLog ...
func (win *Window) AppendLog(line string) {
	fyne.Do(func() {
		win.lines = append(win.lines, line)
		win.log.SetText(strings.Join(win.lines, "\n"))
		win.logScroll.ScrollToBottom()
	})
}

// ClearLog ...
func (win *Window) ClearLog() {
	fyne.Do(func() {
		win.lines = win.lines[:0]
		win.log.SetText("")
	})
}
