package cmd

import (
	"github.com/eugenmik/bulk-image-resizer/gui"
)

var cmdGUI = &Command{
	UsageLine: "gui",
	Short:     "open the resizer window (default)",
	Long: `
Open the window: pick a source folder, a destination folder or overwrite
mode, the longest side in pixels and the JPEG quality, then press START.
Defaults come from RESIZER_TARGET_SIZE and RESIZER_JPEG_QUALITY.
`,
}

func init() {
	cmdGUI.Run = runGUI
}

func runGUI(args []string) bool {
	logger().Infow("window open", "size", settings.TargetSize, "quality", settings.JPEGQuality)
	gui.Run(settings)
	return true
}
