package cmd

import (
	"errors"
	"encoding/json"
	"fmt"
	"os"

	cimg "github.com/eugenmik/bulk-image-resizer/image"
	"github.com/eugenmik/bulk-image-resizer/utils"
)

var cmdInfo = &Command{
	UsageLine: "info [-json] filename...",
	Short:     "print size, format and JPEG quality of image files",
	Long: `
Print width, height, extension, mime type, byte size and the estimated
JPEG quality of each file. Pixels are not decoded.
`,
}

var ijson = cmdInfo.Flag.Bool("json", false, "one JSON object per line")

func init() {
	cmdInfo.Run = infoApp
}

func infoApp(args []string) bool {
	if len(args) == 0 {
		return false
	}
	enc := json.NewEncoder(os.Stdout)
	for _, filename := range args {
		attr, err := probeFile(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
			setExitStatus(1)
			continue
		}
		if *ijson {
			if err = enc.Encode(attr); err != nil {
				fmt.Fprintln(os.Stderr, err)
				setExitStatus(1)
			}
			continue
		}
		fmt.Printf("%s\t%s\n", filename, attr)
	}
	return true
}

var errNotRegular = errors.New("not a regular file")

func probeFile(filename string) (*cimg.Attr, error) {
	if utils.Exists(filename) && !utils.IsRegular(filename) {
		return nil, errNotRegular
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	attr, err := cimg.Probe(f)
	if err != nil {
		return nil, err
	}
	attr.Name = filename
	return attr, nil
}
