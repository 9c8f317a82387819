package main

import (
	"github.com/eugenmik/bulk-image-resizer/cmd"
)

func main() {
	cmd.Main()
}
