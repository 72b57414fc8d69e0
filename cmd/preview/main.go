// Preview renders banner images to stdout the way the carousel draws them,
// for checking scale modes and cache behavior outside the TUI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/thumbnail"
)

func main() {
	cols := flag.Int("cols", 40, "width in terminal cells")
	rows := flag.Int("rows", 12, "height in terminal cells")
	scale := flag.String("scale", "fit_center", `"fit_center", "center_crop" or "none"`)
	cached := flag.Bool("cache", false, "go through the thumbnail cache")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("usage: preview [flags] image...")
		os.Exit(2)
	}

	var cache *thumbnail.Cache
	if *cached {
		c, err := thumbnail.NewCache("")
		if err != nil {
			fmt.Println(errmsg.Format(errmsg.OpCacheOpen, err))
		}
		cache = c
	}
	renderer := thumbnail.NewRenderer(cache, thumbnail.ParseScaleType(*scale))

	failed := false
	for _, path := range flag.Args() {
		out, err := renderer.Render(path, *cols, *rows)
		if err != nil {
			fmt.Println(errmsg.FormatWith(errmsg.OpImageLoad, path, err))
			failed = true
			continue
		}
		fmt.Println(path)
		fmt.Println(out)
	}
	if failed {
		os.Exit(1)
	}
}
