package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hrko/lens-icons/pkg/graphics"
	"github.com/hrko/lens-icons/pkg/iconset"
)

func main() {
	log.SetPrefix("lens-icons: ")
	log.SetFlags(0)

	if err := run(iconset.Dir, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run renders every size in iconset.Sizes into dir and reports each file
// written to out.
func run(dir string, out io.Writer) error {
	if err := iconset.EnsureDir(dir); err != nil {
		return err
	}

	icon := graphics.NewLensIcon()
	for _, size := range iconset.Sizes {
		path := iconset.Path(dir, size)
		if err := iconset.WritePNG(path, icon.Render(size)); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", path)
	}

	return nil
}
