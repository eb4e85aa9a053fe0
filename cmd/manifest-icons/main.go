package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path"
	"strconv"

	"github.com/tidwall/pretty"

	"github.com/hrko/lens-icons/pkg/iconset"
)

// main prints the "icons" and "action.default_icon" blocks of the extension
// manifest for the files written by the generator.
func main() {
	icons := make(map[string]string, len(iconset.Sizes))
	for _, size := range iconset.Sizes {
		// manifest paths always use forward slashes
		icons[strconv.Itoa(size)] = path.Join(iconset.Dir, iconset.FileName(size))
	}

	manifest := map[string]interface{}{
		"icons": icons,
		"action": map[string]interface{}{
			"default_icon": icons,
		},
	}

	var tmpBuf bytes.Buffer
	encoder := json.NewEncoder(&tmpBuf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(manifest); err != nil {
		panic(err)
	}
	os.Stdout.Write(pretty.Pretty(tmpBuf.Bytes()))
}
