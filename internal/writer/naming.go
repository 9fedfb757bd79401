package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NextOutputPath derives an output path from input as
// "<base>_<suffix>_<n><ext>", picking the first n that does not collide
// with an existing file so reruns never overwrite earlier output.
func NextOutputPath(input, suffix, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	for n := 1; ; n++ {
		p := fmt.Sprintf("%s_%s_%d%s", base, suffix, n, ext)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return p
		}
	}
}
