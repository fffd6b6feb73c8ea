package recording

import (
	"path/filepath"
	"strconv"
	"strings"
)

// FamilyName returns the file name of page (1-based) out of pages for
// backends that write one file per page.
//
// A "%n" in base is replaced by the page number. Otherwise a single page
// keeps base unchanged and later pages get a "-N" suffix before the
// extension: plot.png, plot-2.png, plot-3.png.
func FamilyName(base string, page, pages int) string {
	if strings.Contains(base, "%n") {
		return strings.ReplaceAll(base, "%n", strconv.Itoa(page))
	}
	if pages <= 1 || page == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + strconv.Itoa(page) + ext
}
