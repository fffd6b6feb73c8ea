package plot

// Output devices available to every stream.
import (
	_ "github.com/gogpu/plot/recording/backends/null"
	_ "github.com/gogpu/plot/recording/backends/pdf"
	_ "github.com/gogpu/plot/recording/backends/raster"
	_ "github.com/gogpu/plot/recording/backends/svg"
)
