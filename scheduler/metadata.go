package scheduler

import (
	"runtime"

	"github.com/hyperfine-go/hyperfine/config"
	"github.com/hyperfine-go/hyperfine/export"
)

func exportMetadata(cfg *config.Config) export.Metadata {
	return export.Metadata{
		Unit:      cfg.Unit,
		Reference: cfg.Reference,
		SortOrder: cfg.SortOrder,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
