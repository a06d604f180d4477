package download

import (
	"github.com/toringe/bgpchart/chart"
	"github.com/toringe/bgpchart/config"
	"github.com/toringe/bgpchart/fetcher"
)

// Download drives one chart retrieval from validated request to
// written file.
type Download struct {
	Request chart.Request
	OutPath string
	BaseURL string
	Fetcher *fetcher.Fetcher
}

// New assembles a download for the given request. outPath may name a
// target file, an existing directory, or be empty to use the derived
// filename in the current directory.
func New(req chart.Request, outPath string, cfg *config.Config, verbose bool) *Download {
	return &Download{
		Request: req,
		OutPath: outPath,
		BaseURL: cfg.BaseURL,
		Fetcher: fetcher.New(cfg.Timeout(), cfg.UserAgent, verbose),
	}
}
