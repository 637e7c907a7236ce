package resource

import (
	"io"

	"github.com/joshuapare/lsartifact/internal/hbt"
	"github.com/joshuapare/lsartifact/internal/tbt"
)

// OpenTBT parses rs as a TBT stream and wraps the result, recording any
// Options limit violations to opts.Diagnostics.
func OpenTBT(rs io.ReadSeeker, opts Options) (*Resource, error) {
	doc, err := tbt.Read(rs)
	if err != nil {
		return nil, err
	}
	checkLimits(doc, opts, "tbt")
	return &Resource{Kind: KindTBT, Doc: doc}, nil
}

// OpenHBT parses rs as an HBT stream and wraps the result, recording any
// Options limit violations to opts.Diagnostics.
func OpenHBT(rs io.ReadSeeker, opts Options) (*Resource, error) {
	doc, err := hbt.Read(rs)
	if err != nil {
		return nil, err
	}
	checkLimits(doc, opts, "hbt")
	return &Resource{Kind: KindHBT, Doc: doc}, nil
}
