package chart

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIPVersion = errors.New("invalid ip version")
	ErrInvalidChartType = errors.New("invalid chart type")
)

// IPVersion selects which address family the chart covers.
type IPVersion string

const (
	IPv4 IPVersion = "v4"
	IPv6 IPVersion = "v6"
)

// ChartType selects which BGP statistic the chart plots. The values
// are the single-letter codes the chart endpoint understands.
type ChartType string

const (
	PrefixesAnnounced  ChartType = "a"
	PrefixesOriginated ChartType = "o"
	PeerCount          ChartType = "p"
)

var chartTitles = map[ChartType]string{
	PrefixesAnnounced:  "Prefixes Announced Chart",
	PrefixesOriginated: "Prefixes Originated Chart",
	PeerCount:          "Peer Count Chart",
}

// Title returns the human readable name of the chart type.
func (t ChartType) Title() string {
	return chartTitles[t]
}

// ParseIPVersion validates a raw ip version argument.
func ParseIPVersion(s string) (IPVersion, error) {
	switch v := IPVersion(s); v {
	case IPv4, IPv6:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidIPVersion, s)
}

// ParseChartType validates a raw chart type argument.
func ParseChartType(s string) (ChartType, error) {
	switch t := ChartType(s); t {
	case PrefixesAnnounced, PrefixesOriginated, PeerCount:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidChartType, s)
}
