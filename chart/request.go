package chart

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
)

var ErrInvalidASNumber = errors.New("invalid AS number")

// an AS number is 1 to 10 digits, with an optional AS/as prefix
var asnPattern = regexp.MustCompile(`(?i)^(AS)?(\d{1,10})$`)

// query parameter names of the chart endpoint
const (
	paramAS        = "as"
	paramIPVersion = "v"
	paramChartType = "t"
)

// Request identifies one chart: which AS, which address family, which
// statistic. Construct it with NewRequest so the fields are always
// validated.
type Request struct {
	ASNumber  string // digits only, any AS prefix stripped
	IPVersion IPVersion
	ChartType ChartType
}

// NewRequest validates the raw command line values and returns the
// normalized chart request. No network activity happens here.
func NewRequest(asn, ipVersion, chartType string) (Request, error) {
	m := asnPattern.FindStringSubmatch(asn)
	if m == nil {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidASNumber, asn)
	}

	v, err := ParseIPVersion(ipVersion)
	if err != nil {
		return Request{}, err
	}

	t, err := ParseChartType(chartType)
	if err != nil {
		return Request{}, err
	}

	return Request{
		ASNumber:  m[2],
		IPVersion: v,
		ChartType: t,
	}, nil
}

// URL builds the absolute chart URL on the given base endpoint, with
// one query parameter each for the AS number, ip version and chart
// type.
func (r Request) URL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url: %w", err)
	}

	v := url.Values{}
	v.Add(paramAS, "AS"+r.ASNumber)
	v.Add(paramIPVersion, string(r.IPVersion))
	v.Add(paramChartType, string(r.ChartType))

	// set url query params
	u.RawQuery = v.Encode()

	return u.String(), nil
}

// Filename derives the default output file name, e.g. "AS2828-v4-a.png".
func (r Request) Filename() string {
	return fmt.Sprintf("AS%s-%s-%s.png", r.ASNumber, r.IPVersion, r.ChartType)
}

// Title is the full chart name, e.g. "AS2828 IPv4 Prefixes Announced Chart".
func (r Request) Title() string {
	return fmt.Sprintf("AS%s IP%s %s", r.ASNumber, r.IPVersion, r.ChartType.Title())
}
