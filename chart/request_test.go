package chart

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestNewRequestNormalizesASNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2828", "2828"},
		{"AS2828", "2828"},
		{"as2828", "2828"},
		{"As2828", "2828"},
		{"aS2828", "2828"},
		{"1", "1"},
		{"1234567890", "1234567890"},
	}

	for _, c := range cases {
		req, err := NewRequest(c.in, "v4", "a")
		if err != nil {
			t.Fatalf("NewRequest(%q): %v", c.in, err)
		}
		if req.ASNumber != c.want {
			t.Errorf("NewRequest(%q).ASNumber = %q, want %q", c.in, req.ASNumber, c.want)
		}
	}
}

func TestNewRequestRejectsBadASNumber(t *testing.T) {
	bad := []string{
		"",
		"AS",
		"abc",
		"12345678901",   // 11 digits
		"AS12345678901", // 11 digits with prefix
		"2828x",
		"x2828",
		"-1",
		"2.8",
		" 2828",
		"2828 ",
		"AS 2828",
	}

	for _, in := range bad {
		_, err := NewRequest(in, "v4", "a")
		if !errors.Is(err, ErrInvalidASNumber) {
			t.Errorf("NewRequest(%q) err = %v, want ErrInvalidASNumber", in, err)
		}
	}
}

func TestNewRequestRejectsBadIPVersion(t *testing.T) {
	for _, in := range []string{"", "v5", "4", "ipv4", "V4"} {
		_, err := NewRequest("2828", in, "a")
		if !errors.Is(err, ErrInvalidIPVersion) {
			t.Errorf("NewRequest ip %q err = %v, want ErrInvalidIPVersion", in, err)
		}
	}
}

func TestNewRequestRejectsBadChartType(t *testing.T) {
	for _, in := range []string{"", "x", "A", "ap", "announced"} {
		_, err := NewRequest("2828", "v4", in)
		if !errors.Is(err, ErrInvalidChartType) {
			t.Errorf("NewRequest chart type %q err = %v, want ErrInvalidChartType", in, err)
		}
	}
}

func TestNewRequestValidatesBeforeAnything(t *testing.T) {
	// a bad AS number wins over other bad arguments
	_, err := NewRequest("nope", "v5", "x")
	if !errors.Is(err, ErrInvalidASNumber) {
		t.Errorf("err = %v, want ErrInvalidASNumber", err)
	}
}

func TestRequestURL(t *testing.T) {
	req, err := NewRequest("AS2828", "v6", "p")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := req.URL("https://example.com/cgi-bin/bgpchart.cgi")
	if err != nil {
		t.Fatal(err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("built url does not parse: %v", err)
	}
	if u.Scheme != "https" || u.Host != "example.com" || u.Path != "/cgi-bin/bgpchart.cgi" {
		t.Errorf("built url %q does not keep the base endpoint", raw)
	}

	q := u.Query()
	want := map[string]string{"as": "AS2828", "v": "v6", "t": "p"}
	for param, value := range want {
		got := q[param]
		if len(got) != 1 {
			t.Fatalf("query param %q appears %d times, want exactly once", param, len(got))
		}
		if got[0] != value {
			t.Errorf("query param %q = %q, want %q", param, got[0], value)
		}
	}
	if len(q) != len(want) {
		t.Errorf("built url carries %d query params, want %d: %q", len(q), len(want), raw)
	}
}

func TestRequestURLAllCombinations(t *testing.T) {
	for _, ip := range []IPVersion{IPv4, IPv6} {
		for _, ctype := range []ChartType{PrefixesAnnounced, PrefixesOriginated, PeerCount} {
			req, err := NewRequest("2828", string(ip), string(ctype))
			if err != nil {
				t.Fatal(err)
			}

			raw, err := req.URL("https://example.com/chart")
			if err != nil {
				t.Fatal(err)
			}
			q, err := url.ParseQuery(mustParse(t, raw).RawQuery)
			if err != nil {
				t.Fatalf("%s/%s: query does not parse: %v", ip, ctype, err)
			}

			for param, value := range map[string]string{"as": "AS2828", "v": string(ip), "t": string(ctype)} {
				if got := q[param]; len(got) != 1 || got[0] != value {
					t.Errorf("%s/%s: query param %q = %v, want exactly [%q]", ip, ctype, param, got, value)
				}
			}
		}
	}
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestRequestURLNormalizedASNumber(t *testing.T) {
	req, err := NewRequest("as64512", "v4", "a")
	if err != nil {
		t.Fatal(err)
	}

	raw, err := req.URL("https://example.com/chart")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(raw, "as=AS64512") {
		t.Errorf("url %q does not carry the AS-prefixed number", raw)
	}
}

func TestRequestURLBadBase(t *testing.T) {
	req, err := NewRequest("2828", "v4", "a")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := req.URL(":not a url"); err == nil {
		t.Error("URL accepted an unparseable base")
	}
}

func TestRequestFilename(t *testing.T) {
	cases := []struct {
		asn, ip, ctype string
		want           string
	}{
		{"2828", "v4", "a", "AS2828-v4-a.png"},
		{"AS2828", "v4", "a", "AS2828-v4-a.png"},
		{"65000", "v6", "p", "AS65000-v6-p.png"},
		{"1", "v6", "o", "AS1-v6-o.png"},
	}

	for _, c := range cases {
		req, err := NewRequest(c.asn, c.ip, c.ctype)
		if err != nil {
			t.Fatal(err)
		}
		if got := req.Filename(); got != c.want {
			t.Errorf("Filename() = %q, want %q", got, c.want)
		}
	}
}

func TestRequestTitle(t *testing.T) {
	cases := []struct {
		asn, ip, ctype string
		want           string
	}{
		{"2828", "v4", "a", "AS2828 IPv4 Prefixes Announced Chart"},
		{"2828", "v6", "o", "AS2828 IPv6 Prefixes Originated Chart"},
		{"64512", "v4", "p", "AS64512 IPv4 Peer Count Chart"},
	}

	for _, c := range cases {
		req, err := NewRequest(c.asn, c.ip, c.ctype)
		if err != nil {
			t.Fatal(err)
		}
		if got := req.Title(); got != c.want {
			t.Errorf("Title() = %q, want %q", got, c.want)
		}
	}
}
