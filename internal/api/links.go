package api

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Meta is the pagination state of a response.
type Meta struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// LinkSet holds absolute URLs for the pages related to the current one. Prev
// and Next are nil on the first and last page respectively.
type LinkSet struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
	Self  string  `json:"self"`
}

// buildLinks derives the page links for meta from the inbound request. Every
// query parameter except page is preserved in its original order and
// encoding; page is appended last.
func buildLinks(r *http.Request, publicURL string, meta Meta) LinkSet {
	base := requestBase(r, publicURL) + r.URL.EscapedPath() + "?"

	var params []string
	if r.URL.RawQuery != "" {
		for _, p := range strings.Split(r.URL.RawQuery, "&") {
			if p == "" {
				continue
			}
			key, _, _ := strings.Cut(p, "=")
			if k, err := url.QueryUnescape(key); err == nil && k == "page" {
				continue
			}
			params = append(params, p)
		}
	}
	if len(params) > 0 {
		base += strings.Join(params, "&") + "&"
	}

	page := func(n int) string {
		return base + "page=" + strconv.Itoa(n)
	}

	links := LinkSet{
		First: page(1),
		Last:  page(meta.TotalPages),
		Self:  page(meta.Page),
	}
	if meta.Page > 1 {
		prev := page(meta.Page - 1)
		links.Prev = &prev
	}
	if meta.Page < meta.TotalPages {
		next := page(meta.Page + 1)
		links.Next = &next
	}
	return links
}

// Header renders the links as a Link header value, in the order self, first,
// prev, next, last.
func (l LinkSet) Header() string {
	var b strings.Builder
	b.WriteString("<" + l.Self + ">;rel=self")
	b.WriteString(",<" + l.First + ">;rel=first")
	if l.Prev != nil {
		b.WriteString(",<" + *l.Prev + ">;rel=prev")
	}
	if l.Next != nil {
		b.WriteString(",<" + *l.Next + ">;rel=next")
	}
	b.WriteString(",<" + l.Last + ">;rel=last")
	return b.String()
}

// requestBase returns scheme://host for links. A configured public URL wins
// over what the request arrived with.
func requestBase(r *http.Request, publicURL string) string {
	if publicURL != "" {
		if u, err := url.Parse(publicURL); err == nil && u.Host != "" {
			return u.Scheme + "://" + u.Host + strings.TrimSuffix(u.Path, "/")
		}
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
