// Copyright 2026 The Golfkarta Authors
// SPDX-License-Identifier: Apache-2.0

// Package htmlutils provides utility functions for working with HTML.
package htmlutils

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// maxTitleLength bounds titles taken from pages.
const maxTitleLength = 200

// ErrNotHTML is returned for responses that are not HTML documents.
var ErrNotHTML = errors.New("not an HTML document")

// Text appends the text content of n to sb, collapsing whitespace.
func Text(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		tmp := strings.Join(strings.Fields(n.Data), " ")
		if len(tmp) > 0 {
			if sb.Len() != 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(tmp)
		}

		return
	}

	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		Text(child, sb)
	}
}

// Validates that response seems to be an HTML response.
func hasHTMLContentType(media string) bool {
	const expectedMedia = "text/html"

	return strings.EqualFold(
		expectedMedia,
		media[0:min(len(media), len(expectedMedia))],
	)
}

// AsReader converts an HTTP response body to an io.Reader with the correct charset.
func AsReader(resp *http.Response) (io.Reader, error) {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	media := resp.Header.Get("Content-Type")
	if !hasHTMLContentType(media) {
		return nil, fmt.Errorf("%w: media type is %s", ErrNotHTML, media)
	}

	rr, err := charset.NewReader(resp.Body, media)
	if err != nil {
		return nil, err
	}

	return rr, nil
}

// AsNode parses an io.Reader as an HTML node.
func AsNode(r io.Reader) (*html.Node, error) {
	n, err := html.Parse(r)
	if nil != err {
		return nil, fmt.Errorf("parsing body as HTML: %w", err)
	}

	return n, nil
}

func findTitle(n *html.Node) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}

		if strings.EqualFold("title", child.Data) {
			return child
		}

		if strings.EqualFold("body", child.Data) {
			// we're done
			return nil
		}

		if found := findTitle(child); found != nil {
			return found
		}
	}

	return nil
}

// Title returns the document title of n, "" when there is none.
func Title(n *html.Node) string {
	t := findTitle(n)
	if t == nil {
		return ""
	}

	sb := strings.Builder{}
	Text(t, &sb)

	title := sb.String()
	if r := []rune(title); len(r) > maxTitleLength {
		title = string(r[:maxTitleLength]) + "…"
	}

	return title
}

// ResponseTitle reads the title of an HTML response.
func ResponseTitle(resp *http.Response) (string, error) {
	r, err := AsReader(resp)
	if err != nil {
		return "", err
	}

	n, err := AsNode(r)
	if err != nil {
		return "", err
	}

	return Title(n), nil
}
