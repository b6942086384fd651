package teletext

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// ErrMalformedMarkup is returned when a page document lacks the
// expected header and body blocks.
var ErrMalformedMarkup = errors.New("teletext: malformed page markup")

// Run is a minimal unit of styled text. Tags are the whitespace
// separated style class tokens from the markup, passed through
// unchanged for color resolution; they are opaque here.
type Run struct {
	Text string
	Tags []string
}

// Model is the parsed representation of one page: a plain header line
// and the ordered styled runs of the body.
type Model struct {
	Header string
	Runs   []Run
}

// Parse converts raw page markup into a Model. The document is
// expected to carry a content container whose first two pre blocks are
// the header and the body; the body's b elements are the styled runs
// and everything else between them is ignored. Unknown style tags are
// not an error.
func Parse(raw string) (*Model, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, err
	}

	container := findElement(doc, "div")
	if container == nil {
		return nil, ErrMalformedMarkup
	}

	var blocks []*html.Node
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "pre" {
			blocks = append(blocks, c)
		}
	}
	if len(blocks) != 2 {
		return nil, ErrMalformedMarkup
	}

	header, body := blocks[0], blocks[1]
	var runs []Run
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "b" {
			continue
		}
		runs = append(runs, Run{
			Text: textContent(c),
			Tags: classTags(c),
		})
	}

	return &Model{
		Header: textContent(header),
		Runs:   runs,
	}, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func classTags(n *html.Node) []string {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			return strings.Fields(attr.Val)
		}
	}
	return nil
}
