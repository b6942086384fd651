package teletext

import "context"

// Frame is one renderable page: the header line and the wrapped body
// lines. Frames are built per navigation and not retained.
type Frame struct {
	Header string
	Lines  []Line
}

// Service runs the render pipeline for one page load: fetch the raw
// markup, parse it, wrap the body runs to the display width.
type Service struct {
	client *Client
	width  int
}

// NewService returns a service rendering pages at the given width.
func NewService(client *Client, width int) *Service {
	return &Service{client: client, width: width}
}

// Load fetches and renders one page/sub-page. A transport or parse
// failure aborts the load; nothing is cached or retried.
func (s *Service) Load(ctx context.Context, page, subPage int) (*Frame, error) {
	raw, err := s.client.FetchPage(ctx, page, subPage)
	if err != nil {
		return nil, err
	}
	model, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return &Frame{
		Header: model.Header,
		Lines:  Wrap(model.Runs, s.width),
	}, nil
}
