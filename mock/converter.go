package mock

import "github.com/fwojciec/djdocs"

var _ djdocs.Converter = (*Converter)(nil)

// Converter is a mock implementation of djdocs.Converter.
type Converter struct {
	ConvertFn func(html string, baseURL string) (string, error)
}

func (c *Converter) Convert(html string, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}
