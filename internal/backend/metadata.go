package backend

import (
	"context"
	"fmt"
)

// AllFabrics lists the built-in fabrics merged with the custom ones.
func (c *Client) AllFabrics(ctx context.Context) ([]string, error) {
	var out struct {
		Fabrics []string `json:"fabrics"`
	}
	if err := c.getJSON(ctx, "/metadata/all-fabrics", nil, &out); err != nil {
		return nil, fmt.Errorf("load fabrics: %w", err)
	}
	return out.Fabrics, nil
}

func (c *Client) Colors(ctx context.Context) ([]string, error) {
	var out struct {
		Colors []string `json:"colors"`
	}
	if err := c.getJSON(ctx, "/metadata/colors", nil, &out); err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}
	return out.Colors, nil
}

func (c *Client) Sizes(ctx context.Context) (SizeOptions, error) {
	var out SizeOptions
	if err := c.getJSON(ctx, "/metadata/sizes", nil, &out); err != nil {
		return SizeOptions{}, fmt.Errorf("load sizes: %w", err)
	}
	return out, nil
}

func (c *Client) AddFabric(ctx context.Context, name string) error {
	fields := []formField{{name: "fabric_name", value: name}}
	if err := c.postMultipart(ctx, "/metadata/fabrics", fields, nil, nil); err != nil {
		return fmt.Errorf("add fabric %q: %w", name, err)
	}
	return nil
}
