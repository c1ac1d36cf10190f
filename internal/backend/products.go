package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) ListProducts(ctx context.Context, q url.Values) ([]Product, error) {
	var out []Product
	if err := c.getJSON(ctx, "/products", q, &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var out Product
	if err := c.getJSON(ctx, "/products/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p ProductPayload) (*Product, error) {
	var out Product
	if err := c.sendJSON(ctx, http.MethodPost, "/products", p, &out); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p ProductPayload) (*Product, error) {
	var out Product
	if err := c.sendJSON(ctx, http.MethodPut, "/products/"+url.PathEscape(id), p, &out); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.sendJSON(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}
