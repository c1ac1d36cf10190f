package backend

import (
	"context"
	"fmt"
	"io"
)

// UploadImage stores one image file and returns its served URL together with
// an encoded copy used later for colour detection.
func (c *Client) UploadImage(ctx context.Context, filename string, content io.Reader) (*UploadedImage, error) {
	var out UploadedImage
	file := &filePart{field: "file", filename: filename, content: content}
	if err := c.postMultipart(ctx, "/upload-image", nil, file, &out); err != nil {
		return nil, fmt.Errorf("upload image %s: %w", filename, err)
	}
	return &out, nil
}

func (c *Client) DetectColor(ctx context.Context, imageBase64 string) (string, error) {
	var out struct {
		PrimaryColor string `json:"primary_color"`
	}
	fields := []formField{{name: "image_base64", value: imageBase64}}
	if err := c.postMultipart(ctx, "/detect-color", fields, nil, &out); err != nil {
		return "", fmt.Errorf("detect color: %w", err)
	}
	return out.PrimaryColor, nil
}

func (c *Client) GenerateDescription(ctx context.Context, req DescriptionRequest) (string, error) {
	var out struct {
		DetailedDescription string `json:"detailed_description"`
	}
	fields := []formField{
		{name: "item_name", value: req.ItemName},
		{name: "short_description", value: req.ShortDescription},
		{name: "category", value: req.Category},
		{name: "subcategory", value: req.Subcategory},
		{name: "fabric", value: req.Fabric},
	}
	if err := c.postMultipart(ctx, "/generate-description", fields, nil, &out); err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}
	return out.DetailedDescription, nil
}
