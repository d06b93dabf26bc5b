package api

import "net/url"

// DefaultCategories is substituted when the categories endpoint answers
// 2xx but the body matches none of the known shapes. Listing pages always
// need something to render, so shape mismatch here is not an error.
var DefaultCategories = []Category{
	{ID: "default-1", Name: "Elektronik"},
	{ID: "default-2", Name: "Makanan"},
	{ID: "default-3", Name: "Minuman"},
}

// FetchCategories returns all categories. Accepted shapes: bare array,
// {data: [...]}, {categories: [...]}. Shape mismatch yields the default
// list; HTTP and transport failures are returned as errors.
func (c *Client) FetchCategories() ([]Category, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Get("/categories", nil)
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[Category](data, "categories")
	if !ok {
		return DefaultCategories, nil
	}
	return items, nil
}

// CreateCategory adds a new category.
func (c *Client) CreateCategory(name string) (*Category, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Post("/categories", map[string]string{"nama": name})
	if err != nil {
		return nil, err
	}
	cat, ok := decodeObject[Category](data, "category")
	if !ok || cat.ID == "" {
		// Server acknowledged but echoed nothing usable; synthesize from input.
		return &Category{Name: name}, nil
	}
	return &cat, nil
}

// ProductsByCategory returns products filtered server-side by category id.
// Shape mismatch yields an empty slice, not the default category list —
// the per-call-site fallback defaults are deliberately not unified.
func (c *Client) ProductsByCategory(categoryID string) ([]Product, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	params := url.Values{"kategoriId": {categoryID}}
	data, err := c.Get("/products", params)
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[Product](data, "products")
	if !ok {
		return []Product{}, nil
	}
	return items, nil
}
