package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// ListParams are pagination parameters passed through to list endpoints.
// Zero values mean "let the server pick".
type ListParams struct {
	Page  int
	Limit int
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// FetchProducts returns the product list. Accepted shapes: bare array,
// {data: [...]}, {products: [...]}. Shape mismatch yields an empty slice.
func (c *Client) FetchProducts(p ListParams) ([]Product, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Get("/products", p.values())
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[Product](data, "products")
	if !ok {
		return []Product{}, nil
	}
	return items, nil
}

// FetchProduct returns one product by id. Accepted shapes: {data: {...}},
// {product: {...}}, bare object.
func (c *Client) FetchProduct(id string) (*Product, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Get("/products/"+id, nil)
	if err != nil {
		return nil, err
	}
	prod, ok := decodeObject[Product](data, "product")
	if !ok || prod.ID == "" {
		return nil, fmt.Errorf("product %s: unrecognized response shape", id)
	}
	return &prod, nil
}

// CreateProduct adds a product.
func (c *Client) CreateProduct(prod Product) (*Product, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Post("/products", prod)
	if err != nil {
		return nil, err
	}
	created, ok := decodeObject[Product](data, "product")
	if !ok || created.ID == "" {
		return &prod, nil
	}
	return &created, nil
}

// UpdateProduct replaces a product's fields.
func (c *Client) UpdateProduct(id string, prod Product) (*Product, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Put("/products/"+id, prod)
	if err != nil {
		return nil, err
	}
	updated, ok := decodeObject[Product](data, "product")
	if !ok || updated.ID == "" {
		prod.ID = id
		return &prod, nil
	}
	return &updated, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(id string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	_, err := c.Delete("/products/" + id)
	return err
}
