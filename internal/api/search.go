package api

import "net/url"

// Search queries products, suppliers, and transactions with the same term
// and aggregates whatever came back. A failing endpoint contributes an
// empty slice; the result is partial rather than an error, matching the
// console's "show what we have" behavior. Only the token check can fail.
func (c *Client) Search(query string) (*SearchResult, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	params := url.Values{"q": {query}}
	result := &SearchResult{
		Products:     []Product{},
		Suppliers:    []Supplier{},
		Transactions: []Transaction{},
	}

	if data, err := c.Get("/products", params); err == nil {
		if items, ok := decodeList[Product](data, "products"); ok {
			result.Products = items
		}
	}
	if data, err := c.Get("/suppliers", params); err == nil {
		if items, ok := decodeList[Supplier](data, "suppliers"); ok {
			result.Suppliers = items
		}
	}
	if data, err := c.Get("/transactions", params); err == nil {
		if items, ok := decodeList[Transaction](data, "transactions"); ok {
			result.Transactions = items
		}
	}
	return result, nil
}
