package api

// FetchSuppliers returns the supplier list. Accepted shapes: bare array,
// {data: [...]}, {suppliers: [...]}. Shape mismatch yields an empty slice.
func (c *Client) FetchSuppliers(p ListParams) ([]Supplier, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Get("/suppliers", p.values())
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[Supplier](data, "suppliers")
	if !ok {
		return []Supplier{}, nil
	}
	return items, nil
}

// CreateSupplier adds a supplier.
func (c *Client) CreateSupplier(s Supplier) (*Supplier, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Post("/suppliers", s)
	if err != nil {
		return nil, err
	}
	created, ok := decodeObject[Supplier](data, "supplier")
	if !ok || created.ID == "" {
		return &s, nil
	}
	return &created, nil
}

// UpdateSupplier replaces a supplier's fields.
func (c *Client) UpdateSupplier(id string, s Supplier) (*Supplier, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Put("/suppliers/"+id, s)
	if err != nil {
		return nil, err
	}
	updated, ok := decodeObject[Supplier](data, "supplier")
	if !ok || updated.ID == "" {
		s.ID = id
		return &s, nil
	}
	return &updated, nil
}

// DeleteSupplier removes a supplier.
func (c *Client) DeleteSupplier(id string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	_, err := c.Delete("/suppliers/" + id)
	return err
}
