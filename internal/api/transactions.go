package api

// FetchTransactions returns the stock-transaction list. Accepted shapes:
// bare array, {data: [...]}, {transactions: [...]}. Shape mismatch yields
// an empty slice.
func (c *Client) FetchTransactions(p ListParams) ([]Transaction, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Get("/transactions", p.values())
	if err != nil {
		return nil, err
	}
	items, ok := decodeList[Transaction](data, "transactions")
	if !ok {
		return []Transaction{}, nil
	}
	return items, nil
}

// CreateTransaction records a stock movement ("masuk" or "keluar").
func (c *Client) CreateTransaction(tx Transaction) (*Transaction, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Post("/transactions", tx)
	if err != nil {
		return nil, err
	}
	created, ok := decodeObject[Transaction](data, "transaction")
	if !ok || created.ID == "" {
		return &tx, nil
	}
	return &created, nil
}

// UpdateTransaction replaces a transaction's fields.
func (c *Client) UpdateTransaction(id string, tx Transaction) (*Transaction, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}
	data, err := c.Put("/transactions/"+id, tx)
	if err != nil {
		return nil, err
	}
	updated, ok := decodeObject[Transaction](data, "transaction")
	if !ok || updated.ID == "" {
		tx.ID = id
		return &tx, nil
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction.
func (c *Client) DeleteTransaction(id string) error {
	if err := c.requireToken(); err != nil {
		return err
	}
	_, err := c.Delete("/transactions/" + id)
	return err
}
