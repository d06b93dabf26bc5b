package api

// The backend is a typical Express-style API whose field names are partly
// Indonesian (nama, harga, stok, jumlah). The types below mirror the wire
// shapes as they are, with English accessors where the difference matters.

// Product mirrors the backend product model.
type Product struct {
	ID         string  `json:"id"`
	Name       string  `json:"nama"`
	Price      float64 `json:"harga"`
	Stock      int     `json:"stok"`
	CategoryID string  `json:"kategoriId,omitempty"`
	Category   string  `json:"kategori,omitempty"`
	SupplierID string  `json:"supplierId,omitempty"`
	UpdatedAt  string  `json:"updatedAt,omitempty"`
}

// Category mirrors the backend category model.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"nama"`
}

// Supplier mirrors the backend supplier model.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"nama"`
	Phone   string `json:"telepon,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"alamat,omitempty"`
}

// Transaction mirrors the backend stock-transaction model. Type is either
// "masuk" (stock in) or "keluar" (stock out).
type Transaction struct {
	ID        string `json:"id"`
	Type      string `json:"jenis"`
	ProductID string `json:"produkId"`
	Product   string `json:"produk,omitempty"`
	Quantity  int    `json:"jumlah"`
	Date      string `json:"tanggal,omitempty"`
	Note      string `json:"catatan,omitempty"`
}

// User is the authenticated profile, resolved from a validation endpoint
// or decoded from the token payload as fallback.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// SearchResult aggregates matches across the three searchable entities.
// Partial results are expected: an unreachable endpoint contributes an
// empty slice, never an error.
type SearchResult struct {
	Products     []Product     `json:"products"`
	Suppliers    []Supplier    `json:"suppliers"`
	Transactions []Transaction `json:"transactions"`
}
