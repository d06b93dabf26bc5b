package output

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/gudangku/cli/internal/activity"
	"github.com/gudangku/cli/internal/api"
	"github.com/gudangku/cli/internal/toast"
)

// JSON prints v as indented JSON to stdout.
func JSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

var toastStyles = map[toast.Kind]lipgloss.Style{
	toast.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	toast.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	toast.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	toast.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

var toastMarks = map[toast.Kind]string{
	toast.Success: "✔",
	toast.Error:   "✘",
	toast.Warning: "⚠",
	toast.Info:    "ℹ",
}

// Toast prints one notification line to stderr, styled by kind, so it
// never mixes into piped command output.
func Toast(m toast.Message) {
	style, ok := toastStyles[m.Kind]
	if !ok {
		style = lipgloss.NewStyle()
	}
	fmt.Fprintln(os.Stderr, style.Render(toastMarks[m.Kind]+" "+m.Text))
}

// ProductTable prints products as a human-readable table.
func ProductTable(products []api.Product) {
	if len(products) == 0 {
		fmt.Println("No products found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, FormatPrice(p.Price), p.Stock, p.Category)
	}
	w.Flush()
}

// ProductDetail prints a single product's details.
func ProductDetail(p api.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", p.ID)
	fmt.Fprintf(w, "Name:\t%s\n", p.Name)
	fmt.Fprintf(w, "Price:\t%s\n", FormatPrice(p.Price))
	fmt.Fprintf(w, "Stock:\t%d\n", p.Stock)
	if p.Category != "" {
		fmt.Fprintf(w, "Category:\t%s\n", p.Category)
	}
	if p.SupplierID != "" {
		fmt.Fprintf(w, "Supplier:\t%s\n", p.SupplierID)
	}
	w.Flush()
}

// CategoryTable prints categories.
func CategoryTable(categories []api.Category) {
	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\n", c.ID, c.Name)
	}
	w.Flush()
}

// SupplierTable prints suppliers.
func SupplierTable(suppliers []api.Supplier) {
	if len(suppliers) == 0 {
		fmt.Println("No suppliers found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tADDRESS")
	for _, s := range suppliers {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Phone, s.Address)
	}
	w.Flush()
}

// TransactionTable prints stock transactions.
func TransactionTable(txs []api.Transaction) {
	if len(txs) == 0 {
		fmt.Println("No transactions found.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tPRODUCT\tQTY\tDATE")
	for _, t := range txs {
		product := t.Product
		if product == "" {
			product = t.ProductID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Type, product, t.Quantity, t.Date)
	}
	w.Flush()
}

// ActivityTable prints activity records, newest-first.
func ActivityTable(records []activity.Record) {
	if len(records) == 0 {
		fmt.Println("No activity yet.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\t\tACTIVITY")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s %s\n", RelativeTime(rec.Timestamp), rec.Time, rec.Icon, rec.Message)
	}
	w.Flush()
}

// ActivityStats prints aggregate counts.
func ActivityStats(stats activity.Stats) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total:\t%d\n", stats.Total)
	fmt.Fprintf(w, "Today:\t%d\n", stats.Today)
	w.Flush()
	if len(stats.ByType) == 0 {
		return
	}
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tCOUNT")
	for t, n := range stats.ByType {
		fmt.Fprintf(w, "%s\t%d\n", t, n)
	}
	w.Flush()
}

// UserInfo prints the authenticated profile.
func UserInfo(u api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Username:\t%s\n", u.Username)
	if u.Email != "" {
		fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	}
	if u.Role != "" {
		fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	}
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	w.Flush()
}

// FormatPrice renders a rupiah amount.
func FormatPrice(v float64) string {
	return fmt.Sprintf("Rp %.0f", v)
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
