package repos

import "github.com/jmoiron/sqlx"

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

type OrderRow struct {
	ID           string  `db:"id" json:"id"`
	CustomerName string  `db:"customer_name" json:"customer_name"`
	Phone        string  `db:"phone" json:"phone"`
	City         string  `db:"city" json:"city"`
	Address      string  `db:"address" json:"address"`
	Notes        string  `db:"notes" json:"notes"`
	TotalPrice   float64 `db:"total_price" json:"total_price"`
	Status       string  `db:"status" json:"status"`
	CreatedAt    string  `db:"created_at" json:"created_at"`
}

type OrderItemRow struct {
	OrderID     string  `db:"order_id" json:"-"`
	LineNo      int     `db:"line_no" json:"-"`
	ProductID   string  `db:"product_id" json:"product_id,omitempty"`
	ProductName string  `db:"product_name" json:"product_name"`
	Price       float64 `db:"price" json:"price"`
	Qty         int     `db:"qty" json:"quantity"`
	OptionsJSON string  `db:"options_json" json:"-"`
}

func (r *OrderRepo) Create(orderID, name, phone, city, address, notes string, total float64) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, customer_name, phone, city, address, notes, total_price, status, created_at)
	  VALUES(?,?,?,?,?,?,?,'PLACED',CURRENT_TIMESTAMP)
	`, orderID, name, phone, city, address, notes, total)
	return err
}

func (r *OrderRepo) InsertItem(orderID string, lineNo int, productID, productName string, price float64, qty int, optionsJSON string) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_items(order_id, line_no, product_id, product_name, price, qty, options_json)
	  VALUES(?,?,?,?,?,?,?)
	`, orderID, lineNo, productID, productName, price, qty, optionsJSON)
	return err
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderItemRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
	  SELECT id, customer_name, phone, city, address, notes, total_price, status, created_at
	  FROM orders WHERE id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}
	var items []OrderItemRow
	if err := r.db.Select(&items, `
	  SELECT order_id, line_no, COALESCE(product_id,'') AS product_id, product_name,
	         price, qty, COALESCE(options_json,'') AS options_json
	  FROM order_items
	  WHERE order_id = ?
	  ORDER BY line_no
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}
	return o, items, nil
}

func (r *OrderRepo) ListLatest(limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderRow
	err := r.db.Select(&out, `
	  SELECT id, customer_name, phone, city, address, notes, total_price, status, created_at
	  FROM orders
	  ORDER BY datetime(created_at) DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}
