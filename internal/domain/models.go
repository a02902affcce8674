package domain

// Category is one node of the catalog forest. ParentID is nil for roots.
// FieldsJSON holds the category's product-form schema as a JSON blob,
// inherited by every product filed under it.
type Category struct {
	ID         string  `db:"id" json:"id"`
	Name       string  `db:"name" json:"name"`
	NameFr     string  `db:"name_fr" json:"name_fr"`
	Image      string  `db:"image" json:"image,omitempty"`
	ParentID   *string `db:"parent_id" json:"parent_id"`
	FieldsJSON string  `db:"fields_json" json:"-"`
	CreatedAt  string  `db:"created_at" json:"created_at"`
	UpdatedAt  string  `db:"updated_at" json:"-"`
}

type Product struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	NameFr        string  `db:"name_fr" json:"name_fr"`
	Description   string  `db:"description" json:"description"`
	DescriptionFr string  `db:"description_fr" json:"description_fr"`
	Price         float64 `db:"price" json:"price"`
	Image         string  `db:"image" json:"image"`
	Category      string  `db:"category" json:"category"` // category name tag
	Stock         int     `db:"stock" json:"stock"`
	Active        bool    `db:"active" json:"active"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
	UpdatedAt     string  `db:"updated_at" json:"-"`
}

type Banner struct {
	ID        string `db:"id" json:"id"`
	Title     string `db:"title" json:"title"`
	TitleFr   string `db:"title_fr" json:"title_fr"`
	Image     string `db:"image" json:"image"`
	Link      string `db:"link" json:"link"`
	SortOrder int    `db:"sort_order" json:"sort_order"`
	Active    bool   `db:"active" json:"active"`
	CreatedAt string `db:"created_at" json:"-"`
}

// Setting is one key/value site-settings blob; Value is serialized JSON.
type Setting struct {
	Key       string `db:"key" json:"key"`
	Value     string `db:"value" json:"value"`
	UpdatedAt string `db:"updated_at" json:"-"`
}
