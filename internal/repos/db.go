package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories (product types); fields_json is the embedded form schema
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_fr TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL DEFAULT '',
  parent_id TEXT,
  fields_json TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);
CREATE INDEX IF NOT EXISTS idx_categories_parent ON categories(parent_id);

-- Products; category holds the category name tag
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_fr TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  description_fr TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0),
  image TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Orders (cash on delivery)
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  customer_name TEXT NOT NULL,
  phone TEXT NOT NULL,
  city TEXT NOT NULL,
  address TEXT NOT NULL,
  notes TEXT NOT NULL DEFAULT '',
  total_price NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'PLACED',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

-- One row per cart line; options_json keeps the chosen options
CREATE TABLE IF NOT EXISTS order_items(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  line_no INTEGER NOT NULL,
  product_id TEXT,
  product_name TEXT NOT NULL,
  price NUMERIC NOT NULL,
  qty INTEGER NOT NULL,
  options_json TEXT,
  PRIMARY KEY (order_id, line_no)
);

-- Per-session persisted cart blob
CREATE TABLE IF NOT EXISTS cart_state(
  session_id TEXT PRIMARY KEY,
  data TEXT NOT NULL,
  updated_at TEXT
);

-- Key/value site-settings blobs (JSON-serialized)
CREATE TABLE IF NOT EXISTS settings(
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT
);

-- Landing banners
CREATE TABLE IF NOT EXISTS banners(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL DEFAULT '',
  title_fr TEXT NOT NULL DEFAULT '',
  image TEXT NOT NULL,
  link TEXT NOT NULL DEFAULT '',
  sort_order INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Admin accounts; the panel is the only authenticated surface
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role = 'ADMIN'),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name,name_fr,parent_id,fields_json) VALUES
	  ('cat-parfums','العطور','Parfums',NULL,''),
	  ('cat-parfums-h','عطور رجالية','Parfums homme','cat-parfums',''),
	  ('cat-parfums-f','عطور نسائية','Parfums femme','cat-parfums',''),
	  ('cat-cadeaux','الهدايا','Cadeaux',NULL,
	   '{"fields":[{"id":"engraving_text","label":"نص النقش","type":"text","required":true,"placeholder":"اكتب النص هنا"},{"id":"color","label":"اللون","type":"color","required":true,"colorOptions":[{"name":"Or","hex":"#D4AF37"},{"name":"Argent","hex":"#C0C0C0"}]}]}')`)

	tx.MustExec(`INSERT INTO products(id,name,name_fr,description,price,image,category,stock) VALUES
	  ('prd-oud','عطر العود','Parfum Oud','عطر شرقي فاخر',4500,'products/prd-oud.jpg','عطور رجالية',12),
	  ('prd-musk','عطر المسك','Parfum Musc','مسك أبيض نقي',3200,'products/prd-musk.jpg','عطور نسائية',20),
	  ('prd-box','علبة هدية منقوشة','Coffret gravé','علبة خشبية مع نقش مخصص',2800,'products/prd-box.jpg','الهدايا',7)`)

	tx.MustExec(`INSERT INTO banners(id,title,title_fr,image,link,sort_order) VALUES
	  ('bnr-1','تخفيضات الصيف','Soldes d''été','banners/summer.jpg','/category/cat-parfums',1)`)

	tx.MustExec(`INSERT INTO settings(key,value) VALUES
	  ('landing_sections','{"sections":["banners","featured","categories"]}'),
	  ('site_text','{"tagline_ar":"متجر الهدايا والعطور","tagline_fr":"Boutique de cadeaux et parfums"}')`)

	return tx.Commit()
}

// SeedAdmin ensures the configured admin account exists (idempotent).
func SeedAdmin(db *sqlx.DB, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-admin',?,?,?,'ADMIN')
		ON CONFLICT(email) DO NOTHING
	`, email, "Admin", string(hash))
	return err
}
