package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the process-local store. With the default ":memory:" DSN the
// whole catalog lives and dies with the process.
//
// The schema deliberately carries no UNIQUE indexes on users and no foreign
// keys: uniqueness of username/email and referential validity are enforced by
// the services before insert, and cart/wishlist rows are allowed to dangle
// when a product disappears (resolution joins skip them).
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A second pooled connection to ":memory:" would open a second, empty
	// database. Everything goes through one connection.
	db.SetMaxOpenConns(1)
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
-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  is_seller INTEGER NOT NULL DEFAULT 0,
  is_admin INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  image_url TEXT NOT NULL DEFAULT ''
);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL,
  seller_id TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  details TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price > 0),
  images_json TEXT NOT NULL DEFAULT '[]',
  specs_json TEXT NOT NULL DEFAULT '[]',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(seller_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Carts (one per user, keyed directly by user id)
CREATE TABLE IF NOT EXISTS cart_items(
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  created_at TEXT,
  updated_at TEXT,
  PRIMARY KEY (user_id, product_id)
);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  total NUMERIC NOT NULL,
  status TEXT NOT NULL CHECK (status IN ('pending','paid','shipped','delivered','canceled')),
  shipping_address TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id);

CREATE TABLE IF NOT EXISTS order_items(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  qty INTEGER NOT NULL CHECK (qty >= 1),
  price NUMERIC NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

-- Wishlists
CREATE TABLE IF NOT EXISTS wishlist_items(
  user_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  created_at TEXT,
  PRIMARY KEY (user_id, product_id)
);

-- Sessions
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedIfEmpty loads the demo storefront: four categories, an admin and a
// seller account, and eight products. No-op once categories exist.
func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/users/products")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	sellerHash, _ := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO categories(id,name,description) VALUES
	  ('mobiles','Mobile Phones','All Mobile Phones products'),
	  ('mobile_covers','Mobile Covers','All Mobile Covers products'),
	  ('laptops','Laptops','All Laptops products'),
	  ('games','Open World Games','All Open World Games products')`)

	tx.MustExec(`INSERT INTO users(id,username,email,password_hash,is_seller,is_admin) VALUES
	  ('u-admin','admin','admin@example.com',?,1,1),
	  ('u-seller','seller','seller@example.com',?,1,0)`, string(adminHash), string(sellerHash))

	tx.MustExec(`INSERT INTO products(id,category_id,seller_id,name,description,details,price,images_json,specs_json) VALUES
	  ('p-iphone15','mobiles','u-seller','iPhone 15 Pro',
	   'Apple''s flagship smartphone with A17 Pro chip and advanced camera system.',
	   'Titanium design, 48MP camera with 5x optical zoom, A17 Pro chip, ProMotion display up to 120Hz, all-day battery life.',
	   999.99,
	   '["https://via.placeholder.com/800x600?text=iPhone+15+Pro"]',
	   '[{"k":"Display","v":"6.1-inch Super Retina XDR"},{"k":"Processor","v":"A17 Pro chip"},{"k":"Storage","v":"128GB - 1TB"},{"k":"Battery","v":"All-day battery life"}]'),
	  ('p-galaxy-s24','mobiles','u-seller','Samsung Galaxy S24 Ultra',
	   'Premium Android smartphone with S Pen and AI features.',
	   '6.8-inch Dynamic AMOLED display, Snapdragon 8 Gen 3, 200MP camera with 10x optical zoom, built-in S Pen, titanium frame.',
	   1199.99,
	   '["https://via.placeholder.com/800x600?text=Galaxy+S24+Ultra"]',
	   '[{"k":"Display","v":"6.8-inch Dynamic AMOLED 2X"},{"k":"Processor","v":"Snapdragon 8 Gen 3"},{"k":"RAM","v":"12GB"},{"k":"Storage","v":"256GB - 1TB"}]'),
	  ('p-iphone-case','mobile_covers','u-seller','Premium Silicone iPhone Case',
	   'Protective silicone case with soft microfiber lining for iPhone models.',
	   'Excellent grip, microfiber lining against scratches, wide color range.',
	   29.99,
	   '["https://via.placeholder.com/800x600?text=Silicone+iPhone+Case"]',
	   '[{"k":"Material","v":"Silicone with microfiber lining"},{"k":"Compatibility","v":"iPhone 13/14/15 series"},{"k":"Wireless Charging","v":"Compatible"}]'),
	  ('p-macbook16','laptops','u-admin','MacBook Pro 16',
	   'Powerful laptop with M3 Pro chip and stunning Liquid Retina XDR display.',
	   'M3 Pro chip, Liquid Retina XDR display, up to 96GB unified memory, up to 22 hours battery.',
	   2499.99,
	   '["https://via.placeholder.com/800x600?text=MacBook+Pro+16"]',
	   '[{"k":"Processor","v":"M3 Pro or M3 Max"},{"k":"Display","v":"16.2-inch Liquid Retina XDR"},{"k":"Memory","v":"Up to 96GB"},{"k":"Storage","v":"Up to 8TB SSD"}]'),
	  ('p-xps15','laptops','u-admin','Dell XPS 15',
	   'Premium Windows laptop with OLED display and Intel Core processors.',
	   '15.6-inch OLED display, latest Intel Core processors, NVIDIA RTX graphics, CNC machined aluminum chassis.',
	   1899.99,
	   '["https://via.placeholder.com/800x600?text=Dell+XPS+15"]',
	   '[{"k":"Processor","v":"Intel Core i7/i9"},{"k":"Graphics","v":"NVIDIA RTX"},{"k":"Display","v":"15.6-inch 3.5K OLED"},{"k":"Memory","v":"Up to 64GB DDR5"}]'),
	  ('p-zelda-totk','games','u-seller','The Legend of Zelda: Tears of the Kingdom',
	   'Epic open-world adventure game for Nintendo Switch.',
	   'Sequel to Breath of the Wild. Explore the lands and skies of Hyrule, craft weapons and vehicles, discover an epic story.',
	   59.99,
	   '["https://via.placeholder.com/800x600?text=Zelda+TOTK"]',
	   '[{"k":"Platform","v":"Nintendo Switch"},{"k":"Genre","v":"Action-Adventure"},{"k":"Players","v":"1"},{"k":"Release","v":"2023"}]'),
	  ('p-rdr2','games','u-seller','Red Dead Redemption 2',
	   'Award-winning western-themed open world action-adventure game.',
	   'Play as Arthur Morgan of the Van der Linde gang through the decline of the Wild West.',
	   39.99,
	   '["https://via.placeholder.com/800x600?text=RDR2"]',
	   '[{"k":"Platform","v":"PlayStation, Xbox, PC"},{"k":"Genre","v":"Action-Adventure"},{"k":"Developer","v":"Rockstar Games"}]'),
	  ('p-s24-case','mobile_covers','u-admin','Samsung Galaxy S24 Case',
	   'Rugged protective case with kickstand for Samsung Galaxy S24 series.',
	   'Military-grade drop protection, built-in kickstand, raised bezels, non-slip grip texture.',
	   24.99,
	   '["https://via.placeholder.com/800x600?text=Galaxy+S24+Case"]',
	   '[{"k":"Material","v":"TPU and Polycarbonate"},{"k":"Protection","v":"Military-grade drop tested"},{"k":"Compatibility","v":"Samsung Galaxy S24 series"}]')`)

	return tx.Commit()
}
