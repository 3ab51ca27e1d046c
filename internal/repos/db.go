package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
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
	// Seed the demo catalog if the store is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Items
CREATE TABLE IF NOT EXISTS items(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  name TEXT NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  description TEXT NOT NULL DEFAULT ''
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_items_name_nocase ON items(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);
CREATE INDEX IF NOT EXISTS idx_items_stock    ON items(stock);
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

	log.Println("[seed] inserting demo categories/items")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name,description) VALUES
	  (1,'Dry Sweet','Dry sweets and fudges'),
	  (2,'Bengali Sweet','Traditional Bengali sweets'),
	  (3,'Traditional','Classic Indian sweets'),
	  (4,'Milk Sweet','Milk-based sweets'),
	  (5,'Syrup-based','Sweets in syrup')`)

	tx.MustExec(`INSERT INTO items(id,category_id,name,stock,price,description) VALUES
	  (1,1,'Kaju Katli',20,600,'Delicious cashew fudge'),
	  (2,2,'Rasgulla',45,350,'Soft spongy balls in syrup'),
	  (3,3,'Laddu',8,250,'Round sweet balls'),
	  (4,5,'Gulab Jamun',35,300,'Fried milk solids in syrup'),
	  (5,4,'Barfi',15,400,'Milk-based fudge'),
	  (6,5,'Jalebi',5,200,'Spiral sweet in syrup'),
	  (7,4,'Kheer',12,280,'Rice pudding'),
	  (8,3,'Halwa',22,350,'Semolina pudding')`)

	return tx.Commit()
}
