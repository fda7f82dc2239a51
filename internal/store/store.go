package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"marketplace-service/internal/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Store struct {
	db *sqlx.DB
}

// NewStore creates a new database store
func NewStore(databaseURL string) (*Store, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database connection
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

// GetProducts retrieves all products
func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, "SELECT * FROM products ORDER BY created_at DESC, id")
	return products, err
}

// GetProductByID retrieves a product by ID
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadProductRelations(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductBySlug retrieves a product by slug
func (s *Store) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE slug = $1", slug)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found: %s", slug)
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadProductRelations(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) loadProductRelations(ctx context.Context, product *models.Product) error {
	if err := s.db.SelectContext(ctx, &product.Images,
		"SELECT * FROM product_images WHERE product_id = $1 ORDER BY position", product.ID); err != nil {
		return err
	}
	return s.db.SelectContext(ctx, &product.Variants,
		"SELECT * FROM product_variants WHERE product_id = $1 ORDER BY id", product.ID)
}

// GetCategories retrieves all categories
func (s *Store) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.SelectContext(ctx, &categories, "SELECT * FROM categories ORDER BY id")
	return categories, err
}

// GetSubcategories retrieves the direct children of a category
func (s *Store) GetSubcategories(ctx context.Context, parentID int64) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.SelectContext(ctx, &categories,
		"SELECT * FROM categories WHERE parent_id = $1 ORDER BY id", parentID)
	return categories, err
}

// GetVendorByID retrieves a vendor by ID
func (s *Store) GetVendorByID(ctx context.Context, id int64) (*models.Vendor, error) {
	var vendor models.Vendor
	err := s.db.GetContext(ctx, &vendor, "SELECT * FROM vendors WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("vendor not found: %d", id)
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}
