package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalogapi/models"
)

const productColumns = `product_id, product_title, product_price, product_description, product_image, product_category, created_timestamp, updated_timestamp`

// ProductService runs catalog queries and mutations against the store.
type ProductService struct {
	db *sql.DB
}

func NewProductService(db *sql.DB) *ProductService {
	return &ProductService{db: db}
}

// GetProducts returns one page of products ordered by creation time,
// newest first, together with the total number of rows matching the
// search filter. The filter matches title, description or category as
// a substring; limit and offset only affect the returned page.
func (s *ProductService) GetProducts(ctx context.Context, limit, offset int, search string) ([]models.Product, int, error) {
	whereClause := ""
	var params []any

	if term := strings.TrimSpace(search); term != "" {
		whereClause = `WHERE product_title LIKE ? OR product_description LIKE ? OR product_category LIKE ?`
		like := "%" + term + "%"
		params = []any{like, like, like}
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM products ` + whereClause
	if err := s.db.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, storeErr("get products", err)
	}

	query := `SELECT ` + productColumns + ` FROM products ` + whereClause +
		` ORDER BY created_timestamp DESC LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, append(params, limit, offset)...)
	if err != nil {
		return nil, 0, storeErr("get products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, storeErr("get products", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storeErr("get products", err)
	}

	return products, total, nil
}

// GetProduct returns the product matching productID, or
// ErrProductNotFound when no row matches.
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ?`
	product, err := scanProduct(s.db.QueryRowContext(ctx, query, productID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, storeErr("get product", err)
	}
	return &product, nil
}

// CreateProduct generates an identifier and both timestamps, inserts the
// row and returns it re-read from the store.
func (s *ProductService) CreateProduct(ctx context.Context, input models.CreateProductInput) (*models.Product, error) {
	productID := uuid.NewString()
	now := time.Now().UTC().Format(models.TimestampFormat)

	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		productID, input.ProductTitle, input.ProductPrice,
		deref(input.ProductDescription), deref(input.ProductImage), deref(input.ProductCategory),
		now, now,
	)
	if err != nil {
		return nil, storeErr("create product", err)
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, storeErr("create product", err)
	}
	return product, nil
}

// UpdateProduct applies the supplied fields to an existing product and
// refreshes updated_timestamp. With no fields supplied the existing row
// is returned untouched. Returns ErrProductNotFound when no row matches.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, input models.UpdateProductInput) (*models.Product, error) {
	existing, err := s.GetProduct(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storeErr("update product", err)
	}

	var setClauses []string
	var values []any
	if input.ProductTitle != nil {
		setClauses = append(setClauses, "product_title = ?")
		values = append(values, *input.ProductTitle)
	}
	if input.ProductPrice != nil {
		setClauses = append(setClauses, "product_price = ?")
		values = append(values, *input.ProductPrice)
	}
	if input.ProductDescription != nil {
		setClauses = append(setClauses, "product_description = ?")
		values = append(values, *input.ProductDescription)
	}
	if input.ProductImage != nil {
		setClauses = append(setClauses, "product_image = ?")
		values = append(values, *input.ProductImage)
	}
	if input.ProductCategory != nil {
		setClauses = append(setClauses, "product_category = ?")
		values = append(values, *input.ProductCategory)
	}

	if len(setClauses) == 0 {
		return existing, nil
	}

	setClauses = append(setClauses, "updated_timestamp = ?")
	values = append(values, time.Now().UTC().Format(models.TimestampFormat), productID)

	query := `UPDATE products SET ` + strings.Join(setClauses, ", ") + ` WHERE product_id = ?`
	if _, err := s.db.ExecContext(ctx, query, values...); err != nil {
		return nil, storeErr("update product", err)
	}

	updated, err := s.GetProduct(ctx, productID)
	if errors.Is(err, ErrProductNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storeErr("update product", err)
	}
	return updated, nil
}

// DeleteProduct removes the row matching productID. ErrProductNotFound
// is returned when nothing was deleted, which is how callers tell a
// missing product apart from a store failure.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, productID)
	if err != nil {
		return storeErr("delete product", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeErr("delete product", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	var description, image, category sql.NullString

	err := row.Scan(
		&p.ProductID,
		&p.ProductTitle,
		&p.ProductPrice,
		&description,
		&image,
		&category,
		&p.CreatedTimestamp,
		&p.UpdatedTimestamp,
	)
	if err != nil {
		return models.Product{}, err
	}

	if description.Valid {
		p.ProductDescription = &description.String
	}
	if image.Valid {
		p.ProductImage = &image.String
	}
	if category.Valid {
		p.ProductCategory = &category.String
	}
	return p, nil
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
