package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage layer. Tests
// substitute a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type trackingRepository struct {
	storage *Storage
}

type adminRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Tracking() repository.TrackingRepository {
	return &trackingRepository{storage: s}
}

func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS admin_users (
            id UUID PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            name TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'admin',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_login TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            tracking_number TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL DEFAULT 'Pending',
            product_name TEXT NOT NULL,
            weight DOUBLE PRECISION NOT NULL,
            dimensions TEXT NOT NULL DEFAULT '',
            package_value DOUBLE PRECISION NOT NULL DEFAULT 0,
            package_description TEXT NOT NULL DEFAULT '',
            shipping_company TEXT NOT NULL,
            shipping_method TEXT NOT NULL,
            delivery_date DATE,
            recipient_name TEXT NOT NULL,
            recipient_phone TEXT NOT NULL,
            recipient_address TEXT NOT NULL,
            sender_name TEXT NOT NULL,
            sender_phone TEXT NOT NULL,
            sender_address TEXT NOT NULL,
            officer_name TEXT NOT NULL DEFAULT '',
            officer_id TEXT NOT NULL DEFAULT '',
            currency TEXT NOT NULL DEFAULT 'PHP',
            shipping_cost DOUBLE PRECISION NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS tracking_history (
            id UUID PRIMARY KEY,
            order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            status TEXT NOT NULL,
            location TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_tracking_history_order ON tracking_history(order_id, timestamp)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, tracking_number, status, product_name, weight, dimensions, package_value,
        package_description, shipping_company, shipping_method, delivery_date,
        recipient_name, recipient_phone, recipient_address,
        sender_name, sender_phone, sender_address, officer_name, officer_id,
        currency, shipping_cost, total_amount, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.TrackingNumber, &o.Status, &o.ProductName, &o.Weight, &o.Dimensions,
		&o.PackageValue, &o.PackageDescription, &o.ShippingCompany, &o.ShippingMethod,
		&o.DeliveryDate, &o.RecipientName, &o.RecipientPhone, &o.RecipientAddress,
		&o.SenderName, &o.SenderPhone, &o.SenderAddress, &o.OfficerName, &o.OfficerID,
		&o.Currency, &o.ShippingCost, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order, seed model.TrackingEvent) (*model.Order, error) {
	order.ID = uuid.NewString()

	const insertOrder = `INSERT INTO orders (
            id, tracking_number, status, product_name, weight, dimensions, package_value,
            package_description, shipping_company, shipping_method, delivery_date,
            recipient_name, recipient_phone, recipient_address,
            sender_name, sender_phone, sender_address, officer_name, officer_id,
            currency, shipping_cost, total_amount)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
        RETURNING created_at, updated_at`
	const insertSeed = `INSERT INTO tracking_history (id, order_id, status, location, description, timestamp)
        VALUES ($1, $2, $3, $4, $5, $6)`

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertOrder,
			order.ID, order.TrackingNumber, order.Status, order.ProductName, order.Weight,
			order.Dimensions, order.PackageValue, order.PackageDescription,
			order.ShippingCompany, order.ShippingMethod, order.DeliveryDate,
			order.RecipientName, order.RecipientPhone, order.RecipientAddress,
			order.SenderName, order.SenderPhone, order.SenderAddress,
			order.OfficerName, order.OfficerID,
			order.Currency, order.ShippingCost, order.TotalAmount,
		).Scan(&order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		_, err = tx.Exec(ctx, insertSeed,
			uuid.NewString(), order.ID, order.Status, seed.Location, seed.Description, order.CreatedAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByTrackingNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE tracking_number=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	clauses, args := orderPatchClauses(patch)
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE orders SET %s WHERE id=$%d RETURNING `+orderColumns,
		strings.Join(clauses, ", "), len(args))

	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return order, nil
}

func orderPatchClauses(patch model.OrderPatch) ([]string, []any) {
	clauses := []string{"updated_at=NOW()"}
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.TrackingNumber != nil {
		add("tracking_number", *patch.TrackingNumber)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ProductName != nil {
		add("product_name", *patch.ProductName)
	}
	if patch.Weight != nil {
		add("weight", *patch.Weight)
	}
	if patch.Dimensions != nil {
		add("dimensions", *patch.Dimensions)
	}
	if patch.PackageValue != nil {
		add("package_value", *patch.PackageValue)
	}
	if patch.PackageDescription != nil {
		add("package_description", *patch.PackageDescription)
	}
	if patch.ShippingCompany != nil {
		add("shipping_company", *patch.ShippingCompany)
	}
	if patch.ShippingMethod != nil {
		add("shipping_method", *patch.ShippingMethod)
	}
	if patch.DeliveryDate != nil {
		add("delivery_date", *patch.DeliveryDate)
	}
	if patch.RecipientName != nil {
		add("recipient_name", *patch.RecipientName)
	}
	if patch.RecipientPhone != nil {
		add("recipient_phone", *patch.RecipientPhone)
	}
	if patch.RecipientAddress != nil {
		add("recipient_address", *patch.RecipientAddress)
	}
	if patch.SenderName != nil {
		add("sender_name", *patch.SenderName)
	}
	if patch.SenderPhone != nil {
		add("sender_phone", *patch.SenderPhone)
	}
	if patch.SenderAddress != nil {
		add("sender_address", *patch.SenderAddress)
	}
	if patch.OfficerName != nil {
		add("officer_name", *patch.OfficerName)
	}
	if patch.OfficerID != nil {
		add("officer_id", *patch.OfficerID)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.ShippingCost != nil {
		add("shipping_cost", *patch.ShippingCost)
	}
	if patch.TotalAmount != nil {
		add("total_amount", *patch.TotalAmount)
	}

	return clauses, args
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	// tracking_history rows go with the order via ON DELETE CASCADE.
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) Stats(ctx context.Context) (*model.OrderStats, error) {
	const query = `SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0) FROM orders GROUP BY status`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &model.OrderStats{ByStatus: make(map[model.Status]int)}
	for rows.Next() {
		var (
			status model.Status
			count  int
			amount float64
		)
		if err := rows.Scan(&status, &count, &amount); err != nil {
			return nil, err
		}
		stats.TotalOrders += count
		stats.ByStatus[status] = count
		stats.Revenue += amount
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	stats.Delivered = stats.ByStatus[model.StatusDelivered]
	return stats, nil
}

// --- TrackingRepository implementation ---

func (r *trackingRepository) ListByOrder(ctx context.Context, orderID string) ([]model.TrackingEvent, error) {
	const query = `SELECT id, order_id, status, location, description, timestamp
                   FROM tracking_history WHERE order_id=$1 ORDER BY timestamp`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.TrackingEvent, 0)
	for rows.Next() {
		var e model.TrackingEvent
		if err := rows.Scan(&e.ID, &e.OrderID, &e.Status, &e.Location, &e.Description, &e.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *trackingRepository) Append(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error) {
	event.ID = uuid.NewString()

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateOrder = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		tag, err := tx.Exec(ctx, updateOrder, event.Status, event.OrderID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		const insertEvent = `INSERT INTO tracking_history (id, order_id, status, location, description)
                             VALUES ($1, $2, $3, $4, $5) RETURNING timestamp`
		return tx.QueryRow(ctx, insertEvent,
			event.ID, event.OrderID, event.Status, event.Location, event.Description,
		).Scan(&event.Timestamp)
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) Create(ctx context.Context, admin model.AdminUser) (*model.AdminUser, error) {
	admin.ID = uuid.NewString()

	const query = `INSERT INTO admin_users (id, email, password_hash, name, role)
                   VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		admin.ID, admin.Email, admin.PasswordHash, admin.Name, admin.Role,
	).Scan(&admin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	admin.LastLogin = nil
	return &admin, nil
}

func (r *adminRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	const query = `SELECT id, email, password_hash, name, role, created_at, last_login
                   FROM admin_users ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.AdminUser
	for rows.Next() {
		var a model.AdminUser
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.CreatedAt, &a.LastLogin); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	const query = `SELECT id, email, password_hash, name, role, created_at, last_login
                   FROM admin_users WHERE id=$1`
	return r.scanAdmin(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	const query = `SELECT id, email, password_hash, name, role, created_at, last_login
                   FROM admin_users WHERE email=$1`
	return r.scanAdmin(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *adminRepository) scanAdmin(row rowScanner) (*model.AdminUser, error) {
	var a model.AdminUser
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.CreatedAt, &a.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) Update(ctx context.Context, id string, patch model.AdminPatch) (*model.AdminUser, error) {
	clauses := make([]string, 0, 4)
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		add("password_hash", *patch.PasswordHash)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	if len(clauses) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE admin_users SET %s WHERE id=$%d
                   RETURNING id, email, password_hash, name, role, created_at, last_login`,
		strings.Join(clauses, ", "), len(args))

	admin, err := r.scanAdmin(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM admin_users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE admin_users SET last_login=$1 WHERE id=$2`, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
