// Package memory provides a map-based storage backend. It satisfies the same
// repository contract as the PostgreSQL backend and is selected when no
// database URI is configured.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/maropko/parceltrack/internal/domain/errors"
	"github.com/maropko/parceltrack/internal/domain/model"
	"github.com/maropko/parceltrack/internal/domain/repository"
)

// Store keeps all entities in process-wide maps guarded by one lock.
type Store struct {
	mu      sync.RWMutex
	orders  map[string]model.Order
	events  map[string][]model.TrackingEvent
	admins  map[string]model.AdminUser
	nowFunc func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		orders:  make(map[string]model.Order),
		events:  make(map[string][]model.TrackingEvent),
		admins:  make(map[string]model.AdminUser),
		nowFunc: time.Now,
	}
}

func (s *Store) now() time.Time {
	return s.nowFunc()
}

// Factory methods for domain repositories.
func (s *Store) Orders() repository.OrderRepository { return &orderRepository{store: s} }

func (s *Store) Tracking() repository.TrackingRepository { return &trackingRepository{store: s} }

func (s *Store) Admins() repository.AdminRepository { return &adminRepository{store: s} }

type orderRepository struct {
	store *Store
}

type trackingRepository struct {
	store *Store
}

type adminRepository struct {
	store *Store
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order, seed model.TrackingEvent) (*model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders {
		if existing.TrackingNumber == order.TrackingNumber {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	now := s.now()
	order.ID = uuid.NewString()
	order.CreatedAt = now
	order.UpdatedAt = now

	seed.ID = uuid.NewString()
	seed.OrderID = order.ID
	seed.Timestamp = now
	seed.Status = order.Status

	s.orders[order.ID] = order
	s.events[order.ID] = []model.TrackingEvent{seed}

	created := order
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &order, nil
}

func (r *orderRepository) GetByTrackingNumber(ctx context.Context, number string) (*model.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, order := range s.orders {
		if order.TrackingNumber == number {
			found := order
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, 0, len(s.orders))
	for _, order := range s.orders {
		result = append(result, order)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *orderRepository) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if patch.TrackingNumber != nil && *patch.TrackingNumber != order.TrackingNumber {
		for otherID, other := range s.orders {
			if otherID != id && other.TrackingNumber == *patch.TrackingNumber {
				return nil, domainErrors.ErrAlreadyExists
			}
		}
		order.TrackingNumber = *patch.TrackingNumber
	}

	applyOrderPatch(&order, patch)
	order.UpdatedAt = s.now()
	s.orders[id] = order

	updated := order
	return &updated, nil
}

func applyOrderPatch(order *model.Order, patch model.OrderPatch) {
	if patch.Status != nil {
		order.Status = *patch.Status
	}
	if patch.ProductName != nil {
		order.ProductName = *patch.ProductName
	}
	if patch.Weight != nil {
		order.Weight = *patch.Weight
	}
	if patch.Dimensions != nil {
		order.Dimensions = *patch.Dimensions
	}
	if patch.PackageValue != nil {
		order.PackageValue = *patch.PackageValue
	}
	if patch.PackageDescription != nil {
		order.PackageDescription = *patch.PackageDescription
	}
	if patch.ShippingCompany != nil {
		order.ShippingCompany = *patch.ShippingCompany
	}
	if patch.ShippingMethod != nil {
		order.ShippingMethod = *patch.ShippingMethod
	}
	if patch.DeliveryDate != nil {
		date := *patch.DeliveryDate
		order.DeliveryDate = &date
	}
	if patch.RecipientName != nil {
		order.RecipientName = *patch.RecipientName
	}
	if patch.RecipientPhone != nil {
		order.RecipientPhone = *patch.RecipientPhone
	}
	if patch.RecipientAddress != nil {
		order.RecipientAddress = *patch.RecipientAddress
	}
	if patch.SenderName != nil {
		order.SenderName = *patch.SenderName
	}
	if patch.SenderPhone != nil {
		order.SenderPhone = *patch.SenderPhone
	}
	if patch.SenderAddress != nil {
		order.SenderAddress = *patch.SenderAddress
	}
	if patch.OfficerName != nil {
		order.OfficerName = *patch.OfficerName
	}
	if patch.OfficerID != nil {
		order.OfficerID = *patch.OfficerID
	}
	if patch.Currency != nil {
		order.Currency = *patch.Currency
	}
	if patch.ShippingCost != nil {
		order.ShippingCost = *patch.ShippingCost
	}
	if patch.TotalAmount != nil {
		order.TotalAmount = *patch.TotalAmount
	}
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.orders, id)
	delete(s.events, id)
	return nil
}

func (r *orderRepository) Stats(ctx context.Context) (*model.OrderStats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &model.OrderStats{ByStatus: make(map[model.Status]int)}
	for _, order := range s.orders {
		stats.TotalOrders++
		stats.ByStatus[order.Status]++
		stats.Revenue += order.TotalAmount
	}
	stats.Delivered = stats.ByStatus[model.StatusDelivered]
	return stats, nil
}

// --- TrackingRepository implementation ---

func (r *trackingRepository) ListByOrder(ctx context.Context, orderID string) ([]model.TrackingEvent, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := s.events[orderID]
	result := make([]model.TrackingEvent, len(events))
	copy(result, events)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})
	return result, nil
}

func (r *trackingRepository) Append(ctx context.Context, event model.TrackingEvent) (*model.TrackingEvent, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[event.OrderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	now := s.now()
	event.ID = uuid.NewString()
	event.Timestamp = now
	s.events[event.OrderID] = append(s.events[event.OrderID], event)

	order.Status = event.Status
	order.UpdatedAt = now
	s.orders[event.OrderID] = order

	appended := event
	return &appended, nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) Create(ctx context.Context, admin model.AdminUser) (*model.AdminUser, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins {
		if existing.Email == admin.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	admin.ID = uuid.NewString()
	admin.CreatedAt = s.now()
	admin.LastLogin = nil
	s.admins[admin.ID] = admin

	created := admin
	return &created, nil
}

func (r *adminRepository) List(ctx context.Context) ([]model.AdminUser, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.AdminUser, 0, len(s.admins))
	for _, admin := range s.admins {
		result = append(result, admin)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.admins[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, admin := range s.admins {
		if admin.Email == email {
			found := admin
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *adminRepository) Update(ctx context.Context, id string, patch model.AdminPatch) (*model.AdminUser, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	if patch.Email != nil && *patch.Email != admin.Email {
		for otherID, other := range s.admins {
			if otherID != id && other.Email == *patch.Email {
				return nil, domainErrors.ErrAlreadyExists
			}
		}
		admin.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		admin.PasswordHash = *patch.PasswordHash
	}
	if patch.Name != nil {
		admin.Name = *patch.Name
	}
	if patch.Role != nil {
		admin.Role = *patch.Role
	}

	s.admins[id] = admin
	updated := admin
	return &updated, nil
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.admins[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.admins, id)
	return nil
}

func (r *adminRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, ok := s.admins[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	admin.LastLogin = &at
	s.admins[id] = admin
	return nil
}
