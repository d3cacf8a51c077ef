// Package repotest provides in-memory repositories for service and handler
// tests. The zero value of every type is ready to use.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// ForeignKeyError mimics a classified foreign key violation on constraint
func ForeignKeyError(constraint string) error {
	return fmt.Errorf("%w (%s): %w", repository.ErrForeignKey, constraint,
		&pgconn.PgError{Code: "23503", ConstraintName: constraint})
}

// Users is an in-memory UserRepository enforcing case-insensitive unique
// emails. DeleteErr, when set, is returned by Delete without removing anything.
type Users struct {
	mu        sync.Mutex
	rows      map[int]model.User
	nextID    int
	DeleteErr error
	Updates   int
	Deletes   int
}

func NewUsers(seed ...model.User) *Users {
	r := &Users{}
	for _, u := range seed {
		r.put(u)
	}
	return r
}

func (r *Users) put(u model.User) {
	if r.rows == nil {
		r.rows = map[int]model.User{}
	}
	r.rows[u.ID] = u
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
}

func (r *Users) emailTaken(email string, except int) bool {
	for id, u := range r.rows {
		if strings.EqualFold(u.Email, email) && id != except {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the stored row
func (r *Users) Snapshot(id int) (model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	return u, ok
}

func (r *Users) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *Users) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(user.Email, 0) {
		return fmt.Errorf("failed to create user: %w", repository.ErrDuplicate)
	}
	if r.nextID == 0 {
		r.nextID = 1
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.put(*user)
	return nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Users) FindByID(_ context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *Users) FindAll(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []model.User{}
	for _, u := range r.rows {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *Users) Update(_ context.Context, id int, req model.UpdateUserRequest) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Updates++
	u, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Email != nil {
		if r.emailTaken(*req.Email, id) {
			return nil, repository.ErrDuplicate
		}
		u.Email = *req.Email
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	r.rows[id] = u
	return &u, nil
}

func (r *Users) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deletes++
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	delete(r.rows, id)
	return nil
}

// Employees is an in-memory EmployeeRepository
type Employees struct {
	mu    sync.Mutex
	rows  []model.Employee
	Reads int
}

func NewEmployees(seed ...model.Employee) *Employees {
	return &Employees{rows: append([]model.Employee{}, seed...)}
}

func (r *Employees) FindAll(_ context.Context) ([]model.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reads++
	return append([]model.Employee{}, r.rows...), nil
}

func (r *Employees) Create(_ context.Context, e *model.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = len(r.rows) + 1
	r.rows = append(r.rows, *e)
	return nil
}

// Orders is an in-memory OrderRepository. CreateErr, when set, is returned
// by Create without storing anything.
type Orders struct {
	mu        sync.Mutex
	rows      []model.Order
	CreateErr error
	Creates   int
}

func NewOrders(seed ...model.Order) *Orders {
	return &Orders{rows: append([]model.Order{}, seed...)}
}

func (r *Orders) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *Orders) Create(_ context.Context, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Creates++
	if r.CreateErr != nil {
		return r.CreateErr
	}
	o.ID = len(r.rows) + 1
	o.CreatedAt = time.Now()
	for i := range o.OrderDetails {
		o.OrderDetails[i].ID = i + 1
		o.OrderDetails[i].OrderID = o.ID
	}
	r.rows = append(r.rows, *o)
	return nil
}

func (r *Orders) FindByID(_ context.Context, id int) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.rows {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Orders) FindByUser(_ context.Context, userID int) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := []model.Order{}
	for _, o := range r.rows {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// Products is an in-memory ProductRepository. Prices are stored rounded to
// two places like the NUMERIC(10, 2) columns. CreateErr and DeleteErr inject
// failures.
type Products struct {
	mu        sync.Mutex
	rows      map[int]model.Product
	nextID    int
	CreateErr error
	DeleteErr error
}

func NewProducts(seed ...model.Product) *Products {
	r := &Products{}
	for _, p := range seed {
		r.put(p)
	}
	return r
}

func (r *Products) put(p model.Product) {
	if r.rows == nil {
		r.rows = map[int]model.Product{}
	}
	p.Price = p.Price.Round(2)
	if len(p.Addons) > 0 {
		addons := make([]model.Addon, len(p.Addons))
		for i, a := range p.Addons {
			a.Price = a.Price.Round(2)
			addons[i] = a
		}
		p.Addons = addons
	}
	r.rows[p.ID] = p
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
}

func (r *Products) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

func (r *Products) Create(_ context.Context, p *model.Product, stockQuantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	if r.nextID == 0 {
		r.nextID = 1
	}
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	p.Stock = &model.Stock{ID: p.ID, ProductID: p.ID, Quantity: stockQuantity}
	for i := range p.Addons {
		p.Addons[i].ID = i + 1
		p.Addons[i].ProductID = p.ID
	}
	r.put(*p)
	return nil
}

func (r *Products) FindByID(_ context.Context, id int) (*model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *Products) FindAll(_ context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	products := []model.Product{}
	for _, p := range r.rows {
		p.Addons = nil
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (r *Products) Update(_ context.Context, p *model.Product, stockQuantity *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.rows[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	p.CreatedAt = stored.CreatedAt
	p.UpdatedAt = time.Now()
	p.Stock = stored.Stock
	if stockQuantity != nil {
		p.Stock = &model.Stock{ID: p.ID, ProductID: p.ID, Quantity: *stockQuantity}
	}
	p.Addons = stored.Addons
	r.put(*p)
	return nil
}

func (r *Products) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	if _, ok := r.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

// Catalog is an in-memory CatalogRepository. Creates upsert by name.
type Catalog struct {
	mu             sync.Mutex
	Categories     []model.Category
	PaymentMethods []model.PaymentMethod
}

func (r *Catalog) FindCategories(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Category{}, r.Categories...), nil
}

func (r *Catalog) CreateCategory(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.Categories {
		if existing.Name == c.Name {
			c.ID = existing.ID
			return nil
		}
	}
	c.ID = len(r.Categories) + 1
	r.Categories = append(r.Categories, *c)
	return nil
}

func (r *Catalog) FindPaymentMethods(_ context.Context) ([]model.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.PaymentMethod{}, r.PaymentMethods...), nil
}

func (r *Catalog) CreatePaymentMethod(_ context.Context, m *model.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.PaymentMethods {
		if existing.Method == m.Method {
			m.ID = existing.ID
			return nil
		}
	}
	m.ID = len(r.PaymentMethods) + 1
	r.PaymentMethods = append(r.PaymentMethods, *m)
	return nil
}

var (
	_ repository.UserRepository     = (*Users)(nil)
	_ repository.EmployeeRepository = (*Employees)(nil)
	_ repository.OrderRepository    = (*Orders)(nil)
	_ repository.ProductRepository  = (*Products)(nil)
	_ repository.CatalogRepository  = (*Catalog)(nil)
)
