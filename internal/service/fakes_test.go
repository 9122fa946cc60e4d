package service

import (
	"sort"
	"strings"

	"virtualshop/internal/domain"
	"virtualshop/internal/repository"
)

// In-memory stands-ins for the gorm repositories. They hand out copies so
// callers cannot mutate stored state behind the store's back.

type fakeUserStore struct {
	seq   uint
	users map[uint]domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]domain.User)}
}

func (f *fakeUserStore) Create(user *domain.User) error {
	f.seq++
	user.ID = f.seq
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Save(user *domain.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) FindByEmail(email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserStore) FindByID(id uint) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := u
	return &out, nil
}

func (f *fakeUserStore) ExistsByEmail(email string) (bool, error) {
	_, err := f.FindByEmail(email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserStore) List(page, pageSize int) ([]domain.User, int64, error) {
	all := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return pageOf(all, page, pageSize), int64(len(all)), nil
}

type fakeProductStore struct {
	seq      uint
	products map[uint]domain.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[uint]domain.Product)}
}

func (f *fakeProductStore) Create(product *domain.Product) error {
	f.seq++
	product.ID = f.seq
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductStore) Save(product *domain.Product) error {
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductStore) FindByID(id uint) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := p
	return &out, nil
}

func (f *fakeProductStore) Delete(id uint) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductStore) List(page, pageSize int) ([]domain.Product, int64, error) {
	all := f.sorted()
	return pageOf(all, page, pageSize), int64(len(all)), nil
}

func (f *fakeProductStore) Search(filter repository.ProductFilter, page, pageSize int) ([]domain.Product, int64, error) {
	var matches []domain.Product
	for _, p := range f.sorted() {
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		matches = append(matches, p)
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Price.LessThan(matches[j].Price) })
	return pageOf(matches, page, pageSize), int64(len(matches)), nil
}

func (f *fakeProductStore) BestSellers(page, pageSize int) ([]domain.Product, int64, error) {
	// Catalog-only fake: sales aggregation lives in the SQL join.
	return nil, 0, nil
}

func (f *fakeProductStore) sorted() []domain.Product {
	all := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

type fakeOrderStore struct {
	seq    uint
	orders map[uint]domain.Order
	users  *fakeUserStore
}

func newFakeOrderStore(users *fakeUserStore) *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uint]domain.Order), users: users}
}

func (f *fakeOrderStore) Create(order *domain.Order) error {
	f.seq++
	order.ID = f.seq
	for i := range order.Items {
		order.Items[i].ID = uint(i + 1)
		order.Items[i].OrderID = order.ID
	}
	order.Payment.ID = order.ID
	order.Payment.OrderID = order.ID
	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	f.orders[order.ID] = stored
	return nil
}

func (f *fakeOrderStore) FindByID(id uint) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	out := o
	out.Items = append([]domain.OrderItem(nil), o.Items...)
	if customer, err := f.users.FindByID(o.CustomerID); err == nil {
		out.Customer = *customer
	}
	return &out, nil
}

func (f *fakeOrderStore) FindByCustomerEmail(email, status string, page, pageSize int) ([]domain.Order, int64, error) {
	var matches []domain.Order
	for id := uint(1); id <= f.seq; id++ {
		o, ok := f.orders[id]
		if !ok {
			continue
		}
		customer, err := f.users.FindByID(o.CustomerID)
		if err != nil || customer.Email != email {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		matches = append(matches, o)
	}
	return pageOf(matches, page, pageSize), int64(len(matches)), nil
}

func pageOf[T any](all []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
