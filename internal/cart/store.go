package cart

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"greencross/internal/domain"
)

// StorageKey is where the serialized line list lives.
const StorageKey = "cart"

type Catalog interface {
	FindByID(id string) (domain.Product, bool)
}

// Storage is a string key/value store. Get returns "" for a key that was never set.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type DetailedItem struct {
	Product   domain.Product
	Quantity  int
	LineTotal decimal.Decimal
}

// Store holds the cart lines and the two panel flags. Derived values are
// recomputed from the catalog on every read.
type Store struct {
	mu           sync.Mutex
	lines        []Line
	cartOpen     bool
	checkoutOpen bool

	catalog Catalog
	storage Storage
	logger  *zap.Logger
}

func NewStore(catalog Catalog, storage Storage, logger *zap.Logger) *Store {
	s := &Store{
		catalog: catalog,
		storage: storage,
		logger:  logger,
	}
	s.lines = s.load()
	return s
}

func (s *Store) AddItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, Line{ProductID: productID, Quantity: 1})
	}
	s.cartOpen = true
	s.persist()
}

func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(productID)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(productID)
		return
	}

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.lines[i].Quantity = quantity
	s.persist()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// DetailedItems resolves each line against the catalog. Lines whose product
// no longer exists are left out.
func (s *Store) DetailedItems() []DetailedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.detailed()
}

func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return sum(s.detailed())
}

// Snapshot returns the detailed items and their subtotal read under one lock.
func (s *Store) Snapshot() ([]DetailedItem, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.detailed()
	return items, sum(items)
}

// IsEmpty reports whether no line resolves to a catalog product.
func (s *Store) IsEmpty() bool {
	return len(s.DetailedItems()) == 0
}

// Count is the total number of units across resolvable lines.
func (s *Store) Count() int {
	n := 0
	for _, item := range s.DetailedItems() {
		n += item.Quantity
	}
	return n
}

func (s *Store) IsCartOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartOpen
}

func (s *Store) SetCartOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = open
}

func (s *Store) IsCheckoutOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutOpen
}

func (s *Store) SetCheckoutOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutOpen = open
}

func (s *Store) indexOf(productID string) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) remove(productID string) {
	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist()
}

func (s *Store) detailed() []DetailedItem {
	items := make([]DetailedItem, 0, len(s.lines))
	for _, l := range s.lines {
		p, ok := s.catalog.FindByID(l.ProductID)
		if !ok {
			continue
		}
		items = append(items, DetailedItem{
			Product:   p,
			Quantity:  l.Quantity,
			LineTotal: decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return items
}

func sum(items []DetailedItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return total
}

// persist must be called with mu held. Failures are not surfaced.
func (s *Store) persist() {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		s.logger.Debug("encoding cart", zap.Error(err))
		return
	}
	if err := s.storage.Set(StorageKey, string(data)); err != nil {
		s.logger.Debug("saving cart", zap.Error(err))
	}
}

func (s *Store) load() []Line {
	raw, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Debug("reading saved cart", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}

	var saved []Line
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Debug("decoding saved cart", zap.Error(err))
		return nil
	}

	lines := make([]Line, 0, len(saved))
	index := make(map[string]int, len(saved))
	for _, l := range saved {
		if l.Quantity <= 0 || l.ProductID == "" {
			continue
		}
		if i, dup := index[l.ProductID]; dup {
			lines[i].Quantity += l.Quantity
			continue
		}
		index[l.ProductID] = len(lines)
		lines = append(lines, l)
	}
	return lines
}
