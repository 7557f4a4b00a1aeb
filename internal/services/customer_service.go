package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"tailor_shop/internal/models"
	"tailor_shop/internal/repository"
)

// DuplicateCustomerError reports the record a save collided with. The
// caller aborts the write and points the user at the existing customer;
// duplicates are never merged or overwritten.
type DuplicateCustomerError struct {
	Existing *models.Customer
}

func (e *DuplicateCustomerError) Error() string {
	return fmt.Sprintf("customer already exists (id=%d)", e.Existing.ID)
}

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	UpdateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	ListCustomers() ([]models.Customer, error)
	SearchCustomers(query string) ([]models.Customer, error)
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	cache        ListCache
	cacheTTL     time.Duration
}

func NewCustomerService(customerRepo repository.CustomerRepository, cache ListCache, cacheTTL time.Duration) CustomerService {
	return &customerService{customerRepo: customerRepo, cache: cache, cacheTTL: cacheTTL}
}

// NormalizePhone strips everything that is not a digit. Stored phones are
// digits only, so duplicate comparison is exact.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FindDuplicate returns the first existing customer equal to the
// candidate on all five identity fields: name (case-insensitive), phone,
// and the three measurement fields. A record whose id equals excludeID is
// skipped, so editing a customer never flags it as its own duplicate.
// Any single differing field makes two customers distinct; there is no
// partial-similarity scoring.
func FindDuplicate(candidate *models.Customer, existing []models.Customer, excludeID uint) *models.Customer {
	for i := range existing {
		e := &existing[i]
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if strings.EqualFold(e.Name, candidate.Name) &&
			e.Phone == candidate.Phone &&
			textEqual(e.ShirtMeasurements, candidate.ShirtMeasurements) &&
			textEqual(e.PantsMeasurements, candidate.PantsMeasurements) &&
			textEqual(e.OtherMeasurements, candidate.OtherMeasurements) {
			return e
		}
	}
	return nil
}

func textEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	customer.Phone = NormalizePhone(customer.Phone)

	if err := s.checkDuplicate(customer, 0); err != nil {
		return err
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	s.invalidateCustomerList()
	return nil
}

func (s *customerService) UpdateCustomer(customer *models.Customer) error {
	customer.Phone = NormalizePhone(customer.Phone)

	if err := s.checkDuplicate(customer, customer.ID); err != nil {
		return err
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}
	s.invalidateCustomerList()
	return nil
}

// checkDuplicate always reads the full current set from the database, not
// the list cache. The cache can be a few minutes stale; the duplicate
// guard must not be.
func (s *customerService) checkDuplicate(candidate *models.Customer, excludeID uint) error {
	existing, err := s.customerRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to load customers for duplicate check: %w", err)
	}
	if dup := FindDuplicate(candidate, existing, excludeID); dup != nil {
		return &DuplicateCustomerError{Existing: dup}
	}
	return nil
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) ListCustomers() ([]models.Customer, error) {
	if customers, err := s.cache.GetCustomerList(); err == nil {
		return customers, nil
	}

	customers, err := s.customerRepo.GetAll()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetCustomerList(customers, s.cacheTTL); err != nil {
		// Cache trouble never fails a read.
		log.Printf("Warning: failed to cache customer list: %v", err)
	}
	return customers, nil
}

// SearchCustomers filters the list by name or phone substring, matching
// the customer search box.
func (s *customerService) SearchCustomers(query string) ([]models.Customer, error) {
	customers, err := s.ListCustomers()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return customers, nil
	}

	lowered := strings.ToLower(query)
	var matched []models.Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Name), lowered) || strings.Contains(c.Phone, query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *customerService) DeleteCustomer(id uint) error {
	if err := s.customerRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	s.invalidateCustomerList()
	return nil
}

// invalidateCustomerList drops the cached customer list after a
// successful write. A failed invalidation serves a stale list for up to
// the cache TTL, so it is logged, but the committed write stands.
func (s *customerService) invalidateCustomerList() {
	if err := s.cache.InvalidateCustomerList(); err != nil {
		log.Printf("Warning: failed to invalidate customer list cache: %v", err)
	}
}
