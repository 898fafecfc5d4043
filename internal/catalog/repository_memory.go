package catalog

import "context"

// InMemoryRepository backs tests and local demos with a fixed catalog.
type InMemoryRepository struct {
	Items     []Item
	Details   map[int]*ItemDetails
	Questions map[int][]Question
	Discounts map[int]float64
	Users     map[int]string
	Stores    map[int]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		Details:   make(map[int]*ItemDetails),
		Questions: make(map[int][]Question),
		Discounts: make(map[int]float64),
		Users:     make(map[int]string),
		Stores:    make(map[int]string),
	}
}

func (r *InMemoryRepository) StoreMenu(_ context.Context, storeID int) ([]Item, error) {
	var items []Item
	for _, it := range r.Items {
		if it.StoreID == storeID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *InMemoryRepository) ItemDetails(_ context.Context, itemID int) (*ItemDetails, error) {
	if d, ok := r.Details[itemID]; ok {
		return d, nil
	}
	return &ItemDetails{}, nil
}

func (r *InMemoryRepository) ItemQuestions(_ context.Context, itemID int) ([]Question, error) {
	return r.Questions[itemID], nil
}

func (r *InMemoryRepository) Discount(_ context.Context, itemID int) (float64, error) {
	return r.Discounts[itemID], nil
}

func (r *InMemoryRepository) UserName(_ context.Context, userID int) (string, error) {
	if name, ok := r.Users[userID]; ok && name != "" {
		return name, nil
	}
	return "Customer", nil
}

func (r *InMemoryRepository) StoreName(_ context.Context, storeID int) (string, error) {
	if title, ok := r.Stores[storeID]; ok && title != "" {
		return title, nil
	}
	return "Store", nil
}
