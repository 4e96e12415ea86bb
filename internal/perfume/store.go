package perfume

import (
	"context"
	"fmt"
)

// Perfume is a single catalog entry. Names are not unique.
type Perfume struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity string `json:"quantity"`
	Price    int    `json:"price"`
}

func (p Perfume) String() string {
	return fmt.Sprintf("Perfume(name=%s, type=%s, quantity=%s, price=%d)", p.Name, p.Type, p.Quantity, p.Price)
}

// Store holds the catalog. Lookups report absence through the boolean
// result instead of an error.
type Store interface {
	List(ctx context.Context) ([]Perfume, bool)
	FindByType(ctx context.Context, typ string) ([]Perfume, bool)
	FindByName(ctx context.Context, name string) ([]Perfume, bool)
	Create(ctx context.Context, p Perfume) Perfume
	Update(ctx context.Context, name string, p Perfume) (Perfume, bool)
	Delete(ctx context.Context, name string) (string, bool)

	Ping(ctx context.Context) error
	Len() int
}
