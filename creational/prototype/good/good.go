// Package good lets a product clone itself.
//
// Prototype offers both flavours:
//   - ShallowClone copies the struct, so the clone shares its TagList
//   - DeepClone round-trips the product through JSON, so nothing is shared
//
// Neither repeats the expensive tag loading NewProduct does.
package good

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

// Prototype is something that can copy itself.
type Prototype[T any] interface {
	ShallowClone() T
	DeepClone() (T, error)
}

type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t Tag) String() string { return t.Name + " (" + t.Description + ")" }

type TagList struct {
	Items []Tag `json:"items"`
}

func (l *TagList) Add(t Tag) { l.Items = append(l.Items, t) }

type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Tags  *TagList        `json:"tags"`
}

var _ Prototype[*Product] = (*Product)(nil)

// NewProduct loads the default tags, which stands in for a slow lookup.
func NewProduct(name string, price decimal.Decimal) *Product {
	p := &Product{Name: name, Price: price, Tags: &TagList{}}
	p.Tags.Add(Tag{Name: "Tech", Description: "Technology related"})
	p.Tags.Add(Tag{Name: "Portable", Description: "Easy to carry"})
	return p
}

// ShallowClone copies p; the clone shares p's tags.
func (p *Product) ShallowClone() *Product {
	c := *p
	return &c
}

// DeepClone copies p and everything it references.
func (p *Product) DeepClone() (*Product, error) {
	api := jsoniter.ConfigCompatibleWithStandardLibrary
	data, err := api.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("prototype: encode product: %w", err)
	}
	var c Product
	if err := api.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("prototype: decode product: %w", err)
	}
	return &c, nil
}

func (p *Product) String() string {
	var tags []string
	if p.Tags != nil {
		for _, t := range p.Tags.Items {
			tags = append(tags, t.String())
		}
	}
	return fmt.Sprintf("Product: %s, Price: %s, Tags: %s", p.Name, p.Price, strings.Join(tags, ", "))
}

// Run clones a product both ways and shows which changes leak back.
func Run(_ context.Context, env demo.Env) error {
	original := NewProduct("Laptop", decimal.RequireFromString("999.99"))

	shallowClone := original.ShallowClone()
	shallowClone.Tags.Add(Tag{Name: "Refurbished", Description: "Like new"})

	deepClone, err := original.DeepClone()
	if err != nil {
		return err
	}
	deepClone.Tags.Add(Tag{Name: "New", Description: "Perfect"})

	fmt.Fprintf(env.Out, "Original Product: %s\n", original)
	fmt.Fprintf(env.Out, "Shallow Clone Product: %s\n", shallowClone)
	fmt.Fprintf(env.Out, "Deep Clone Product: %s\n", deepClone)
	return nil
}
