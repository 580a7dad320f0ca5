// Package bad copies products by hand at the call site.
//
// The caller has to know which fields are references and how to copy each
// one, and every copy goes through the constructor's expensive tag loading
// before its tags are overwritten anyway.
package bad

import (
	"context"
	"fmt"
	"strings"

	"github.com/sghaida/patterns/internal/demo"
	"github.com/shopspring/decimal"
)

type Tag struct {
	Name        string
	Description string
}

func (t Tag) String() string { return t.Name + " (" + t.Description + ")" }

// TagList is shared by reference between products that point at it.
type TagList struct {
	Items []Tag
}

func (l *TagList) Add(t Tag) { l.Items = append(l.Items, t) }

type Product struct {
	Name  string
	Price decimal.Decimal
	Tags  *TagList
}

// NewProduct loads the default tags, which stands in for a slow lookup.
func NewProduct(name string, price decimal.Decimal) *Product {
	p := &Product{Name: name, Price: price, Tags: &TagList{}}
	p.loadTagsFromDatabase()
	return p
}

func (p *Product) loadTagsFromDatabase() {
	p.Tags.Add(Tag{Name: "Tech", Description: "Technology related"})
	p.Tags.Add(Tag{Name: "Portable", Description: "Easy to carry"})
}

func (p *Product) String() string {
	tags := make([]string, 0, len(p.Tags.Items))
	for _, t := range p.Tags.Items {
		tags = append(tags, t.String())
	}
	return fmt.Sprintf("Product: %s, Price: %s, Tags: %s", p.Name, p.Price, strings.Join(tags, ", "))
}

// Run makes a shallow and a deep copy by hand and prints all three.
func Run(_ context.Context, env demo.Env) error {
	original := NewProduct("Laptop", decimal.RequireFromString("999.99"))
	original.Tags.Add(Tag{Name: "Sale", Description: "20% off"})

	shallowClone := NewProduct(original.Name, original.Price)
	shallowClone.Tags = original.Tags
	shallowClone.Tags.Add(Tag{Name: "Warranty", Description: "2 years"})

	deepClone := NewProduct(original.Name, original.Price)
	deepClone.Tags = &TagList{Items: append([]Tag(nil), original.Tags.Items...)}
	deepClone.Tags.Add(Tag{Name: "New", Description: "Perfect"})

	fmt.Fprintf(env.Out, "Original Product: %s\n", original)
	fmt.Fprintf(env.Out, "Shallow Clone Product: %s\n", shallowClone)
	fmt.Fprintf(env.Out, "Deep Clone Product: %s\n", deepClone)
	return nil
}
