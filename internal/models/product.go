package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. InStock and FreeDelivery are optional in stored
// documents and default to true; ApplyDefaults fills them on read.
type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice float64            `bson:"originalPrice" json:"originalPrice"`
	Discount      int                `bson:"discount" json:"discount"`
	Image         string             `bson:"image" json:"image"`
	Images        []string           `bson:"images" json:"images"`
	Category      string             `bson:"category" json:"category"`
	Sizes         []string           `bson:"sizes" json:"sizes"`
	Colors        []string           `bson:"colors" json:"colors"`
	Fabric        string             `bson:"fabric" json:"fabric"`
	Rating        float64            `bson:"rating" json:"rating"`
	Reviews       int                `bson:"reviews" json:"reviews"`
	InStock       *bool              `bson:"inStock,omitempty" json:"inStock"`
	FreeDelivery  *bool              `bson:"freeDelivery,omitempty" json:"freeDelivery"`
	DeliveryDays  int                `bson:"deliveryDays" json:"deliveryDays"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"-"`
	UpdatedAt     time.Time          `bson:"updatedAt,omitempty" json:"-"`
}

func (p *Product) ApplyDefaults() {
	if p.InStock == nil {
		p.InStock = Bool(true)
	}
	if p.FreeDelivery == nil {
		p.FreeDelivery = Bool(true)
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Sizes == nil {
		p.Sizes = []string{}
	}
	if p.Colors == nil {
		p.Colors = []string{}
	}
}

// Clone returns a deep copy; slices and optional flags are not shared.
func (p Product) Clone() Product {
	c := p
	c.Images = cloneStrings(p.Images)
	c.Sizes = cloneStrings(p.Sizes)
	c.Colors = cloneStrings(p.Colors)
	if p.InStock != nil {
		c.InStock = Bool(*p.InStock)
	}
	if p.FreeDelivery != nil {
		c.FreeDelivery = Bool(*p.FreeDelivery)
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

func Bool(v bool) *bool { return &v }
