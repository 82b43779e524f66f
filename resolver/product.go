package resolver

import (
	"context"

	"go.uber.org/zap"

	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
	"github.com/cartforge/shopql/schema"
)

// GetAllProduct returns the full product list. The optional id argument is
// accepted for wire compatibility and ignored.
func (r *Root) GetAllProduct(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return r.Products.Products(ctx)
}

// GetProduct returns the product with the given id, or null. Unknown and
// malformed ids both resolve to null rather than an error.
func (r *Root) GetProduct(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	id, _ := args["id"].(string)
	p, err := r.Products.Product(ctx, id)
	if err != nil {
		if errs.Is(err, errs.NotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// CreateProduct persists a new product unconditionally and returns the
// created record with its assigned id. Unset fields persist as zero values.
func (r *Root) CreateProduct(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	fields, err := schema.Args(schema.Product, args, false)
	if err != nil {
		return nil, err
	}
	p := productFromArgs(fields)
	if err := r.Products.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	r.Log.Info("product created", zap.String("id", p.ID), zap.String("title", p.Title))
	return p, nil
}

// UpdateProduct patches the supplied fields on the record and returns the
// post-update state. Missing ids fail with NotFound.
func (r *Root) UpdateProduct(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	id, _ := args["id"].(string)
	fields, err := schema.Args(schema.Product, args, false)
	if err != nil {
		return nil, err
	}
	return r.Products.UpdateProduct(ctx, id, func(p *model.Product) {
		applyProductArgs(p, fields)
	})
}

// DeleteProduct removes the record and returns its final state. Missing
// ids fail with NotFound.
func (r *Root) DeleteProduct(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	id, _ := args["id"].(string)
	p, err := r.Products.DeleteProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Log.Info("product deleted", zap.String("id", id))
	return p, nil
}

func productFromArgs(fields map[string]interface{}) *model.Product {
	p := &model.Product{}
	applyProductArgs(p, fields)
	return p
}

// applyProductArgs copies only the keys present in fields, so updates do
// not clear fields the client never mentioned.
func applyProductArgs(p *model.Product, fields map[string]interface{}) {
	for name, v := range fields {
		switch name {
		case "brand":
			p.Brand = v.(string)
		case "category":
			p.Category = v.(string)
		case "description":
			p.Description = v.(string)
		case "discountPercentage":
			p.DiscountPercentage = v.(float64)
		case "images":
			p.Images = v.(string)
		case "price":
			p.Price = v.(float64)
		case "rating":
			p.Rating = v.(float64)
		case "stock":
			p.Stock = v.(int)
		case "thumbnail":
			p.Thumbnail = v.(string)
		case "title":
			p.Title = v.(string)
		}
	}
}
