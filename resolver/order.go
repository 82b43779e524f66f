package resolver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cartforge/shopql/auth"
	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
	"github.com/cartforge/shopql/schema"
)

// createdDateFormat pins the order timestamp to RFC 3339 UTC. The format
// is part of the wire contract; callers parse it back with time.RFC3339.
const createdDateFormat = time.RFC3339

// GetAllOrders returns every order for the given userId. It fails with
// Unauthenticated whenever the request carried no valid token, regardless
// of the userId argument.
func (r *Root) GetAllOrders(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	if !auth.IsAuthenticated(ctx) {
		return nil, errs.New(errs.Unauthenticated, "Unauthenticated")
	}
	userID, _ := args["id"].(string)
	return r.Orders.OrdersByUser(ctx, userID)
}

// CreateOrder persists a new order with a server-stamped createdDate,
// publishes it to subscribers, and returns the fixed success marker.
func (r *Root) CreateOrder(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	fields, err := schema.Args(schema.Order, args, true)
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		UserID:      schema.Str(fields, "userId"),
		FirstName:   schema.Str(fields, "firstName"),
		LastName:    schema.Str(fields, "lastName"),
		Address:     schema.Str(fields, "address"),
		City:        schema.Str(fields, "city"),
		Country:     schema.Str(fields, "country"),
		ZipCode:     schema.Str(fields, "zipCode"),
		TotalAmount: schema.F64(fields, "totalAmount"),
		Items:       schema.Str(fields, "items"),
		CreatedDate: time.Now().UTC().Format(createdDateFormat),
	}
	if err := r.Orders.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	r.Events.Publish(o)
	r.Log.Info("order created", zap.String("id", o.ID), zap.String("userId", o.UserID))

	return `{"message":"success"}`, nil
}

// OrderPlaced is the subscription resolver: each subscriber gets a channel
// receiving every order created after it subscribed.
func (r *Root) OrderPlaced(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return r.Events.Subscribe(ctx), nil
}
