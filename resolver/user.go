package resolver

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/cartforge/shopql/auth"
	"github.com/cartforge/shopql/errs"
	"github.com/cartforge/shopql/model"
	"github.com/cartforge/shopql/schema"
)

// authPayload is the serialized result of createUser and loginUser. The
// two differ only in the name of the id key, which the original wire
// contract fixed as "id" on registration and "userId" on login.
type authPayload struct {
	Token   string `json:"token"`
	ID      string `json:"id,omitempty"`
	UserID  string `json:"userId,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// CreateUser registers a new user: rejects duplicate emails, stores only a
// bcrypt hash of the password, and returns a JSON payload with a token
// bound to the new identity.
func (r *Root) CreateUser(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	fields, err := schema.Args(schema.User, args, true)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(schema.Str(fields, "password"))
	if err != nil {
		return nil, errs.Wrap(err, errs.Internal, "hashing password")
	}

	u := &model.User{
		Username: schema.Str(fields, "username"),
		Email:    schema.Str(fields, "email"),
		Password: hash,
		IsAdmin:  schema.B(fields, "isAdmin"),
	}
	if err := r.Users.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	token, err := r.Tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, errs.Wrap(err, errs.Internal, "issuing token")
	}
	r.Log.Info("user registered", zap.String("id", u.ID), zap.String("username", u.Username))

	return marshalPayload(authPayload{Token: token, ID: u.ID, IsAdmin: u.IsAdmin})
}

// LoginUser checks the credentials and returns a JSON payload with a fresh
// token. Unknown emails and bad passwords fail with distinct codes.
func (r *Root) LoginUser(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	email, _ := args["email"].(string)
	password, _ := args["password"].(string)

	u, err := r.Users.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.Password, password) {
		return nil, errs.New(errs.InvalidCredential, "invalid password")
	}

	token, err := r.Tokens.Issue(u.ID, u.IsAdmin)
	if err != nil {
		return nil, errs.Wrap(err, errs.Internal, "issuing token")
	}
	return marshalPayload(authPayload{Token: token, UserID: u.ID, IsAdmin: u.IsAdmin})
}

func marshalPayload(p authPayload) (interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, errs.Wrap(err, errs.Internal, "encoding payload")
	}
	return string(raw), nil
}
