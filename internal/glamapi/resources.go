package glamapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/me/glamgiant/pkg/model"
)

// --- Auth ---

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", model.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/users/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- Products ---

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	err := c.do(ctx, http.MethodGet, "/makeup-products", nil, &out)
	return out, err
}

func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodGet, "/makeup-products/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodPost, "/makeup-products", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	var p model.Product
	if err := c.do(ctx, http.MethodPatch, "/makeup-products/"+url.PathEscape(id), in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/makeup-products/"+url.PathEscape(id), nil, nil)
}

// --- Users ---

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.do(ctx, http.MethodGet, "/users", nil, &out)
	return out, err
}

// GetUser fetches one user. It satisfies identity.UserLookup.
func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodPost, "/users", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in model.UserUpdate) (*model.User, error) {
	var u model.User
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

// --- Orders ---

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	err := c.do(ctx, http.MethodGet, "/orders", nil, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, in model.OrderInput) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, in model.OrderInput) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodPatch, "/orders/"+url.PathEscape(id), in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), nil, nil)
}

// --- Product tests ---

func (c *Client) ListProductTests(ctx context.Context) ([]model.ProductTest, error) {
	var out []model.ProductTest
	err := c.do(ctx, http.MethodGet, "/products-tests", nil, &out)
	return out, err
}

func (c *Client) GetProductTest(ctx context.Context, id string) (*model.ProductTest, error) {
	var pt model.ProductTest
	if err := c.do(ctx, http.MethodGet, "/products-tests/"+url.PathEscape(id), nil, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (c *Client) CreateProductTest(ctx context.Context, in model.ProductTestInput) (*model.ProductTest, error) {
	var pt model.ProductTest
	if err := c.do(ctx, http.MethodPost, "/products-tests", in, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (c *Client) UpdateProductTest(ctx context.Context, id string, in model.ProductTestInput) (*model.ProductTest, error) {
	var pt model.ProductTest
	if err := c.do(ctx, http.MethodPatch, "/products-tests/"+url.PathEscape(id), in, &pt); err != nil {
		return nil, err
	}
	return &pt, nil
}

func (c *Client) DeleteProductTest(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products-tests/"+url.PathEscape(id), nil, nil)
}

// --- Purchases ---

// ListMyPurchases returns the signed-in client's purchase history.
func (c *Client) ListMyPurchases(ctx context.Context) ([]model.Purchase, error) {
	var out []model.Purchase
	err := c.do(ctx, http.MethodGet, "/user-purchases/mine", nil, &out)
	return out, err
}

// CreatePurchase checks out a cart.
func (c *Client) CreatePurchase(ctx context.Context, req model.PurchaseRequest) (*model.Purchase, error) {
	var p model.Purchase
	if err := c.do(ctx, http.MethodPost, "/user-purchases", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
