// internal/platform/auth.go
package platform

import "context"

const loginMutation = `
mutation Login($email: String!, $password: String!) {
  login(loginDetails: { email: $email, password: $password }) {
    token
    userRole
  }
}`

const registerUserMutation = `
mutation RegisterUser($input: RegisterUser!) {
  registerUser(input: $input)
}`

const registerCustomerMutation = `
mutation RegisterCustomer($input: RegisterCustomer!) {
  registerCustomer(input: $input) {
    customerId
    firstName
    lastName
  }
}`

const registerSupplierMutation = `
mutation RegisterSupplier($input: RegisterSupplier!) {
  registerSupplier(input: $input) {
    supplierId
    name
  }
}`

const customerProfileQuery = `
query GetCustomerProfile {
  customerProfile {
    customerId
    firstName
    lastName
    userId
  }
}`

// Login exchanges credentials for a session token and role
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out struct {
		Login LoginResult `json:"login"`
	}
	err := c.do(ctx, loginMutation, map[string]interface{}{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Login, nil
}

// RegisterUserInput is the payload for creating a user account
type RegisterUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=customer supplier"`
}

// RegisterUser creates a platform user account
func (c *Client) RegisterUser(ctx context.Context, input RegisterUserInput) error {
	return c.do(ctx, registerUserMutation, map[string]interface{}{"input": input}, nil)
}

// RegisterCustomerInput is the payload for creating a customer profile
type RegisterCustomerInput struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// RegisterCustomer creates the customer profile for the authenticated user
func (c *Client) RegisterCustomer(ctx context.Context, input RegisterCustomerInput) (*CustomerProfile, error) {
	var out struct {
		RegisterCustomer CustomerProfile `json:"registerCustomer"`
	}
	err := c.do(ctx, registerCustomerMutation, map[string]interface{}{"input": input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterCustomer, nil
}

// RegisterSupplierInput is the payload for creating a supplier profile
type RegisterSupplierInput struct {
	Name         string `json:"name" binding:"required"`
	ContactPhone string `json:"contactPhone"`
}

// RegisterSupplier creates the supplier profile for the authenticated user
func (c *Client) RegisterSupplier(ctx context.Context, input RegisterSupplierInput) (*SupplierProfile, error) {
	var out struct {
		RegisterSupplier SupplierProfile `json:"registerSupplier"`
	}
	err := c.do(ctx, registerSupplierMutation, map[string]interface{}{"input": input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterSupplier, nil
}

// CustomerProfile fetches the authenticated user's customer profile
func (c *Client) CustomerProfile(ctx context.Context) (*CustomerProfile, error) {
	var out struct {
		CustomerProfile CustomerProfile `json:"customerProfile"`
	}
	if err := c.do(ctx, customerProfileQuery, nil, &out); err != nil {
		return nil, err
	}
	return &out.CustomerProfile, nil
}
