// internal/platform/orders.go
package platform

import "context"

const registerPaymentMethodMutation = `
mutation RegisterPaymentMethod($input: RegisterPaymentMethod!) {
  registerPaymentMethod(input: $input) {
    paymentMethodId
    customerId
    paymentType
    isDefault
  }
}`

const registerOrderMutation = `
mutation RegisterOrder($input: RegisterOrder!) {
  registerOrder(input: $input) {
    orderId
    customerId
    orderDate
    totalAmount
    status
    shippingAddressId
    paymentMethodId
    discountId
  }
}`

const orderItemsQuery = `
query OrderItems($orderId: Int!) {
  orderItems(orderId: $orderId) {
    productId
    name
    description
    basePrice
    categoryId
    supplierId
    stockQuantity
    mediaPaths
    baseProductId
  }
}`

const ordersQuery = `
query {
  orders {
    orderId
    customerId
    orderDate
    totalAmount
    status
    shippingAddressId
    paymentMethodId
    discountId
  }
}`

// RegisterPaymentMethod registers a new payment method and returns it with
// the platform-assigned id
func (c *Client) RegisterPaymentMethod(ctx context.Context, input PaymentMethodInput) (*PaymentMethod, error) {
	var out struct {
		RegisterPaymentMethod PaymentMethod `json:"registerPaymentMethod"`
	}
	err := c.do(ctx, registerPaymentMethodMutation, map[string]interface{}{"input": input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterPaymentMethod, nil
}

// RegisterOrder submits one order and returns the registered order
func (c *Client) RegisterOrder(ctx context.Context, input RegisterOrderInput) (*Order, error) {
	var out struct {
		RegisterOrder Order `json:"registerOrder"`
	}
	err := c.do(ctx, registerOrderMutation, map[string]interface{}{"input": input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterOrder, nil
}

// Orders lists the authenticated customer's orders
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var out struct {
		Orders []Order `json:"orders"`
	}
	if err := c.do(ctx, ordersQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// OrderItems lists the products that make up one of the customer's orders
func (c *Client) OrderItems(ctx context.Context, orderID int) ([]Product, error) {
	var out struct {
		OrderItems []Product `json:"orderItems"`
	}
	err := c.do(ctx, orderItemsQuery, map[string]interface{}{"orderId": orderID}, &out)
	if err != nil {
		return nil, err
	}
	return out.OrderItems, nil
}
