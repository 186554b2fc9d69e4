// internal/platform/supplier.go
package platform

import "context"

const supplierProfileQuery = `
query GetSupplierProfile {
  supplierProfile {
    supplierId
    name
    contactPhone
    userId
  }
}`

const supplierProductsQuery = `
query ProductsWithId($supplierId: Int!, $paginator: OrderAndPagination!) {
  productsWithId(supplierId: $supplierId, paginator: $paginator) {` + productFields + `
  }
}`

const registerProductMutation = `
mutation RegisterProduct($input: RegisterProduct!) {
  registerProduct(input: $input) {
    productId
    name
    description
    basePrice
    categoryId
    supplierId
    stockQuantity
    baseProductId
    mediaPaths
  }
}`

const updateProductMutation = `
mutation UpdateProduct($productId: Int!, $input: RegisterProduct!) {
  updateProduct(productId: $productId, input: $input) {
    productId
    name
    description
    basePrice
    categoryId
    supplierId
    stockQuantity
    baseProductId
    mediaPaths
  }
}`

const deleteProductMutation = `
mutation DeleteProduct($productId: Int!) {
  deleteProduct(productId: $productId)
}`

// SupplierProfile fetches the authenticated user's supplier profile
func (c *Client) SupplierProfile(ctx context.Context) (*SupplierProfile, error) {
	var out struct {
		SupplierProfile SupplierProfile `json:"supplierProfile"`
	}
	if err := c.do(ctx, supplierProfileQuery, nil, &out); err != nil {
		return nil, err
	}
	return &out.SupplierProfile, nil
}

// SupplierProducts fetches one page of a supplier's products
func (c *Client) SupplierProducts(ctx context.Context, supplierID int, paginator Paginator) (*ProductPage, error) {
	return c.productPage(ctx, supplierProductsQuery, map[string]interface{}{
		"supplierId": supplierID,
		"paginator":  paginator,
	})
}

// RegisterProduct creates a new product for the supplier
func (c *Client) RegisterProduct(ctx context.Context, input ProductInput) (*Product, error) {
	var out struct {
		RegisterProduct Product `json:"registerProduct"`
	}
	err := c.do(ctx, registerProductMutation, map[string]interface{}{"input": input}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterProduct, nil
}

// UpdateProduct replaces an existing product's details
func (c *Client) UpdateProduct(ctx context.Context, productID int, input ProductInput) (*Product, error) {
	var out struct {
		UpdateProduct Product `json:"updateProduct"`
	}
	err := c.do(ctx, updateProductMutation, map[string]interface{}{
		"productId": productID,
		"input":     input,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.UpdateProduct, nil
}

// DeleteProduct removes a supplier product
func (c *Client) DeleteProduct(ctx context.Context, productID int) error {
	return c.do(ctx, deleteProductMutation, map[string]interface{}{"productId": productID}, nil)
}
