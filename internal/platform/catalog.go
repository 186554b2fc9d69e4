// internal/platform/catalog.go
package platform

import "context"

const productFields = `
products {
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
pageInfo {
  totalPages
  totalItems
}`

const productsQuery = `
query Products($paginator: OrderAndPagination!) {
  productsWithId(paginator: $paginator) {` + productFields + `
  }
}`

const productByIDQuery = `
query ProductsWithId($productId: Int!, $paginator: OrderAndPagination!) {
  productsWithId(productId: $productId, paginator: $paginator) {` + productFields + `
  }
}`

const productsByCategoryQuery = `
query ProductsByCategory($categoryId: Int!, $paginator: OrderAndPagination!) {
  productsWithId(categoryId: $categoryId, paginator: $paginator) {` + productFields + `
  }
}`

const categoriesQuery = `
query GetCategories {
  categories {
    categoryId
    name
    parentCategoryId
  }
}`

// Products fetches one page of the full catalog
func (c *Client) Products(ctx context.Context, paginator Paginator) (*ProductPage, error) {
	return c.productPage(ctx, productsQuery, map[string]interface{}{
		"paginator": paginator,
	})
}

// ProductByID fetches a single product
func (c *Client) ProductByID(ctx context.Context, productID int) (*Product, error) {
	page, err := c.productPage(ctx, productByIDQuery, map[string]interface{}{
		"productId": productID,
		"paginator": DefaultPaginator(1, 1),
	})
	if err != nil {
		return nil, err
	}
	if len(page.Products) == 0 {
		return nil, &Error{Message: "product not found"}
	}
	return &page.Products[0], nil
}

// ProductsByCategory fetches one page of products within a category
func (c *Client) ProductsByCategory(ctx context.Context, categoryID int, paginator Paginator) (*ProductPage, error) {
	return c.productPage(ctx, productsByCategoryQuery, map[string]interface{}{
		"categoryId": categoryID,
		"paginator":  paginator,
	})
}

// Categories lists the catalog categories
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.do(ctx, categoriesQuery, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) productPage(ctx context.Context, query string, variables map[string]interface{}) (*ProductPage, error) {
	var out struct {
		ProductsWithID ProductPage `json:"productsWithId"`
	}
	if err := c.do(ctx, query, variables, &out); err != nil {
		return nil, err
	}
	return &out.ProductsWithID, nil
}
