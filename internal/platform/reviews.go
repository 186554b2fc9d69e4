// internal/platform/reviews.go
package platform

import "context"

const reviewsForProductQuery = `
query ReviewsForProduct($productId: Int!, $paginator: OrderAndPagination!) {
  reviewsForProduct(productId: $productId, paginator: $paginator) {
    reviews {
      reviewId
      customerId
      productId
      rating
      reviewText
      reviewDate
      mediaPaths
    }
    pageInfo {
      totalPages
      totalItems
    }
  }
}`

const registerReviewMutation = `
mutation RegisterReview($productId: Int!, $rating: Int, $reviewText: String, $reviewDate: DateTime, $mediaPaths: [String!]) {
  registerReview(
    input: {productId: $productId, rating: $rating, reviewText: $reviewText, reviewDate: $reviewDate, mediaPaths: $mediaPaths}
  ) {
    reviewId
    customerId
    productId
    rating
    reviewText
    reviewDate
    mediaPaths
  }
}`

// Review is a customer product review as the platform reports it
type Review struct {
	ReviewID   int      `json:"reviewId"`
	CustomerID int      `json:"customerId"`
	ProductID  int      `json:"productId"`
	Rating     int      `json:"rating"`
	ReviewText string   `json:"reviewText"`
	ReviewDate string   `json:"reviewDate"`
	MediaPaths []string `json:"mediaPaths"`
}

// ReviewPage is one page of reviews plus its pagination metadata
type ReviewPage struct {
	Reviews  []Review `json:"reviews"`
	PageInfo PageInfo `json:"pageInfo"`
}

// ReviewInput is the payload for registering a product review
type ReviewInput struct {
	ProductID  int      `json:"productId" binding:"required"`
	Rating     int      `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string   `json:"reviewText"`
	ReviewDate string   `json:"reviewDate"`
	MediaPaths []string `json:"mediaPaths,omitempty"`
}

// ReviewsForProduct fetches one page of a product's reviews
func (c *Client) ReviewsForProduct(ctx context.Context, productID int, paginator Paginator) (*ReviewPage, error) {
	var out struct {
		ReviewsForProduct ReviewPage `json:"reviewsForProduct"`
	}
	err := c.do(ctx, reviewsForProductQuery, map[string]interface{}{
		"productId": productID,
		"paginator": paginator,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.ReviewsForProduct, nil
}

// RegisterReview registers a review for a product the customer ordered
func (c *Client) RegisterReview(ctx context.Context, input ReviewInput) (*Review, error) {
	var out struct {
		RegisterReview Review `json:"registerReview"`
	}
	err := c.do(ctx, registerReviewMutation, map[string]interface{}{
		"productId":  input.ProductID,
		"rating":     input.Rating,
		"reviewText": input.ReviewText,
		"reviewDate": input.ReviewDate,
		"mediaPaths": input.MediaPaths,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.RegisterReview, nil
}
