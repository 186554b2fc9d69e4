package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-gateway/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{
		Platform: config.PlatformConfig{
			Endpoint: server.URL,
			Timeout:  5 * time.Second,
		},
	}
	return NewClient(cfg, logger)
}

func TestClient_DecodesData(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "categories")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"categories":[{"categoryId":1,"name":"Lighting"}]}}`))
	})

	categories, err := client.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, 1, categories[0].CategoryID)
	assert.Equal(t, "Lighting", categories[0].Name)
}

func TestClient_RemoteErrorPreservedVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":null,"errors":[{"message":"insufficient stock"},{"message":"secondary"}]}`))
	})

	_, err := client.Categories(context.Background())
	require.Error(t, err)

	var platformErr *Error
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, "insufficient stock", platformErr.Message)
	assert.Equal(t, "insufficient stock", err.Error())
}

func TestClient_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"addresses":[]}}`))
	})

	ctx := WithToken(context.Background(), "session-token")
	_, err := client.Addresses(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer session-token", gotAuth)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":{"categories":[]}}`))
	})

	_, err := client.Categories(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_Non200Status(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_ProductByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 7, req.Variables["productId"])

		w.Write([]byte(`{"data":{"productsWithId":{
			"products":[{"productId":7,"name":"Lamp","basePrice":"49.99","mediaPaths":["lamp.png"]}],
			"pageInfo":{"totalPages":1,"totalItems":1}}}}`))
	})

	product, err := client.ProductByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, product.ProductID)
	assert.Equal(t, "Lamp", product.Name)
	assert.Equal(t, "49.99", product.BasePrice)
}

func TestClient_ProductByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"productsWithId":{"products":[],"pageInfo":{"totalPages":0,"totalItems":0}}}}`))
	})

	_, err := client.ProductByID(context.Background(), 999)
	var platformErr *Error
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, "product not found", platformErr.Message)
}

func TestClient_RegisterOrderVariables(t *testing.T) {
	var submitted map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		submitted = req.Variables

		w.Write([]byte(`{"data":{"registerOrder":{"orderId":42,"status":"PENDING"}}}`))
	})

	order, err := client.RegisterOrder(context.Background(), RegisterOrderInput{
		ShippingAddressID: 7,
		PaymentMethodID:   3,
		OrderItems: []OrderItem{
			{ProductID: 10, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 42, order.OrderID)

	input, ok := submitted["input"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 7, input["shippingAddressId"])
	assert.EqualValues(t, 3, input["paymentMethodId"])

	items, ok := input["orderItems"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.EqualValues(t, 10, item["productId"])
	assert.EqualValues(t, 2, item["quantity"])

	// Prices never travel with an order submission
	_, hasPrice := item["price"]
	assert.False(t, hasPrice)
}

func TestClient_OrderItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 42, req.Variables["orderId"])

		w.Write([]byte(`{"data":{"orderItems":[
			{"productId":10,"name":"Lamp","basePrice":"49.99"},
			{"productId":20,"name":"Chair","basePrice":"120.00"}]}}`))
	})

	items, err := client.OrderItems(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 10, items[0].ProductID)
	assert.Equal(t, "Chair", items[1].Name)
}

func TestClient_ReviewsForProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 7, req.Variables["productId"])

		w.Write([]byte(`{"data":{"reviewsForProduct":{
			"reviews":[{"reviewId":3,"customerId":5,"productId":7,"rating":4,"reviewText":"solid lamp"}],
			"pageInfo":{"totalPages":1,"totalItems":1}}}}`))
	})

	page, err := client.ReviewsForProduct(context.Background(), 7, DefaultPaginator(1, 20))
	require.NoError(t, err)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, 3, page.Reviews[0].ReviewID)
	assert.Equal(t, 4, page.Reviews[0].Rating)
	assert.Equal(t, "solid lamp", page.Reviews[0].ReviewText)
	assert.Equal(t, 1, page.PageInfo.TotalItems)
}

func TestClient_RegisterReviewVariables(t *testing.T) {
	var submitted map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		submitted = req.Variables

		w.Write([]byte(`{"data":{"registerReview":{"reviewId":9,"productId":7,"rating":5}}}`))
	})

	review, err := client.RegisterReview(context.Background(), ReviewInput{
		ProductID:  7,
		Rating:     5,
		ReviewText: "great",
		ReviewDate: "2026-08-28T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, review.ReviewID)

	assert.EqualValues(t, 7, submitted["productId"])
	assert.EqualValues(t, 5, submitted["rating"])
	assert.Equal(t, "great", submitted["reviewText"])
}

func TestClient_SendEmailVerification(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotQuery = req.Query

		w.Write([]byte(`{"data":{"sendEmailVerification":true}}`))
	})

	require.NoError(t, client.SendEmailVerification(context.Background()))
	assert.Contains(t, gotQuery, "sendEmailVerification")
}
