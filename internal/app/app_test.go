package app_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/koffe-supply/koffe-be/config"
	"github.com/koffe-supply/koffe-be/internal/app"
	"github.com/koffe-supply/koffe-be/internal/repository/memory"
	"github.com/koffe-supply/koffe-be/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Data    json.RawMessage            `json:"data"`
	Errors  []response.ValidationError `json:"errors"`
}

type apiClient struct {
	t      *testing.T
	server *echo.Echo
	token  string
}

func newTestConfig(enforce bool) *config.Config {
	return &config.Config{
		JWTConfig:  config.JWTConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
		AuthConfig: config.AuthConfig{Enforce: enforce, BcryptCost: bcrypt.MinCost},
	}
}

func newAPIClient(t *testing.T, enforce bool) *apiClient {
	store := memory.NewStore()
	repos := app.Repositories{
		Transactor: store,
		Users:      store.Users(),
		Tags:       store.Tags(),
		Types:      store.Types(),
		Products:   store.Products(),
		Orders:     store.Orders(),
	}

	server := app.NewServer(newTestConfig(enforce), repos, &memory.EventRecorder{}, prometheus.NewRegistry())

	return &apiClient{t: t, server: server}
}

func (c *apiClient) do(method, path string, body interface{}) (int, envelope) {
	c.t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(c.t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if c.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+c.token)
	}

	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func (c *apiClient) login() {
	c.t.Helper()

	status, _ := c.do(http.MethodPost, "/api/users/login", map[string]string{"username": "barista", "password": "s3cret"})
	if status == http.StatusUnauthorized {
		status, _ = c.do(http.MethodPost, "/api/users", map[string]string{"username": "barista", "password": "s3cret", "fullName": "Barista"})
		require.Equal(c.t, http.StatusCreated, status)
	}

	status, env := c.do(http.MethodPost, "/api/users/login", map[string]string{"username": "barista", "password": "s3cret"})
	require.Equal(c.t, http.StatusOK, status)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(c.t, login.Token)
	c.token = login.Token
}

func (c *apiClient) create(path string, body interface{}) string {
	c.t.Helper()

	status, env := c.do(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, status, env.Message)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(c.t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(c.t, created.ID)

	return created.ID
}

func widget(typeID string, tags ...string) map[string]interface{} {
	return map[string]interface{}{
		"productName": "Widget",
		"type":        typeID,
		"tags":        tags,
		"image":       "widget.png",
		"imageMore":   []string{"widget-1.png"},
		"price":       12.5,
	}
}

func TestProductCatalogFlow(t *testing.T) {
	c := newAPIClient(t, true)
	c.login()

	typeID := c.create("/api/types", map[string]string{"typeName": "Electronics"})
	c.create("/api/products", widget(typeID))

	status, env := c.do(http.MethodPost, "/api/products", widget(typeID))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Product with this name already exists", env.Message)

	c.token = ""
	status, env = c.do(http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, status)

	var products []struct {
		ProductName string `json:"productName"`
		Type        *struct {
			ID       string `json:"id"`
			TypeName string `json:"typeName"`
		} `json:"type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].ProductName)
	require.NotNil(t, products[0].Type)
	assert.Equal(t, typeID, products[0].Type.ID)
	assert.Equal(t, "Electronics", products[0].Type.TypeName)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	c := newAPIClient(t, true)

	status, env := c.do(http.MethodPost, "/api/tags", map[string]string{"tagName": "Single origin"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Missing token", env.Message)

	c.token = "not-a-jwt"
	status, env = c.do(http.MethodPost, "/api/tags", map[string]string{"tagName": "Single origin"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", env.Message)

	c.token = ""
	status, _ = c.do(http.MethodGet, "/api/tags", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthCanBeDisabled(t *testing.T) {
	c := newAPIClient(t, false)

	c.create("/api/tags", map[string]string{"tagName": "Single origin"})
}

func TestValidationErrorsListFields(t *testing.T) {
	c := newAPIClient(t, true)
	c.login()

	status, env := c.do(http.MethodPost, "/api/products", map[string]interface{}{"image": "x.png"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, response.ValidationError{Field: "productName", Tag: "required"})
	assert.Contains(t, env.Errors, response.ValidationError{Field: "imageMore", Tag: "required"})

	status, env = c.do(http.MethodPost, "/api/tags", `{"tagName":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestDeleteTwiceReturnsNotFound(t *testing.T) {
	c := newAPIClient(t, true)
	c.login()

	tagID := c.create("/api/tags", map[string]string{"tagName": "Fruity"})

	status, env := c.do(http.MethodDelete, "/api/tags/"+tagID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Tag deleted successfully", env.Message)

	status, env = c.do(http.MethodDelete, "/api/tags/"+tagID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Tag not found", env.Message)

	status, _ = c.do(http.MethodGet, "/api/tags/not-an-id", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReferencedTagCannotBeDeleted(t *testing.T) {
	c := newAPIClient(t, true)
	c.login()

	tagID := c.create("/api/tags", map[string]string{"tagName": "Fruity"})
	typeID := c.create("/api/types", map[string]string{"typeName": "Arabica"})
	productID := c.create("/api/products", widget(typeID, tagID))

	status, env := c.do(http.MethodDelete, "/api/tags/"+tagID, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Tag is still referenced by products", env.Message)

	status, _ = c.do(http.MethodDelete, "/api/types/"+typeID, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = c.do(http.MethodDelete, "/api/products/"+productID, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = c.do(http.MethodDelete, "/api/tags/"+tagID, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = c.do(http.MethodDelete, "/api/types/"+typeID, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestUnknownProductReferencesAreRejected(t *testing.T) {
	c := newAPIClient(t, true)
	c.login()

	typeID := c.create("/api/types", map[string]string{"typeName": "Arabica"})

	status, env := c.do(http.MethodPost, "/api/products", widget(typeID, "65a000000000000000000000"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "One or more tags are invalid", env.Message)

	status, env = c.do(http.MethodPost, "/api/products", widget("garbage"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid product type", env.Message)
}

func TestLoginAndUserLookup(t *testing.T) {
	c := newAPIClient(t, true)

	userID := c.create("/api/users", map[string]string{"username": "barista", "password": "s3cret", "fullName": "Barista"})

	status, env := c.do(http.MethodPost, "/api/users/login", map[string]string{"username": "barista", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid username or password", env.Message)

	c.login()

	status, env = c.do(http.MethodGet, "/api/users/"+userID, nil)
	require.Equal(t, http.StatusOK, status)

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "barista", user["username"])
	assert.NotContains(t, user, "password")
}

func TestGuestCanPlaceOrder(t *testing.T) {
	c := newAPIClient(t, true)
	c.login()

	typeID := c.create("/api/types", map[string]string{"typeName": "Arabica"})
	productID := c.create("/api/products", widget(typeID))

	c.token = ""
	orderID := c.create("/api/orders", map[string]interface{}{
		"orderDetail": []map[string]interface{}{
			{"productId": productID, "quantity": 2, "price": 12.5},
		},
		"totalPrice":   25,
		"customerName": "Guest",
		"phone":        "0812345678",
	})

	status, _ := c.do(http.MethodGet, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	c.login()
	status, env := c.do(http.MethodGet, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, status)

	var order struct {
		OrderStatus int `json:"orderStatus"`
		OrderDetail []struct {
			Product *struct {
				ProductName string `json:"productName"`
			} `json:"product"`
		} `json:"orderDetail"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, 0, order.OrderStatus)
	require.Len(t, order.OrderDetail, 1)
	require.NotNil(t, order.OrderDetail[0].Product)
	assert.Equal(t, "Widget", order.OrderDetail[0].Product.ProductName)
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	c := newAPIClient(t, true)

	status, env := c.do(http.MethodGet, "/api/unknown", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", env.Status)
	assert.NotEmpty(t, env.Message)
}

func TestPing(t *testing.T) {
	c := newAPIClient(t, true)

	status, env := c.do(http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", env.Message)
}

func TestLongPasswordIsAValidationError(t *testing.T) {
	c := newAPIClient(t, true)

	status, env := c.do(http.MethodPost, "/api/users", map[string]string{"username": "barista", "password": strings.Repeat("x", 73)})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Errors, response.ValidationError{Field: "password", Tag: "max"})
}
