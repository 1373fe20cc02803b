package controllers

import (
	"burger-house/models"
	"burger-house/services"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRouter(carts *services.CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCartController(carts)
	router.GET("/cart", ctrl.GetCart)
	router.DELETE("/cart", ctrl.ClearCart)
	router.POST("/cart/items", ctrl.AddItem)
	router.PATCH("/cart/items/:id", ctrl.UpdateItem)
	router.DELETE("/cart/items/:id", ctrl.RemoveItem)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", "tok-1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints(t *testing.T) {
	carts := services.NewCartService()
	router := newCartRouter(carts)

	t.Run("rejects requests without a session token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("add item", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/cart/items", models.AddCartItemRequest{
			Name:  "X-BURGUER",
			Price: 18.90,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, carts.ItemCount("tok-1"))
	})

	t.Run("add requires a name", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"price": 10})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 1, carts.ItemCount("tok-1"))
	})

	t.Run("update and remove unknown ids answer 200", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPatch, "/cart/items/ghost", models.UpdateCartItemRequest{})
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/cart/items/ghost", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, carts.ItemCount("tok-1"))
	})

	t.Run("clear cart", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Zero(t, carts.ItemCount("tok-1"))
	})
}
