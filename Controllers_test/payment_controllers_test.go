package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/bar-app/models"
)


func TestSendToPaymentAndClose(t *testing.T) {
	r, bar := setupRouterForTest(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(1, []models.OrderLine{{Name: "Cerveja", Price: 12.5, Quantity: 2}})
	require.NoError(t, err)
	manager := tokenFor(t, "manager")

	w := doRequest(t, r, "POST", "/tables/1/payment", tokenFor(t, "attendant"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, r, "POST", "/tables/1/payment", manager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var table models.Table
	decode(t, w, &table)
	assert.Equal(t, models.TablePayment, table.Status)

	// no more items once the bill is requested
	w = doRequest(t, r, "POST", "/tables/1/items", manager, map[string]interface{}{
		"items": []map[string]interface{}{{"menuItemId": "1"}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, r, "POST", "/tables/1/close", manager, map[string]string{"paymentMethod": "PIX"})
	require.Equal(t, http.StatusOK, w.Code)
	var closed models.ClosedOrder
	decode(t, w, &closed)
	assert.Equal(t, 25.0, closed.Total)
	assert.Equal(t, models.PaymentPix, closed.PaymentMethod)
	assert.Equal(t, fixedNow, closed.ClosedAt)

	w = doRequest(t, r, "POST", "/tables/1/close", manager, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, bar.History(), 1)

	updated, _ := bar.Table(1)
	assert.Equal(t, models.Table{ID: 1, Status: models.TableFree}, updated)
}

func TestCloseDefaultsToCash(t *testing.T) {
	r, bar := setupRouterForTest(t)
	_, err := bar.CreateTable(1)
	require.NoError(t, err)
	_, err = bar.AddItemsToTable(1, []models.OrderLine{{Name: "Cerveja", Price: 10, Quantity: 1}})
	require.NoError(t, err)

	w := doRequest(t, r, "POST", "/tables/1/close", tokenFor(t, "manager"), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var closed models.ClosedOrder
	decode(t, w, &closed)
	assert.Equal(t, models.PaymentCash, closed.PaymentMethod)
}
