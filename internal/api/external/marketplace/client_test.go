package marketplace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string, attempts int) *Client {
	return NewClient(ClientConfig{
		BaseURL:        url,
		Timeout:        5 * time.Second,
		RetryAttempts:  attempts,
		RetryBaseDelay: time.Millisecond,
		RetryMaxDelay:  5 * time.Millisecond,
	})
}

func TestClient_Me(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":123456,"nickname":"TESTSELLER","email":"s@example.com","site_id":"MLA"}`))
	}))
	defer server.Close()

	u, err := newTestClient(server.URL, 1).Me(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, User{ID: 123456, Nickname: "TESTSELLER", Email: "s@example.com", SiteID: "MLA"}, u)
}

func TestClient_GetItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "MLA1,MLA2", r.URL.Query().Get("ids"))
		_, _ = w.Write([]byte(`[
			{"code":200,"body":{"id":"MLA1","title":"Mate","price":1500.5,"currency_id":"ARS","available_quantity":3,"status":"active","last_updated":"2024-05-10T13:58:23.000-04:00"}},
			{"code":404,"body":{"id":"MLA2"}}
		]`))
	}))
	defer server.Close()

	items, err := newTestClient(server.URL, 1).GetItems(context.Background(), "tok", []string{"MLA1", "MLA2"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "MLA1", items[0].ID)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(items[0].Price))
	assert.Equal(t, 2024, items[0].LastUpdated.Year())
}

func TestClient_GetItems_TooMany(t *testing.T) {
	ids := make([]string, MultigetLimit+1)
	_, err := newTestClient("http://unused", 1).GetItems(context.Background(), "tok", ids)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestClient_SearchOrders_EncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/orders/search", r.URL.Path)
		assert.Equal(t, "99", q.Get("seller"))
		assert.Equal(t, "2024-05-01T00:00:00.000Z", q.Get("order.date_created.from"))
		assert.Equal(t, "date_desc", q.Get("sort"))
		assert.Equal(t, "50", q.Get("offset"))
		_, _ = w.Write([]byte(`{"results":[{"id":2000001,"status":"paid","total_amount":100,"buyer":{"id":7,"nickname":"BUYER"},"shipping":{"id":4000}}],"paging":{"total":51,"offset":50,"limit":50}}`))
	}))
	defer server.Close()

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	orders, paging, err := newTestClient(server.URL, 1).SearchOrders(context.Background(), "tok", 99, since, 50, 50)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(4000), orders[0].Shipping.ID)
	assert.Equal(t, 51, paging.Total)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusBadGateway, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL, 1).GetShipment(context.Background(), "tok", 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ACTIVE","expected_date":"2024-05-12T23:59:59.000-03:00"}`))
	}))
	defer server.Close()

	sla, err := newTestClient(server.URL, 3).GetShipmentSLA(context.Background(), "tok", 4000)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 12, sla.ExpectedDate.Day())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 3).GetQuestion(context.Background(), "tok", 1)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_BillingDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/billing/integration/periods/key/2024-05-01/group/ML/details", r.URL.Path)
		_, _ = w.Write([]byte(`{"total":2,"results":[
			{"charge_info":{"detail_id":1,"detail_type":"CHARGE","transaction_detail":"Cargo por venta","detail_amount":120.5,"creation_date_time":"2024-05-03T10:00:00Z"},"sales_info":[{"order_id":2000001}]},
			{"charge_info":{"detail_id":2,"detail_type":"PERCEPTION","transaction_detail":"Percepcion IIBB","detail_amount":12.05,"creation_date_time":"2024-05-03T10:00:00Z"}}
		]}`))
	}))
	defer server.Close()

	details, total, err := newTestClient(server.URL, 1).BillingDetails(context.Background(), "tok", "2024-05-01", 0, 50)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, details, 2)
	assert.False(t, details[0].IsTax())
	assert.True(t, details[1].IsTax())
	assert.Equal(t, int64(2000001), details[0].SalesInfo[0].OrderID)
}

func TestTime_Unmarshal(t *testing.T) {
	var v struct {
		A Time `json:"a"`
		B Time `json:"b"`
		C Time `json:"c"`
	}
	err := jsonUnmarshal(`{"a":"2024-05-01","b":null,"c":"2024-05-10T13:58:23.347Z"}`, &v)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), v.A.Time)
	assert.True(t, v.B.IsZero())
	assert.Nil(t, v.B.Ptr())
	assert.Equal(t, 347000000, v.C.Nanosecond())
}
