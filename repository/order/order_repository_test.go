package order_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dikiindrasaputra/omahjajanwatir/model"
	orderrepo "github.com/dikiindrasaputra/omahjajanwatir/repository/order"
	"github.com/dikiindrasaputra/omahjajanwatir/thirdparty/supabase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T, handler http.HandlerFunc) orderrepo.OrderRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return orderrepo.NewOrderRepository(supabase.New(srv.URL, "anon-key"))
}

func TestREST_ResolveCheckoutStatusID(t *testing.T) {
	t.Run("success: filters on nama and selesai", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/status", r.URL.Path)
			assert.Equal(t, "id", r.URL.Query().Get("select"))
			assert.Equal(t, "eq.proses", r.URL.Query().Get("nama"))
			assert.Equal(t, "eq.false", r.URL.Query().Get("selesai"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"id":3}]`))
		})

		id, err := repo.ResolveCheckoutStatusID(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("error: unseeded status table reads as not found", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		id, err := repo.ResolveCheckoutStatusID(context.Background())
		assert.ErrorIs(t, err, supabase.ErrNotFound)
		assert.Zero(t, id)
	})

	t.Run("error: no client configured", func(t *testing.T) {
		repo := orderrepo.NewOrderRepository(nil)

		_, err := repo.ResolveCheckoutStatusID(context.Background())
		assert.ErrorIs(t, err, supabase.ErrNotConnected)
	})
}

func TestREST_InsertOrder(t *testing.T) {
	t.Run("success: returns the generated id", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/pesanan", r.URL.Path)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`[{"id":"order-1","user_id":"u-1","total_harga":25000}]`))
		})

		id, err := repo.InsertOrder(context.Background(), &model.NewOrder{
			UserID:     "u-1",
			StatusID:   3,
			TotalHarga: 25000,
			Nomor:      "ORD-20250101120000-a1b2",
		})
		require.NoError(t, err)
		assert.Equal(t, "order-1", id)
	})

	t.Run("error: representation without a row", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`[]`))
		})

		id, err := repo.InsertOrder(context.Background(), &model.NewOrder{UserID: "u-1"})
		assert.Error(t, err)
		assert.Empty(t, id)
	})
}

func TestREST_GetOrderForUser(t *testing.T) {
	t.Run("success: scopes on id and user_id with the status embed", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/pesanan", r.URL.Path)
			assert.Equal(t, "*, status(nama, selesai)", r.URL.Query().Get("select"))
			assert.Equal(t, "eq.order-1", r.URL.Query().Get("id"))
			assert.Equal(t, "eq.u-1", r.URL.Query().Get("user_id"))
			assert.Equal(t, "application/vnd.pgrst.object+json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"id":"order-1","user_id":"u-1","total_harga":25000,"status":{"nama":"proses","selesai":false}}`))
		})

		ord, err := repo.GetOrderForUser(context.Background(), "order-1", "u-1")
		require.NoError(t, err)
		assert.Equal(t, "order-1", ord.ID)
		require.NotNil(t, ord.Status)
		assert.Equal(t, "proses", ord.Status.Nama)
	})

	t.Run("error: another user's order reads as not found", func(t *testing.T) {
		repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotAcceptable)
			_, _ = w.Write([]byte(`{"code":"PGRST116","message":"no rows"}`))
		})

		ord, err := repo.GetOrderForUser(context.Background(), "order-1", "someone-else")
		assert.ErrorIs(t, err, supabase.ErrNotFound)
		assert.Nil(t, ord)
	})
}

func TestREST_ListLineQuantities(t *testing.T) {
	repo := newRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/dipesan", r.URL.Path)
		assert.Equal(t, "jumlah", r.URL.Query().Get("select"))
		assert.Equal(t, "eq.order-1", r.URL.Query().Get("pesanan_id"))
		_, _ = w.Write([]byte(`[{"jumlah":2},{"jumlah":1}]`))
	})

	quantities, err := repo.ListLineQuantities(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, quantities)
}
