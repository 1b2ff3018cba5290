package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homeconnect.backend/internal/config"
	"homeconnect.backend/internal/infrastructure/paystack"
	"homeconnect.backend/pkg/logger"
)

// fakePaystack is a stateful stand-in for the provider: initialize issues a
// reference and remembers the metadata, verify echoes it back.
type fakePaystack struct {
	mu         sync.Mutex
	references map[string]paystack.Metadata
	amounts    map[string]int64
	next       int
}

func newFakePaystack() *fakePaystack {
	return &fakePaystack{
		references: make(map[string]paystack.Metadata),
		amounts:    make(map[string]int64),
	}
}

func (f *fakePaystack) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/transaction/initialize", func(w http.ResponseWriter, r *http.Request) {
		var req paystack.InitializeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.next++
		ref := fmt.Sprintf("ref-%d", f.next)
		f.references[ref] = req.Metadata
		f.amounts[ref] = req.Amount
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.example.com/%s","access_code":"ac_%s","reference":"%s"}}`, ref, ref, ref)
	})
	mux.HandleFunc("/transaction/verify/", func(w http.ResponseWriter, r *http.Request) {
		ref := strings.TrimPrefix(r.URL.Path, "/transaction/verify/")
		w.Header().Set("Content-Type", "application/json")

		f.mu.Lock()
		metadata, ok := f.references[ref]
		amount := f.amounts[ref]
		f.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":false,"message":"Transaction reference not found"}`)
			return
		}

		status := "success"
		if strings.HasSuffix(ref, "-abandoned") {
			status = "abandoned"
		}
		resp := paystack.VerifyResponse{
			Status:  true,
			Message: "Verification successful",
			Data: paystack.VerifyData{
				Status:    status,
				Reference: ref,
				Amount:    amount,
				Metadata:  metadata,
			},
		}
		json.NewEncoder(w).Encode(resp)
	})
	return mux
}

func bootTestServer(t *testing.T, providerURL string) *gin.Engine {
	t.Helper()
	withMainHooks(t)

	var engine *gin.Engine
	loadDotenv = func(...string) error { return nil }
	loadCfg = func() *config.Config {
		cfg := baseTestConfig()
		cfg.Paystack.BaseURL = providerURL
		return cfg
	}
	initLog = logger.Init
	openDB = openTestDB
	runServer = func(r *gin.Engine, _ string) error {
		engine = r
		return nil
	}

	require.NoError(t, runMainProcess())
	require.NotNil(t, engine)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAPI_FullUnlockFlow(t *testing.T) {
	provider := httptest.NewServer(newFakePaystack().handler())
	defer provider.Close()

	engine := bootTestServer(t, provider.URL)

	// Register a seller and a buyer
	w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
		`{"firstName":"Ada","lastName":"Obi","email":"seller@example.com","phone":"+2348012345678","userType":"seller","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sellerAuth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sellerAuth))

	// Duplicate registration is rejected
	w = doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
		`{"firstName":"Ada","lastName":"Obi","email":"SELLER@example.com","phone":"+2348012345678","userType":"seller","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
		`{"firstName":"Bola","lastName":"Ade","email":"buyer@example.com","phone":"+2348098765432","userType":"buyer","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Login as the buyer
	w = doJSON(t, engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"buyer@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var buyerAuth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &buyerAuth))

	// Seller publishes a listing
	w = doJSON(t, engine, http.MethodPost, "/api/listings", sellerAuth.Token,
		`{"title":"3 Bedroom Flat","type":"apartment","listingType":"rent","price":450000,"location":"Lekki Phase 1","state":"Lagos","bedrooms":3,"description":"Spacious flat"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Listing struct {
			ID         string `json:"id"`
			OwnerName  string `json:"ownerName"`
			OwnerPhone string `json:"ownerPhone"`
		} `json:"listing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Listing.ID)
	assert.Equal(t, "Ada Obi", created.Listing.OwnerName)

	// The listing appears in the public catalog
	w = doJSON(t, engine, http.MethodGet, "/api/listings?listingType=rent&state=Lagos", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.Listing.ID)

	// Contact is still locked for the buyer
	w = doJSON(t, engine, http.MethodGet, "/api/unlocks/"+created.Listing.ID, buyerAuth.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unlocked":false`)

	// Buyer initializes the unlock payment
	w = doJSON(t, engine, http.MethodPost, "/api/payments/initialize", buyerAuth.Token,
		`{"listingId":"`+created.Listing.ID+`","amount":5000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var initResp struct {
		Status bool `json:"status"`
		Data   struct {
			Reference string `json:"reference"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &initResp))
	require.True(t, initResp.Status)
	require.NotEmpty(t, initResp.Data.Reference)

	// Verify twice: first call records the unlock, second finds it
	for i := 0; i < 2; i++ {
		w = doJSON(t, engine, http.MethodGet, "/api/payments/verify/"+initResp.Data.Reference, buyerAuth.Token, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Contains(t, w.Body.String(), "Payment verified and contact unlocked")
		assert.Contains(t, w.Body.String(), created.Listing.ID)
	}

	// The contact is now unlocked for the buyer but not the seller
	w = doJSON(t, engine, http.MethodGet, "/api/unlocks/"+created.Listing.ID, buyerAuth.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unlocked":true`)

	w = doJSON(t, engine, http.MethodGet, "/api/unlocks/"+created.Listing.ID, sellerAuth.Token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"unlocked":false`)

	// Unknown reference surfaces as a payment failure, not an unlock
	w = doJSON(t, engine, http.MethodGet, "/api/payments/verify/ref-unknown", buyerAuth.Token, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Stats reflect the two accounts and the one listing
	w = doJSON(t, engine, http.MethodGet, "/api/stats", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalUsers":2`)
	assert.Contains(t, w.Body.String(), `"totalListings":1`)
}

func TestAPI_ListingOwnershipAndAuth(t *testing.T) {
	provider := httptest.NewServer(newFakePaystack().handler())
	defer provider.Close()

	engine := bootTestServer(t, provider.URL)

	register := func(email string) string {
		w := doJSON(t, engine, http.MethodPost, "/api/auth/register", "",
			`{"firstName":"Ada","lastName":"Obi","email":"`+email+`","phone":"+2348012345678","userType":"seller","password":"secret123"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var auth struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
		return auth.Token
	}

	ownerToken := register("owner@example.com")
	otherToken := register("other@example.com")

	// Writes require a token
	w := doJSON(t, engine, http.MethodPost, "/api/listings", "",
		`{"title":"Flat","type":"apartment","listingType":"rent","price":1,"location":"x","state":"Lagos","description":"y"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/listings", ownerToken,
		`{"title":"Flat","type":"apartment","listingType":"rent","price":1,"location":"x","state":"Lagos","description":"y"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Listing struct {
			ID string `json:"id"`
		} `json:"listing"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Another account can neither update nor delete it
	w = doJSON(t, engine, http.MethodPut, "/api/listings/"+created.Listing.ID, otherToken, `{"title":"Hijacked"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, engine, http.MethodDelete, "/api/listings/"+created.Listing.ID, otherToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The owner can
	w = doJSON(t, engine, http.MethodPut, "/api/listings/"+created.Listing.ID, ownerToken, `{"price":2,"status":"closed"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodGet, "/api/my-listings", ownerToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	w = doJSON(t, engine, http.MethodGet, "/api/my-listings", otherToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)

	w = doJSON(t, engine, http.MethodDelete, "/api/listings/"+created.Listing.ID, ownerToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/listings/"+created.Listing.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
