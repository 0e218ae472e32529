package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	sqlitestore "pet-agenda/internal/adapters/storage/sqlite"
	"pet-agenda/internal/router"
)

// newTestServer levanta el server completo contra un archivo SQLite
// temporal ya sembrado (users 1, 2 y 99, mascota Rex del user 1).
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := sqlitestore.Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := sqlitestore.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{DB: db, Driver: router.DriverSQLite}))
	t.Cleanup(ts.Close)
	return ts
}

func TestBanner(t *testing.T) {
	ts := newTestServer(t)

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get banner: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 banner, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if len(body) == 0 {
		t.Fatalf("expected plain text banner")
	}
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	// faltan campos => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/login", map[string]any{"email": "test@petagenda.com"})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing password, got %d", st)
		}
	}

	// password equivocado => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/login", map[string]any{
			"email":    "test@petagenda.com",
			"password": "nope",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 for wrong password, got %d", st)
		}
	}

	// credenciales correctas => 200, token fijo, user sin password
	{
		st, body := doReq(t, ts.URL, "POST", "/api/login", map[string]any{
			"email":    "test@petagenda.com",
			"password": "password",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}

		var resp struct {
			Message string         `json:"message"`
			Token   string         `json:"token"`
			User    map[string]any `json:"user"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal login response: %v", err)
		}
		if resp.Token == "" {
			t.Fatalf("expected a token, body=%s", string(body))
		}
		if _, leaked := resp.User["password"]; leaked {
			t.Fatalf("password leaked in login response: %s", string(body))
		}
		if resp.User["email"] != "test@petagenda.com" {
			t.Fatalf("unexpected user in login response: %s", string(body))
		}
	}
}

func TestPetsByOwner(t *testing.T) {
	ts := newTestServer(t)

	// sin userId => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/pets", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without userId, got %d", st)
		}
	}

	// user sin mascotas => 200 con [] (no error, no null)
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets?userId=2", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 for petless owner, got %d", st)
		}
		var items []map[string]any
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("expected JSON array, got %s", string(body))
		}
		if len(items) != 0 {
			t.Fatalf("expected empty array, got %s", string(body))
		}
	}

	// el user sembrado tiene a Rex
	{
		st, body := doReq(t, ts.URL, "GET", "/api/pets?userId=1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		var items []struct {
			Name   string `json:"name"`
			UserID int64  `json:"userId"`
		}
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("unmarshal pets: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Rex" || items[0].UserID != 1 {
			t.Fatalf("unexpected pets for user 1: %s", string(body))
		}
	}
}

func TestClientLifecycle(t *testing.T) {
	ts := newTestServer(t)

	// crear cliente
	id := createClient(t, ts.URL, "Carlos López", "carlos@lopez.com")

	// email duplicado => 409 y la tabla no gana otra fila
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/clients", map[string]any{
			"name":     "Otro Carlos",
			"email":    "carlos@lopez.com",
			"password": "secret",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for duplicate email, got %d", st)
		}
		if n := countClients(t, ts.URL, "carlos@lopez.com"); n != 1 {
			t.Fatalf("expected exactly 1 row for duplicate email, got %d", n)
		}
	}

	// la lista de clientes no incluye al admin
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/clients", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing clients, got %d", st)
		}
		var clients []struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		if err := json.Unmarshal(body, &clients); err != nil {
			t.Fatalf("unmarshal clients: %v", err)
		}
		for _, c := range clients {
			if c.Role != "user" {
				t.Fatalf("admin leaked into client listing: %s", string(body))
			}
		}
	}

	// actualizar name/email
	{
		st, body := doReq(t, ts.URL, "PUT", "/api/admin/clients/"+id, map[string]any{
			"name":  "Carlos L. Actualizado",
			"email": "carlos.nuevo@lopez.com",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 updating client, got %d body=%s", st, string(body))
		}
	}

	// actualizar hacia el email de OTRO cliente => 409
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/admin/clients/"+id, map[string]any{
			"name":  "Carlos",
			"email": "ana@garcia.com",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 updating to taken email, got %d", st)
		}
	}

	// id inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "PUT", "/api/admin/clients/99999", map[string]any{
			"name":  "Nadie",
			"email": "nadie@nadie.com",
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 updating missing client, got %d", st)
		}
	}

	// borrar y re-borrar
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/admin/clients/"+id, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 deleting client, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/api/admin/clients/"+id, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 re-deleting client, got %d", st)
		}
	}
}

func TestCascadeDelete(t *testing.T) {
	ts := newTestServer(t)

	clientID := createClient(t, ts.URL, "Marta Prueba", "cascade@test.com")
	petID := createPet(t, ts.URL, clientID, "Luna", "Gato")

	// citas y registros colgando de la mascota
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/appointments", map[string]any{
			"petId":  jsonNumber(petID),
			"date":   "2026-09-15",
			"reason": "vacuna anual",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating appointment, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/api/admin/records", map[string]any{
			"petId": jsonNumber(petID),
			"type":  "Vacuna",
			"name":  "Antirrábica",
			"date":  "2026-09-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating record, got %d", st)
		}
	}

	// borrar al dueño arrastra todo
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/admin/clients/"+clientID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 deleting owner, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/api/admin/pets/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for cascaded pet, got %d", st)
		}
	}
}

func TestPetDetail(t *testing.T) {
	ts := newTestServer(t)

	// detalle de la mascota sembrada, sin citas ni registros aún
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/pets/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet detail, got %d body=%s", st, string(body))
		}

		var resp struct {
			Pet struct {
				Name string `json:"name"`
			} `json:"pet"`
			Owner struct {
				Email string `json:"email"`
			} `json:"owner"`
			Appointments []any `json:"appointments"`
			Records      []any `json:"records"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal detail: %v", err)
		}
		if resp.Pet.Name != "Rex" {
			t.Fatalf("unexpected pet: %s", string(body))
		}
		if resp.Owner.Email != "test@petagenda.com" {
			t.Fatalf("unexpected owner: %s", string(body))
		}
		if resp.Appointments == nil || resp.Records == nil {
			t.Fatalf("expected empty arrays, got %s", string(body))
		}
	}

	// una cita nueva siempre nace "Pending" y aparece en el detalle
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/appointments", map[string]any{
			"petId":  1,
			"date":   "2026-10-01",
			"reason": "control",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating appointment, got %d", st)
		}
		var appt struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &appt)
		if appt.Status != "Pending" {
			t.Fatalf("expected status Pending, got %q", appt.Status)
		}

		st, body = doReq(t, ts.URL, "GET", "/api/admin/pets/1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pet detail, got %d", st)
		}
		var resp struct {
			Appointments []struct {
				Status string `json:"status"`
			} `json:"appointments"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Appointments) != 1 || resp.Appointments[0].Status != "Pending" {
			t.Fatalf("expected 1 pending appointment, got %s", string(body))
		}
	}

	// mascota inexistente => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/api/admin/pets/9999", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for missing pet, got %d", st)
		}
	}
}

func TestCreatePet(t *testing.T) {
	ts := newTestServer(t)

	// species ausente => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/pets", map[string]any{
			"name":   "Toby",
			"userId": 2,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 without species, got %d", st)
		}
	}

	// breed opcional: ausente queda null
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/pets", map[string]any{
			"name":    "Toby",
			"species": "Perro",
			"userId":  2,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(body))
		}
		var p struct {
			Breed *string `json:"breed"`
		}
		_ = json.Unmarshal(body, &p)
		if p.Breed != nil {
			t.Fatalf("expected null breed, got %s", string(body))
		}
	}

	// userId inexistente: la FK del store responde, aquí es un 500 genérico
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/pets", map[string]any{
			"name":    "Fantasma",
			"species": "Gato",
			"userId":  4242,
		})
		if st != http.StatusInternalServerError {
			t.Fatalf("expected 500 for FK violation, got %d", st)
		}
	}
}

func createClient(t *testing.T, baseURL, name, email string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/admin/clients", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create client, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID   int64  `json:"id"`
		Role string `json:"role"`
		Pets []any  `json:"pets"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.ID == 0 {
		t.Fatalf("create client: bad body %s", string(body))
	}
	if resp.Role != "user" {
		t.Fatalf("expected default role user, got %s", string(body))
	}
	if resp.Pets == nil || len(resp.Pets) != 0 {
		t.Fatalf("expected empty pets array, got %s", string(body))
	}
	return itoa(resp.ID)
}

func createPet(t *testing.T, baseURL, ownerID, name, species string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/admin/pets", map[string]any{
		"name":    name,
		"species": species,
		"userId":  jsonNumber(ownerID),
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.ID == 0 {
		t.Fatalf("create pet: bad body %s", string(body))
	}
	return itoa(resp.ID)
}

func countClients(t *testing.T, baseURL, email string) int {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/api/admin/clients", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 listing clients, got %d", st)
	}
	var clients []struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &clients); err != nil {
		t.Fatalf("unmarshal clients: %v", err)
	}
	n := 0
	for _, c := range clients {
		if c.Email == email {
			n++
		}
	}
	return n
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// jsonNumber vuelve a número un id que circula como string en los paths.
func jsonNumber(id string) int64 {
	n, _ := strconv.ParseInt(id, 10, 64)
	return n
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
