package handlers_test

import (
	"net/http"
	"testing"
)

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	app, db := newTestApp(t)
	sid := "sid-checkout"

	add := map[string]any{"product_id": "prd-oud", "quantity": 2}
	if _, err := app.Test(jsonReq("POST", "/api/v1/cart", sid, add)); err != nil {
		t.Fatal(err)
	}

	form := map[string]any{
		"customer_name": "Yasmine",
		"phone":         "0551 22 33 44",
		"city":          "Alger",
		"address":       "Rue de la Liberté 5",
		"notes":         "après 18h",
	}
	resp, err := app.Test(jsonReq("POST", "/api/v1/checkout", sid, form))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var body struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
	}
	decode(t, resp, &body)
	if !body.Success || body.OrderID == "" {
		t.Fatalf("bad reply: %+v", body)
	}

	var total float64
	if err := db.Get(&total, `SELECT total_price FROM orders WHERE id = ?`, body.OrderID); err != nil {
		t.Fatal(err)
	}
	if total != 9000 {
		t.Fatalf("want total 9000, got %v", total)
	}

	resp, err = app.Test(jsonReq("GET", "/api/v1/cart", sid, nil))
	if err != nil {
		t.Fatal(err)
	}
	var cv cartResp
	decode(t, resp, &cv)
	if cv.Count != 0 {
		t.Fatalf("cart should be empty after checkout, got %+v", cv)
	}
}

func TestCheckoutRejectsInvalidForm(t *testing.T) {
	app, _ := newTestApp(t)
	sid := "sid-badform"

	add := map[string]any{"product_id": "prd-oud", "quantity": 1}
	if _, err := app.Test(jsonReq("POST", "/api/v1/cart", sid, add)); err != nil {
		t.Fatal(err)
	}

	form := map[string]any{"customer_name": "X", "phone": "123", "city": " ", "address": ""}
	resp, err := app.Test(jsonReq("POST", "/api/v1/checkout?lang=fr", sid, form))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", resp.StatusCode)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp, &body)
	for _, f := range []string{"phone", "city", "address"} {
		if body.Errors[f] == "" {
			t.Fatalf("missing error for %s: %+v", f, body.Errors)
		}
	}
	if body.Errors["customer_name"] != "" {
		t.Fatalf("name was given, got %+v", body.Errors)
	}
}

func TestCheckoutEmptyCartIs400(t *testing.T) {
	app, _ := newTestApp(t)

	form := map[string]any{
		"customer_name": "Yasmine",
		"phone":         "0551223344",
		"city":          "Alger",
		"address":       "addr",
	}
	resp, err := app.Test(jsonReq("POST", "/api/v1/checkout", "sid-empty", form))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", resp.StatusCode)
	}
}

func TestOrderEndpointValidatesPayload(t *testing.T) {
	app, _ := newTestApp(t)

	// Missing items.
	resp, err := app.Test(jsonReq("POST", "/api/v1/orders", "", map[string]any{
		"customer_name": "A", "phone": "0551223344", "city": "c", "address": "a",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for empty items, got %d", resp.StatusCode)
	}

	// Well-formed request gets an order id.
	resp, err = app.Test(jsonReq("POST", "/api/v1/orders", "", map[string]any{
		"customer_name": "A", "phone": "0551223344", "city": "c", "address": "a",
		"total_price": 3200,
		"items": []map[string]any{
			{"product_id": "prd-musk", "product_name": "عطر المسك", "price": 3200, "quantity": 1},
		},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	var body struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
	}
	decode(t, resp, &body)
	if !body.Success || body.OrderID == "" {
		t.Fatalf("bad reply: %+v", body)
	}
}
