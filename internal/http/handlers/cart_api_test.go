package handlers_test

import (
	"net/http"
	"testing"
)

type cartResp struct {
	Items []struct {
		ProductID  string         `json:"product_id"`
		Quantity   int            `json:"quantity"`
		OptionsKey string         `json:"optionsKey"`
		Options    map[string]any `json:"options"`
	} `json:"items"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

func TestCartAddMergesIdenticalOptions(t *testing.T) {
	app, _ := newTestApp(t)
	sid := "sid-merge"

	add := map[string]any{
		"product_id": "prd-box",
		"quantity":   1,
		"options":    map[string]any{"engraving_text": "Hi", "color": "Or"},
	}
	resp, err := app.Test(jsonReq("POST", "/api/v1/cart", sid, add))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first add: %d", resp.StatusCode)
	}

	// Same options in a different key order merge into the line.
	add["options"] = map[string]any{"color": "Or", "engraving_text": "Hi"}
	resp, err = app.Test(jsonReq("POST", "/api/v1/cart", sid, add))
	if err != nil {
		t.Fatal(err)
	}
	var cv cartResp
	decode(t, resp, &cv)
	if len(cv.Items) != 1 || cv.Items[0].Quantity != 2 {
		t.Fatalf("want one merged line qty=2, got %+v", cv.Items)
	}
	if cv.Total != 5600 || cv.Count != 2 {
		t.Fatalf("want total=5600 count=2, got %v/%d", cv.Total, cv.Count)
	}
}

func TestCartAddRejectsMissingRequiredOption(t *testing.T) {
	app, _ := newTestApp(t)

	add := map[string]any{
		"product_id": "prd-box",
		"quantity":   1,
		"options":    map[string]any{"color": "Or"},
	}
	resp, err := app.Test(jsonReq("POST", "/api/v1/cart", "sid-req", add))
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
	if _, ok := body.Errors["engraving_text"]; !ok || len(body.Errors) != 1 {
		t.Fatalf("want one error on engraving_text, got %+v", body.Errors)
	}
}

func TestCartAddUnknownProductIs404(t *testing.T) {
	app, _ := newTestApp(t)

	add := map[string]any{"product_id": "prd-nope", "quantity": 1}
	resp, err := app.Test(jsonReq("POST", "/api/v1/cart", "sid-404", add))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("want 404, got %d", resp.StatusCode)
	}
}

func TestCartLineQuantityAndRemoval(t *testing.T) {
	app, _ := newTestApp(t)
	sid := "sid-lines"

	add := map[string]any{"product_id": "prd-oud", "quantity": 2}
	resp, err := app.Test(jsonReq("POST", "/api/v1/cart", sid, add))
	if err != nil {
		t.Fatal(err)
	}
	var cv cartResp
	decode(t, resp, &cv)
	if len(cv.Items) != 1 {
		t.Fatalf("want one line, got %+v", cv.Items)
	}
	key := cv.Items[0].OptionsKey

	// Bump the quantity through the line key.
	resp, err = app.Test(jsonReq("PATCH", "/api/v1/cart/line", sid,
		map[string]any{"optionsKey": key, "quantity": 5}))
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &cv)
	if cv.Count != 5 {
		t.Fatalf("want count 5, got %d", cv.Count)
	}

	// Zero removes it.
	resp, err = app.Test(jsonReq("PATCH", "/api/v1/cart/line", sid,
		map[string]any{"optionsKey": key, "quantity": 0}))
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &cv)
	if len(cv.Items) != 0 {
		t.Fatalf("zero quantity should drop the line, got %+v", cv.Items)
	}
}

func TestCartQuantityClamped(t *testing.T) {
	app, _ := newTestApp(t)
	sid := "sid-clamp"

	// An absurd add quantity lands at the 50 cap.
	add := map[string]any{"product_id": "prd-oud", "quantity": 500}
	resp, err := app.Test(jsonReq("POST", "/api/v1/cart", sid, add))
	if err != nil {
		t.Fatal(err)
	}
	var cv cartResp
	decode(t, resp, &cv)
	if cv.Count != 50 {
		t.Fatalf("want capped count 50, got %d", cv.Count)
	}
	key := cv.Items[0].OptionsKey

	// Absolute sets clamp too, but zero still removes.
	resp, err = app.Test(jsonReq("PATCH", "/api/v1/cart/line", sid,
		map[string]any{"optionsKey": key, "quantity": 999}))
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &cv)
	if cv.Count != 50 {
		t.Fatalf("want capped count 50 after update, got %d", cv.Count)
	}
	resp, err = app.Test(jsonReq("PATCH", "/api/v1/cart/line", sid,
		map[string]any{"optionsKey": key, "quantity": 0}))
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &cv)
	if len(cv.Items) != 0 {
		t.Fatalf("zero must still remove the line, got %+v", cv.Items)
	}
}

func TestCartPersistsAcrossRequests(t *testing.T) {
	app, _ := newTestApp(t)
	sid := "sid-persist"

	add := map[string]any{"product_id": "prd-musk", "quantity": 3}
	if _, err := app.Test(jsonReq("POST", "/api/v1/cart", sid, add)); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(jsonReq("GET", "/api/v1/cart", sid, nil))
	if err != nil {
		t.Fatal(err)
	}
	var cv cartResp
	decode(t, resp, &cv)
	if cv.Count != 3 || cv.Items[0].ProductID != "prd-musk" {
		t.Fatalf("cart did not survive: %+v", cv)
	}

	// Another session sees its own empty cart.
	resp, err = app.Test(jsonReq("GET", "/api/v1/cart", "sid-other", nil))
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &cv)
	if cv.Count != 0 {
		t.Fatalf("foreign session should be empty, got %+v", cv)
	}
}
