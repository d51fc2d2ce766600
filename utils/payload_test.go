package utils

import (
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, method, target, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return c
}

func TestGetPayloadQueryWinsOverBody(t *testing.T) {
	c := testContext(t, "POST", "/product?limit=5", `{"limit":2,"product_title":"Chair"}`)

	payload := GetPayload(c)

	if payload["limit"] != "5" {
		t.Errorf("query should win over body, got %v", payload["limit"])
	}
	if payload["product_title"] != "Chair" {
		t.Errorf("body value lost, got %v", payload["product_title"])
	}
}

func TestGetPayloadPathParamsOverrideBody(t *testing.T) {
	c := testContext(t, "GET", "/product/7", `{"id":"from-body"}`)
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	payload := GetPayload(c)

	if payload["id"] != "7" {
		t.Errorf("path param should override body, got %v", payload["id"])
	}
}

func TestGetPayloadUnparsableBodyIgnored(t *testing.T) {
	c := testContext(t, "POST", "/product?product_id=abc", `{"broken":`)

	payload := GetPayload(c)

	if got := payload.String("product_id"); got != "abc" {
		t.Errorf("got product_id %q, want abc", got)
	}
	if _, ok := payload["broken"]; ok {
		t.Error("unparsable body should contribute nothing")
	}
}

func TestGetPayloadDecodesParamsQuery(t *testing.T) {
	c := testContext(t, "GET", `/products?params=%7B%22a%22%3A1%7D`, "")

	payload := GetPayload(c)

	want := map[string]any{"a": float64(1)}
	if !reflect.DeepEqual(payload["params"], want) {
		t.Errorf("got params %v, want %v", payload["params"], want)
	}
}

func TestGetPayloadKeepsRawParamsOnDecodeFailure(t *testing.T) {
	c := testContext(t, "GET", `/products?params=notjson`, "")

	payload := GetPayload(c)

	if payload["params"] != "notjson" {
		t.Errorf("got params %v, want the raw string", payload["params"])
	}
}

func TestStringAliasPrecedence(t *testing.T) {
	p := Payload{"productId": "camel", "product_id": "snake"}
	if got := p.String("productId", "product_id"); got != "camel" {
		t.Errorf("got %q, want camel", got)
	}

	p = Payload{"product_id": "snake"}
	if got := p.String("productId", "product_id"); got != "snake" {
		t.Errorf("got %q, want snake", got)
	}
}

func TestIntParsesStringsAndNumbers(t *testing.T) {
	p := Payload{"limit": "25", "offset": float64(40), "page": "abc"}

	if got := p.Int(10, "limit"); got != 25 {
		t.Errorf("got limit %d, want 25", got)
	}
	if got := p.Int(0, "offset"); got != 40 {
		t.Errorf("got offset %d, want 40", got)
	}
	if got := p.Int(1, "page"); got != 1 {
		t.Errorf("non-numeric page should fall back to default, got %d", got)
	}
	if got := p.Int(10, "missing"); got != 10 {
		t.Errorf("missing key should fall back to default, got %d", got)
	}
}

func TestFloatReportsPresence(t *testing.T) {
	p := Payload{"product_price": float64(120), "from_query": "99.5"}

	if v, ok := p.Float("product_price"); !ok || v != 120 {
		t.Errorf("got %v %v", v, ok)
	}
	if v, ok := p.Float("from_query"); !ok || v != 99.5 {
		t.Errorf("got %v %v", v, ok)
	}
	if _, ok := p.Float("missing"); ok {
		t.Error("missing key should report not present")
	}
}
