package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "storyweaver/internal/platform/errors"
	phttp "storyweaver/internal/platform/net/http"
)

func TestJSONAndStatusHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct == "" {
		t.Fatalf("expected content-type set")
	}

	rec2 := httptest.NewRecorder()
	phttp.JSONStatus(rec2, http.StatusAccepted)
	if rec2.Code != http.StatusAccepted {
		t.Fatalf("JSONStatus: expected 202, got %d", rec2.Code)
	}
}

func TestRespondOKCreatedNoContent(t *testing.T) {
	// OK writes the document bare, no envelope around it
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/x", nil)
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var doc map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("RespondOK body: %v", err)
	}
	if doc["a"] != "b" {
		t.Fatalf("bad body: %+v", doc)
	}

	// Created
	recC := httptest.NewRecorder()
	phttp.RespondCreated(recC, req, map[string]int{"id": 7})
	if recC.Code != http.StatusCreated {
		t.Fatalf("RespondCreated code: %d", recC.Code)
	}

	// NoContent should not write a JSON body
	recN := httptest.NewRecorder()
	phttp.RespondNoContent(recN, req)
	if recN.Code != http.StatusNoContent {
		t.Fatalf("RespondNoContent code: %d", recN.Code)
	}
	if recN.Body.Len() != 0 {
		t.Fatalf("RespondNoContent should have empty body, got %q", recN.Body.String())
	}
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/err", nil)

	phttp.RespondError(rec, req, perr.NotFoundf("Story not found"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body phttp.ErrorBody
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "Story not found" {
		t.Fatalf("bad error body: %+v", body)
	}
}

func TestReturnStyle_Handle(t *testing.T) {
	// OK
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]any{"x": 1})
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ok", nil)
	h(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("handle OK code: %d", rec.Code)
	}

	// Created
	hc := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Created(map[string]int{"id": 1})
	})
	recC := httptest.NewRecorder()
	hc(recC, req)
	if recC.Code != http.StatusCreated {
		t.Fatalf("handle Created code: %d", recC.Code)
	}

	// NoContent
	hn := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.NoContent()
	})
	recN := httptest.NewRecorder()
	hn(recN, req)
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("handle NoContent: code=%d body=%q", recN.Code, recN.Body.String())
	}

	// Error body derives status from the error code
	he := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.Validationf("Prompt is required"))
	})
	recE := httptest.NewRecorder()
	he(recE, req)
	if recE.Code != http.StatusBadRequest {
		t.Fatalf("handle Error code: %d", recE.Code)
	}
	var body phttp.ErrorBody
	_ = json.Unmarshal(recE.Body.Bytes(), &body)
	if body.Error != "Prompt is required" {
		t.Fatalf("bad error body: %+v", body)
	}
}
