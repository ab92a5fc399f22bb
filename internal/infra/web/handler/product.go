package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ToolRent/GoToolRent/internal/application/usecase/product"
)

type Product struct {
	List   product.ListUseCase
	Get    product.GetUseCase
	Create product.CreateUseCase
	Update product.UpdateUseCase
	Delete product.DeleteUseCase
}

func NewProductHandler(list product.ListUseCase, get product.GetUseCase,
	create product.CreateUseCase, update product.UpdateUseCase, del product.DeleteUseCase) *Product {
	return &Product{List: list, Get: get, Create: create, Update: update, Delete: del}
}

func (h *Product) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := product.ListInput{
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		Brand:      q.Get("brand"),
		SortBy:     q.Get("sortBy"),
		SortDesc:   q.Get("sortDir") == "desc",
		CategoryID: parseInt64(q.Get("categoryId")),
		PageIndex:  parseInt(q.Get("pageIndex")),
		PageSize:   parseInt(q.Get("pageSize")),
	}
	if v := q.Get("minQuantity"); v != "" {
		n := parseInt(v)
		input.MinQuantity = &n
	}
	if v := q.Get("maxQuantity"); v != "" {
		n := parseInt(v)
		input.MaxQuantity = &n
	}

	page, err := h.List.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Product) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := parseInt64(chi.URLParam(r, "id"))
	p, err := h.Get.Execute(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Product) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.Create.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Product) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input.ID = parseInt64(chi.URLParam(r, "id"))
	p, err := h.Update.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Product) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := parseInt64(chi.URLParam(r, "id"))
	if err := h.Delete.Execute(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
