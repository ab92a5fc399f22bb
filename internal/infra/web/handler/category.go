package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ToolRent/GoToolRent/internal/application/usecase/category"
)

type Category struct {
	List   category.ListUseCase
	Get    category.GetUseCase
	Create category.CreateUseCase
	Update category.UpdateUseCase
	Delete category.DeleteUseCase
}

func NewCategoryHandler(list category.ListUseCase, get category.GetUseCase,
	create category.CreateUseCase, update category.UpdateUseCase, del category.DeleteUseCase) *Category {
	return &Category{List: list, Get: get, Create: create, Update: update, Delete: del}
}

func (h *Category) ListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.List.Execute(r.Context(), category.ListInput{
		Search:    q.Get("search"),
		SortDesc:  q.Get("sortDir") == "desc",
		PageIndex: parseInt(q.Get("pageIndex")),
		PageSize:  parseInt(q.Get("pageSize")),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Category) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.Get.Execute(r.Context(), parseInt64(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Category) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input category.SaveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.Create.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Category) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var input category.SaveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input.ID = parseInt64(chi.URLParam(r, "id"))
	c, err := h.Update.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Category) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Delete.Execute(r.Context(), parseInt64(chi.URLParam(r, "id"))); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
