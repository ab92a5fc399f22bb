package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ToolRent/GoToolRent/internal/application/usecase/order"
)

type Order struct {
	List         order.ListUseCase
	Get          order.GetUseCase
	UpdateStatus order.UpdateStatusUseCase
	Delete       order.DeleteUseCase
}

func NewOrderHandler(list order.ListUseCase, get order.GetUseCase,
	updateStatus order.UpdateStatusUseCase, del order.DeleteUseCase) *Order {
	return &Order{List: list, Get: get, UpdateStatus: updateStatus, Delete: del}
}

func (h *Order) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.List.Execute(r.Context(), order.ListInput{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		ProductID: parseInt64(q.Get("productId")),
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

func (h *Order) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.Get.Execute(r.Context(), parseInt64(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Order) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var input order.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	input.ID = parseInt64(chi.URLParam(r, "id"))
	o, err := h.UpdateStatus.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Order) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.Delete.Execute(r.Context(), parseInt64(chi.URLParam(r, "id"))); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
