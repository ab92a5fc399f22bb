package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ToolRent/GoToolRent/internal/application/usecase/checkout"
)

type Checkout struct {
	UseCase checkout.UseCase
}

func NewCheckoutHandler(uc checkout.UseCase) *Checkout {
	return &Checkout{UseCase: uc}
}

// Create always answers 200 with the structured result; expected
// failure paths are carried in the body, not in the status code.
func (h *Checkout) Create(w http.ResponseWriter, r *http.Request) {
	var input checkout.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result := h.UseCase.Execute(r.Context(), input)
	writeJSON(w, http.StatusOK, result)
}
