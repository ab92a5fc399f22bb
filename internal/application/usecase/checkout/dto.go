package checkout

// Input

type CheckoutInput struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`
	ProductID       int64  `json:"productId"`
	RentalPeriod    string `json:"rentalPeriod"`
	ProductStatus   string `json:"productStatus"`
}

// Output

type ResultDTO struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
}

func success(msg string) ResultDTO { return ResultDTO{IsSuccess: true, Message: msg} }
func failure(msg string) ResultDTO { return ResultDTO{IsSuccess: false, Message: msg} }
