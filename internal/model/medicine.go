package model

// Medicine is a catalog product. Cart line items carry a snapshot of it.
type Medicine struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand,omitempty"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	Stock       int      `json:"stock,omitempty"`
	InStock     bool     `json:"inStock"`
	RxRequired  bool     `json:"rxRequired"`
	Dosage      string   `json:"dosage,omitempty"`
	SideEffects []string `json:"sideEffects,omitempty"`
}

// CartItem is one cart line: a product snapshot and its requested quantity.
type CartItem struct {
	Medicine
	Quantity int `json:"quantity"`
}

// Quote is the price breakdown shown before checkout.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"itemCount"`
}

// CreateMedicineRequest adds a product to the operator's inventory.
type CreateMedicineRequest struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	InStock    bool    `json:"inStock"`
	RxRequired bool    `json:"rxRequired"`
	Category   string  `json:"category,omitempty"`
}

// UpdateMedicineRequest is a partial inventory edit. Nil fields are left unchanged.
type UpdateMedicineRequest struct {
	Name       *string  `json:"name,omitempty"`
	Price      *float64 `json:"price,omitempty"`
	InStock    *bool    `json:"inStock,omitempty"`
	RxRequired *bool    `json:"rxRequired,omitempty"`
	Category   *string  `json:"category,omitempty"`
}

// BulkUploadResult reports a spreadsheet import.
type BulkUploadResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	TotalRows    int      `json:"totalRows"`
	SuccessCount int      `json:"successCount"`
	Errors       []string `json:"errors"`
}
