package model

// Address is a postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
}

// Store is a partner pharmacy.
type Store struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     Address `json:"address"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	License     string  `json:"license"`
	OwnerID     ID      `json:"ownerId"`
	IsActive    bool    `json:"isActive"`
	Rating      float64 `json:"rating"`
	TotalOrders int     `json:"totalOrders"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// MedicineSales pairs a medicine with its sold units.
type MedicineSales struct {
	Medicine Medicine `json:"medicine"`
	Sales    int      `json:"sales"`
}

// StoreStats is the store-operator dashboard summary.
type StoreStats struct {
	TotalOrders       int             `json:"totalOrders"`
	TotalRevenue      float64         `json:"totalRevenue"`
	PendingOrders     int             `json:"pendingOrders"`
	CompletedOrders   int             `json:"completedOrders"`
	AverageOrderValue float64         `json:"averageOrderValue"`
	MonthlyRevenue    []float64       `json:"monthlyRevenue"`
	TopMedicines      []MedicineSales `json:"topMedicines"`
}

// PlatformStats is the platform-admin dashboard summary.
type PlatformStats struct {
	TotalUsers    int     `json:"totalUsers"`
	TotalStores   int     `json:"totalStores"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	ActiveStores  int     `json:"activeStores"`
	PendingStores int     `json:"pendingStores"`
}

// PlatformUser is a user as listed in the platform back office.
type PlatformUser struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// PlatformStore is a store as listed in the platform back office.
type PlatformStore struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Owner     string `json:"owner"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// StoreApplicationRequest is a customer's request to open a partner store.
type StoreApplicationRequest struct {
	StoreName     string `json:"storeName"`
	StoreAddress  string `json:"storeAddress"`
	StorePhone    string `json:"storePhone"`
	LicenseNumber string `json:"licenseNumber"`
	OwnerName     string `json:"ownerName"`
}

// StoreApplicationStatus is the review state of the caller's store application.
type StoreApplicationStatus struct {
	ID              ID     `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Role            Role   `json:"role"`
	StoreStatus     string `json:"storeStatus"`
	StoreName       string `json:"storeName,omitempty"`
	StoreAddress    string `json:"storeAddress,omitempty"`
	StorePhone      string `json:"storePhone,omitempty"`
	LicenseNumber   string `json:"licenseNumber,omitempty"`
	OwnerName       string `json:"ownerName,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}
