package model

// PrescriptionStatus enumerates prescription review states.
type PrescriptionStatus string

const (
	PrescriptionPending  PrescriptionStatus = "PENDING"
	PrescriptionVerified PrescriptionStatus = "VERIFIED"
	PrescriptionRejected PrescriptionStatus = "REJECTED"
	PrescriptionExpired  PrescriptionStatus = "EXPIRED"
)

// PrescriptionMedication is a single prescribed medication.
type PrescriptionMedication struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions,omitempty"`
}

// Prescription is an uploaded prescription.
type Prescription struct {
	ID            ID                       `json:"id"`
	UserID        ID                       `json:"userId"`
	DoctorName    string                   `json:"doctorName"`
	DoctorLicense string                   `json:"doctorLicense"`
	PatientName   string                   `json:"patientName"`
	Medications   []PrescriptionMedication `json:"medications"`
	ImageURL      string                   `json:"imageUrl,omitempty"`
	Status        PrescriptionStatus       `json:"status"`
	IssuedDate    string                   `json:"issuedDate"`
	ExpiryDate    string                   `json:"expiryDate"`
	CreatedAt     string                   `json:"createdAt"`
	UpdatedAt     string                   `json:"updatedAt"`
}

// CreatePrescriptionRequest is the payload for registering a prescription.
type CreatePrescriptionRequest struct {
	DoctorName    string                   `json:"doctorName"`
	DoctorLicense string                   `json:"doctorLicense"`
	PatientName   string                   `json:"patientName"`
	Medications   []PrescriptionMedication `json:"medications"`
	IssuedDate    string                   `json:"issuedDate"`
	ExpiryDate    string                   `json:"expiryDate"`
	ImageURL      string                   `json:"imageUrl,omitempty"`
}
