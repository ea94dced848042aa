package models

// InsertResult mirrors the document-store insert acknowledgement clients already parse.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors the document-store update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the document-store delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// CheckoutResult is returned by payment creation: the payment insert and the cart delete.
type CheckoutResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}
