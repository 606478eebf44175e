package entities

// Customer is a staged customer row.
//
// CustomerUniqueID is the broader identity: one physical customer may appear
// under several CustomerIDs (one per order in the Olist export), all sharing
// the same CustomerUniqueID.

type Customer struct {
	CustomerID       string `json:"customer_id"`
	CustomerUniqueID string `json:"customer_unique_id"`
	ZipCodePrefix    string `json:"zip_code_prefix"`
	City             string `json:"city"`
	State            string `json:"state"`
}
