package model

// Supplier provides products; contact info is free-form
type Supplier struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contact_info"`
}

// SupplierPatch carries the fields of a partial supplier update
type SupplierPatch struct {
	Name        *string `json:"name,omitempty"`
	ContactInfo *string `json:"contact_info,omitempty"`
}

// Apply returns a copy of s with the patch applied
func (sp SupplierPatch) Apply(s Supplier) Supplier {
	if sp.Name != nil {
		s.Name = *sp.Name
	}
	if sp.ContactInfo != nil {
		s.ContactInfo = *sp.ContactInfo
	}
	return s
}
