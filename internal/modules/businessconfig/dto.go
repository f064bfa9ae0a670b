package businessconfig

type CreateConfigRequest struct {
	BusinessType   string   `json:"businessType" binding:"required"`
	BusinessName   string   `json:"businessName" binding:"required"`
	Description    string   `json:"description"`
	IsActive       *bool    `json:"isActive"`
	PrimaryColor   string   `json:"primaryColor"`
	SecondaryColor string   `json:"secondaryColor"`
	ContactPhone   string   `json:"contactPhone"`
	ContactEmail   string   `json:"contactEmail"`
	ServiceAreas   []string `json:"serviceAreas"`
}

// UpdateConfigRequest patches a config; nil fields stay untouched.
type UpdateConfigRequest struct {
	BusinessName   *string   `json:"businessName"`
	Description    *string   `json:"description"`
	IsActive       *bool     `json:"isActive"`
	PrimaryColor   *string   `json:"primaryColor"`
	SecondaryColor *string   `json:"secondaryColor"`
	ContactPhone   *string   `json:"contactPhone"`
	ContactEmail   *string   `json:"contactEmail"`
	ServiceAreas   *[]string `json:"serviceAreas"`
}
