package pricing

type QuoteRequest struct {
	ServiceType  string `json:"serviceType" binding:"required"`
	PropertySize string `json:"propertySize"`
}

type PriceBreakdown struct {
	BaseService  int `json:"baseService"`
	Installation int `json:"installation"`
	Materials    int `json:"materials"`
}

type QuoteResponse struct {
	EstimatedPrice int            `json:"estimatedPrice"`
	ServiceType    string         `json:"serviceType"`
	PropertySize   string         `json:"propertySize,omitempty"`
	Currency       string         `json:"currency"`
	PriceBreakdown PriceBreakdown `json:"priceBreakdown"`
}
