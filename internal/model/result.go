package model

// Platform 二手平台
type Platform string

const (
	PlatformRicardo Platform = "Ricardo"
	PlatformTutti   Platform = "Tutti"
	PlatformEbay    Platform = "eBay"
)

// AllPlatforms 固定的平台顺序
var AllPlatforms = []Platform{PlatformRicardo, PlatformTutti, PlatformEbay}

// Key 平台在JSON中的键名
func (p Platform) Key() string {
	switch p {
	case PlatformRicardo:
		return "ricardo"
	case PlatformTutti:
		return "tutti"
	case PlatformEbay:
		return "ebay"
	}
	return string(p)
}

// Detection 识别结果
type Detection struct {
	Detected    string   `json:"detected"`
	Confidence  float64  `json:"confidence"` // [0,1]
	Labels      []string `json:"labels"`
	SearchQuery string   `json:"search_query"`
	Manual      bool     `json:"manual,omitempty"` // 来自手动输入的query
}

// AnalyzeResponse POST /analyze 响应
type AnalyzeResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *Detection `json:"data"`
}

// Listing 单条商品
type Listing struct {
	Title    string   `json:"title"`
	Price    float64  `json:"price"`
	Platform Platform `json:"platform"`
	Sold     bool     `json:"sold,omitempty"`
}

// SearchResponse POST /search 响应
type SearchResponse struct {
	Query       string                `json:"query"`
	Listings    map[string][]Listing  `json:"listings"`
	AllListings []Listing             `json:"all_listings"`
	Stats       map[string]PriceStats `json:"stats"`
}

// QuickSearchResponse POST /api/search 响应
type QuickSearchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Query   string `json:"query"`
}

// HealthResponse 存活检查
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}
