package api

import "encoding/json"

// TokenStatus is the token accounting the server attaches to every
// response. It reflects the bucket at response time; the client never
// caches or extrapolates it between calls.
type TokenStatus struct {
	Timestamp          int64   `json:"timestamp"`
	TokensLeft         int     `json:"tokensLeft"`
	RefillIn           int64   `json:"refillIn"` // milliseconds until the next refill
	RefillRate         int     `json:"refillRate"`
	TokenFlowReduction float64 `json:"tokenFlowReduction"`
	TokensConsumed     int     `json:"tokensConsumed"`
	ProcessingTimeMS   int     `json:"processingTimeInMs"`
}

// ResponseMeta is the envelope of one wire exchange: the HTTP status plus
// the server's token accounting.
type ResponseMeta struct {
	StatusCode int
	TokenStatus
}

// ProductsResponse from GET /product
type ProductsResponse struct {
	Products []Product `json:"products"`
}

// Product is one ASIN's record. Timestamps are Keepa minutes.
type Product struct {
	ASIN            string `json:"asin"`
	DomainID        int    `json:"domainId"`
	Title           string `json:"title"`
	TrackingSince   int    `json:"trackingSince"`
	ListedSince     int    `json:"listedSince"`
	LastUpdate      int    `json:"lastUpdate"`
	LastPriceChange int    `json:"lastPriceChange"`

	RootCategory int64               `json:"rootCategory"`
	Categories   []int64             `json:"categories"`
	CategoryTree []CategoryTreeEntry `json:"categoryTree"`

	Manufacturer    string `json:"manufacturer"`
	Brand           string `json:"brand"`
	ProductGroup    string `json:"productGroup"`
	PartNumber      string `json:"partNumber"`
	Model           string `json:"model"`
	Color           string `json:"color"`
	Size            string `json:"size"`
	PackageQuantity int    `json:"packageQuantity"`
	IsAdultProduct  bool   `json:"isAdultProduct"`

	EANList []string `json:"eanList"`
	UPCList []string `json:"upcList"`

	// CSV holds one raw history per Field index, nil where the API has
	// no data. Only present when the request asked for history.
	CSV [][]int `json:"csv"`

	// Stats is the aggregate block returned for a non-zero stats
	// parameter. Kept raw: its shape varies with the request.
	Stats json.RawMessage `json:"stats,omitempty"`
}

// FieldHistory returns the raw history for one field, or nil when the
// record carries none.
func (p *Product) FieldHistory(f Field) []int {
	if int(f) < 0 || int(f) >= len(p.CSV) {
		return nil
	}
	return p.CSV[f]
}

// CategoryTreeEntry is one level of a product's category path.
type CategoryTreeEntry struct {
	CatID int64  `json:"catId"`
	Name  string `json:"name"`
}

// CategoriesResponse from GET /category/
type CategoriesResponse struct {
	Categories map[string]Category `json:"categories"`

	// Parents holds every category on the way to the tree root; only
	// populated when the request asked for parents.
	Parents map[string]Category `json:"categoryParents"`
}

// Category is one node of a marketplace browse tree.
type Category struct {
	CatID           int64   `json:"catId"`
	DomainID        int     `json:"domainId"`
	Name            string  `json:"name"`
	ContextFreeName string  `json:"contextFreeName"`
	Parent          int64   `json:"parent"`
	Children        []int64 `json:"children"`
	HighestRank     int     `json:"highestRank"`
	ProductCount    int     `json:"productCount"`
	IsBrowseNode    bool    `json:"isBrowseNode"`
}

// BestSellersResponse from GET /bestsellers
type BestSellersResponse struct {
	BestSellersList BestSellersList `json:"bestSellersList"`
}

// BestSellersList is the ranked ASIN list of one category.
type BestSellersList struct {
	DomainID   int      `json:"domainId"`
	LastUpdate int      `json:"lastUpdate"` // Keepa minutes
	CategoryID string   `json:"categoryId"`
	ASINList   []string `json:"asinList"`
}

// SellersResponse from GET /seller
type SellersResponse struct {
	Sellers map[string]Seller `json:"sellers"`
}

// Seller is one marketplace merchant. Timestamps are Keepa minutes.
type Seller struct {
	SellerID   string `json:"sellerId"`
	SellerName string `json:"sellerName"`
	DomainID   int    `json:"domainId"`
	LastUpdate int    `json:"lastUpdate"`

	// CSV holds one raw history per SellerField index.
	CSV [][]int `json:"csv"`

	ASINList             []string `json:"asinList"`
	TotalStorefrontASINs []int    `json:"totalStorefrontAsins"`
}

// FieldHistory returns the raw history for one seller field, or nil when
// the record carries none.
func (s *Seller) FieldHistory(f SellerField) []int {
	if int(f) < 0 || int(f) >= len(s.CSV) {
		return nil
	}
	return s.CSV[f]
}

// ProductsOptions configures a GetProducts request. The zero value asks
// for plain product records without histories.
type ProductsOptions struct {
	// Stats adds an aggregate stats block over the last Stats days when
	// non-zero.
	Stats int

	// Update forces a server-side refresh when the record's last update
	// is older than this many hours. Nil keeps the server default; zero
	// forces a refresh unconditionally.
	Update *int

	// History includes the csv history arrays.
	History bool

	// Offers requests up-to-date marketplace offers, 20 to 100 per
	// product. Zero omits the parameter.
	Offers int

	// Rating includes the rating and review-count histories.
	Rating bool

	// Domain overrides the client's default marketplace.
	Domain Domain
}

// CategoriesOptions configures a GetCategories request.
type CategoriesOptions struct {
	// Parents adds the categoryParents map to the response.
	Parents bool

	// Domain overrides the client's default marketplace.
	Domain Domain
}

// BestSellersOptions configures a GetBestSellers request.
type BestSellersOptions struct {
	// Domain overrides the client's default marketplace.
	Domain Domain
}

// SellersOptions configures a GetSellers request.
type SellersOptions struct {
	// Storefront adds the seller's storefront ASIN list. The API allows
	// it for a single seller per request only.
	Storefront bool

	// Update forces a new storefront collection when the last one is
	// older than this many hours. Nil keeps the server default.
	Update *int

	// Domain overrides the client's default marketplace.
	Domain Domain
}
