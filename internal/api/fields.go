package api

import "fmt"

// Field indexes one history inside a product's csv array.
type Field int

// Product history fields by csv index. Price fields are in the
// marketplace's smallest currency unit; count and rank fields are plain
// integers; -1 marks "no data" throughout.
const (
	FieldAmazon Field = iota
	FieldNew
	FieldUsed
	FieldSales
	FieldListPrice
	FieldCollectible
	FieldRefurbished
	FieldNewFBMShipping
	FieldLightningDeal
	FieldWarehouse
	FieldNewFBA
	FieldCountNew
	FieldCountUsed
	FieldCountRefurbished
	FieldCountCollectible
	FieldExtraInfoUpdates
	FieldRating
	FieldCountReviews
	FieldBuyBoxShipping
	FieldUsedNewShipping
	FieldUsedVeryGoodShipping
	FieldUsedGoodShipping
	FieldUsedAcceptableShipping
	FieldCollectibleNewShipping
	FieldCollectibleVeryGoodShipping
	FieldCollectibleGoodShipping
	FieldCollectibleAcceptableShipping
	FieldRefurbishedShipping
	FieldReserved1
	FieldReserved2
	FieldTradeIn
)

// fieldNames uses the vendor's uppercase identifiers so configuration
// files can name fields the way the API documentation does.
var fieldNames = map[Field]string{
	FieldAmazon:                        "AMAZON",
	FieldNew:                           "NEW",
	FieldUsed:                          "USED",
	FieldSales:                         "SALES",
	FieldListPrice:                     "LISTPRICE",
	FieldCollectible:                   "COLLECTIBLE",
	FieldRefurbished:                   "REFURBISHED",
	FieldNewFBMShipping:                "NEW_FBM_SHIPPING",
	FieldLightningDeal:                 "LIGHTNING_DEAL",
	FieldWarehouse:                     "WAREHOUSE",
	FieldNewFBA:                        "NEW_FBA",
	FieldCountNew:                      "COUNT_NEW",
	FieldCountUsed:                     "COUNT_USED",
	FieldCountRefurbished:              "COUNT_REFURBISHED",
	FieldCountCollectible:              "COUNT_COLLECTIBLE",
	FieldExtraInfoUpdates:              "EXTRA_INFO_UPDATES",
	FieldRating:                        "RATING",
	FieldCountReviews:                  "COUNT_REVIEWS",
	FieldBuyBoxShipping:                "BUY_BOX_SHIPPING",
	FieldUsedNewShipping:               "USED_NEW_SHIPPING",
	FieldUsedVeryGoodShipping:          "USED_VERY_GOOD_SHIPPING",
	FieldUsedGoodShipping:              "USED_GOOD_SHIPPING",
	FieldUsedAcceptableShipping:        "USED_ACCEPTABLE_SHIPPING",
	FieldCollectibleNewShipping:        "COLLECTIBLE_NEW_SHIPPING",
	FieldCollectibleVeryGoodShipping:   "COLLECTIBLE_VERY_GOOD_SHIPPING",
	FieldCollectibleGoodShipping:       "COLLECTIBLE_GOOD_SHIPPING",
	FieldCollectibleAcceptableShipping: "COLLECTIBLE_ACCEPTABLE_SHIPPING",
	FieldRefurbishedShipping:           "REFURBISHED_SHIPPING",
	FieldReserved1:                     "RESERVED1",
	FieldReserved2:                     "RESERVED2",
	FieldTradeIn:                       "TRADE_IN",
}

var fieldsByName = make(map[string]Field, len(fieldNames))

func init() {
	for f, name := range fieldNames {
		fieldsByName[name] = f
	}
}

// ParseField resolves a vendor field identifier ("AMAZON", "SALES", ...)
// to its Field.
func ParseField(name string) (Field, error) {
	f, ok := fieldsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown csv field %q", name)
	}
	return f, nil
}

// String returns the vendor identifier, or the numeric index for
// unlisted values.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FIELD_%d", int(f))
}

// SellerField indexes one history inside a seller's csv array.
type SellerField int

// Seller history fields by csv index.
const (
	SellerFieldRating      SellerField = 0 // rating percentage, 0-100
	SellerFieldRatingCount SellerField = 1
)
