package models

type SearchField string

type SearchOperator string

// Search fields understood by POST /assets/search.
const (
	FieldHostName  SearchField = "host-name"
	FieldIPAddress SearchField = "ip-address"
	FieldScanDate  SearchField = "last-scan-date"
	FieldSiteID    SearchField = "site-id"
)

const (
	OperatorIs          SearchOperator = "is"
	OperatorEarlierThan SearchOperator = "is-earlier-than"
	OperatorWithinLast  SearchOperator = "is-within-the-last"
	OperatorContains    SearchOperator = "contains"
	OperatorIn          SearchOperator = "in"
)

// SearchFilter is a single predicate.
type SearchFilter struct {
	Field    SearchField    `json:"field"`
	Operator SearchOperator `json:"operator"`
	Value    any            `json:"value"`
}

// SearchCriteria is the request body of an asset search.
type SearchCriteria struct {
	Filters []SearchFilter `json:"filters"`
	Match   string         `json:"match"`
}
