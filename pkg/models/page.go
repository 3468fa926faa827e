package models

// Page wraps every paginated v3 collection response.
type Page[T any] struct {
	Resources []T      `json:"resources"`
	Page      PageInfo `json:"page"`
	Links     []Link   `json:"links,omitempty"`
}

type PageInfo struct {
	Number         int `json:"number"`
	Size           int `json:"size"`
	TotalPages     int `json:"totalPages"`
	TotalResources int `json:"totalResources"`
}

type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel"`
}
