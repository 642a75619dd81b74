package entity

// CatalogFilter narrows the published courses and classes.
type CatalogFilter struct {
	Search   string `form:"q"`
	Level    string `form:"level"`
	Category string `form:"category"`
}

type PreferenceSet struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}
