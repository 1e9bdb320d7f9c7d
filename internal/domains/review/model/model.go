package model

const (
	EntityName = "review"
)

// Review of a stay. Served ids are namespaced per property as
// {propertyId}-{baseReviewId}; the base set is a stand-in data source shared
// by every property.
type Review struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
}
