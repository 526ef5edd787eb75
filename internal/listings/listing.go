package listings

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is the structured location of a property.
type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
}

// Details holds the structured attributes of a property.
type Details struct {
	Bedrooms  int     `bson:"bedrooms" json:"bedrooms"`
	Bathrooms int     `bson:"bathrooms" json:"bathrooms"`
	Area      float64 `bson:"area" json:"area"`
	Parking   int     `bson:"parking" json:"parking"`
}

// Listing is a property record as stored in the listings collection.
type Listing struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	Amenities   []string           `bson:"amenities" json:"amenities"`
	Address     Address            `bson:"address" json:"address"`
	Details     Details            `bson:"details" json:"details"`
}

// Hex returns the listing's identifier as a hex string, or "" when unset.
func (l Listing) Hex() string {
	if l.ID.IsZero() {
		return ""
	}
	return l.ID.Hex()
}
