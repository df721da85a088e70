package model

type BookStatistics struct {
	TotalBooks     int64 `json:"totalBooks" bson:"totalBooks"`
	AvailableBooks int64 `json:"availableBooks" bson:"availableBooks"`
	PurchasedBooks int64 `json:"purchasedBooks" bson:"purchasedBooks"`
}

type PublisherAuthorStatistics struct {
	TotalPublishers int64 `json:"totalPublishers" bson:"totalPublishers"`
	TotalAuthors    int64 `json:"totalAuthors" bson:"totalAuthors"`
}

// PublisherPurchase is the number of copies sold across every book of one
// publisher.
type PublisherPurchase struct {
	Publisher       string `json:"publisher" bson:"_id"`
	PurchasedCopies int64  `json:"purchasedCopies" bson:"purchasedCopies"`
}

// TopPublishers is how many publishers the purchases ranking returns.
const TopPublishers = 10
