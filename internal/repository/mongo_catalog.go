package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snnyvrz/bookstore/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	publisherCollection = "publishers"

	// bookPath addresses one book inside the nested arrays; the "b" array
	// filter selects it by id.
	bookPath = "authors.$[].books.$[b]."
)

// MongoCatalogRepository keeps every publisher, with its authors and their
// books, in a single document.
type MongoCatalogRepository struct {
	collection *mongo.Collection
	log        logrus.FieldLogger
	now        func() time.Time

	indexMu sync.Mutex
	indexed bool
}

// NewMongoCatalogRepository binds the publishers collection and tries to
// create its indexes. A failure here is retried before the next write that
// needs them.
func NewMongoCatalogRepository(ctx context.Context, db *mongo.Database, log logrus.FieldLogger) *MongoCatalogRepository {
	r := &MongoCatalogRepository{
		collection: db.Collection(publisherCollection),
		log:        log,
		now:        time.Now,
	}
	if err := r.ensureIndexes(ctx); err != nil {
		log.WithError(err).Warn("failed to create publisher indexes")
	}
	return r
}

// ensureIndexes creates the collection indexes once. The unique index on
// publisherName is what keeps concurrent find-or-create calls and renames
// from producing two publishers with one name, so writes that rely on it
// refuse to run without it.
func (r *MongoCatalogRepository) ensureIndexes(ctx context.Context) error {
	r.indexMu.Lock()
	defer r.indexMu.Unlock()

	if r.indexed {
		return nil
	}

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "publisherName", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "authors._id", Value: 1}}},
		{Keys: bson.D{{Key: "authors.books._id", Value: 1}}},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create publisher indexes: %w", err)
	}

	r.indexed = true
	return nil
}

func byBookID(id string) bson.M {
	return bson.M{"authors.books._id": id}
}

func bookFilter(id string) *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{bson.M{"b._id": id}}}).
		SetReturnDocument(options.After)
}

func (r *MongoCatalogRepository) ListPublishers(ctx context.Context) ([]model.Publisher, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find publishers: %w", err)
	}
	defer cursor.Close(ctx)

	publishers := []model.Publisher{}
	if err := cursor.All(ctx, &publishers); err != nil {
		return nil, fmt.Errorf("decode publishers: %w", err)
	}
	return publishers, nil
}

func (r *MongoCatalogRepository) FindBook(ctx context.Context, id string) (*model.BookLocation, error) {
	var publisher model.Publisher
	if err := r.collection.FindOne(ctx, byBookID(id)).Decode(&publisher); err != nil {
		return nil, mongoErr(err, "find book")
	}
	return locate(&publisher, id)
}

func locate(publisher *model.Publisher, id string) (*model.BookLocation, error) {
	author, book, ok := publisher.LocateBook(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &model.BookLocation{
		PublisherID:   publisher.ID,
		PublisherName: publisher.Name,
		AuthorID:      author.ID,
		AuthorName:    author.Name,
		Book:          *book,
	}, nil
}

func (r *MongoCatalogRepository) AddBook(ctx context.Context, publisherName, authorName string, book *model.Book) error {
	if err := r.ensureIndexes(ctx); err != nil {
		return err
	}

	now := r.now()
	book.Stamp(now)

	publisher, err := r.findOrCreatePublisher(ctx, publisherName, now)
	if err != nil {
		return err
	}

	author, err := r.findOrCreateAuthor(ctx, publisher, authorName, now)
	if err != nil {
		return err
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": publisher.ID},
		bson.M{"$push": bson.M{"authors.$[a].books": book}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{"a._id": author.ID}},
		}),
	)
	if err != nil {
		return fmt.Errorf("push book: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("push book: publisher %s disappeared", publisher.ID)
	}

	r.log.WithFields(logrus.Fields{
		"publisher": publisherName,
		"author":    authorName,
		"book_id":   book.ID,
	}).Debug("book added")
	return nil
}

// findOrCreatePublisher returns the publisher with the given name,
// inserting an empty one when none exists.
func (r *MongoCatalogRepository) findOrCreatePublisher(ctx context.Context, name string, now time.Time) (*model.Publisher, error) {
	fresh := model.NewPublisher(name, now)

	var publisher model.Publisher
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"publisherName": name},
		bson.M{"$setOnInsert": bson.M{
			"_id":       fresh.ID,
			"authors":   fresh.Authors,
			"createdAt": fresh.CreatedAt,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&publisher)

	// Two upserts racing on the unique index: the loser reads the winner.
	if mongo.IsDuplicateKeyError(err) {
		err = r.collection.FindOne(ctx, bson.M{"publisherName": name}).Decode(&publisher)
	}
	if err != nil {
		return nil, fmt.Errorf("find or create publisher: %w", err)
	}
	return &publisher, nil
}

// findOrCreateAuthor returns the author with the given name inside
// publisher, pushing a new one unless a sibling with that name appeared in
// the meantime.
func (r *MongoCatalogRepository) findOrCreateAuthor(ctx context.Context, publisher *model.Publisher, name string, now time.Time) (*model.Author, error) {
	if author := publisher.FindAuthor(name); author != nil {
		return author, nil
	}

	author := model.NewAuthor(name, now)
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": publisher.ID, "authors.authorName": bson.M{"$ne": name}},
		bson.M{"$push": bson.M{"authors": author}},
	)
	if err != nil {
		return nil, fmt.Errorf("push author: %w", err)
	}

	var current model.Publisher
	if err := r.collection.FindOne(ctx, bson.M{"_id": publisher.ID}).Decode(&current); err != nil {
		return nil, fmt.Errorf("reload publisher: %w", err)
	}
	found := current.FindAuthor(name)
	if found == nil {
		return nil, fmt.Errorf("find or create author: %q missing after push", name)
	}
	return found, nil
}

// PurchaseBook decrements stock in one conditional update: the filter only
// matches while the book still has at least quantity copies left.
func (r *MongoCatalogRepository) PurchaseBook(ctx context.Context, id string, quantity int) (*model.Book, error) {
	filter := bson.M{"authors.books": bson.M{"$elemMatch": bson.M{
		"_id":         id,
		"totalCopies": bson.M{"$gte": quantity},
	}}}
	update := bson.M{
		"$inc": bson.M{
			bookPath + "totalCopies":     -quantity,
			bookPath + "purchasedCopies": quantity,
		},
		"$set": bson.M{bookPath + "updatedAt": r.now()},
	}

	var publisher model.Publisher
	err := r.collection.FindOneAndUpdate(ctx, filter, update, bookFilter(id)).Decode(&publisher)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missingOrShort(ctx, id)
	}
	if err != nil {
		return nil, fmt.Errorf("purchase book: %w", err)
	}

	loc, err := locate(&publisher, id)
	if err != nil {
		return nil, err
	}
	return &loc.Book, nil
}

// missingOrShort tells apart the two reasons a purchase filter can miss.
func (r *MongoCatalogRepository) missingOrShort(ctx context.Context, id string) error {
	n, err := r.collection.CountDocuments(ctx, byBookID(id), options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("check book: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrInsufficientStock
}

func (r *MongoCatalogRepository) UpdateBook(ctx context.Context, id string, u model.BookUpdate) (*model.Book, error) {
	set := bson.M{bookPath + "updatedAt": r.now()}
	if u.Name != nil {
		set[bookPath+"bookName"] = *u.Name
	}
	if u.ImgURL != nil {
		set[bookPath+"imgUrl"] = *u.ImgURL
	}
	if u.Description != nil {
		set[bookPath+"description"] = *u.Description
	}
	if u.PublisherDate != nil {
		set[bookPath+"publisherDate"] = *u.PublisherDate
	}
	if u.TotalCopies != nil {
		set[bookPath+"totalCopies"] = *u.TotalCopies
	}
	if u.PurchasedCopies != nil {
		set[bookPath+"purchasedCopies"] = *u.PurchasedCopies
	}
	if u.Price != nil {
		set[bookPath+"price"] = *u.Price
	}

	var publisher model.Publisher
	err := r.collection.FindOneAndUpdate(ctx, byBookID(id), bson.M{"$set": set}, bookFilter(id)).Decode(&publisher)
	if err != nil {
		return nil, mongoErr(err, "update book")
	}

	loc, err := locate(&publisher, id)
	if err != nil {
		return nil, err
	}
	return &loc.Book, nil
}

// DeleteBook pulls the book out of its author. Authors and publishers left
// empty are kept.
func (r *MongoCatalogRepository) DeleteBook(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx,
		byBookID(id),
		bson.M{"$pull": bson.M{"authors.$.books": bson.M{"_id": id}}},
	)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCatalogRepository) RenamePublisher(ctx context.Context, id, name string) (*model.Publisher, error) {
	if err := r.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	var publisher model.Publisher
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"publisherName": name}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&publisher)
	if err != nil {
		return nil, mongoErr(err, "rename publisher")
	}
	return &publisher, nil
}

func (r *MongoCatalogRepository) RenameAuthor(ctx context.Context, id, name string) (*model.Author, error) {
	var publisher model.Publisher
	if err := r.collection.FindOne(ctx, bson.M{"authors._id": id}).Decode(&publisher); err != nil {
		return nil, mongoErr(err, "find author")
	}

	author := publisher.FindAuthorByID(id)
	if author == nil {
		return nil, ErrNotFound
	}
	if author.Name == name {
		return author, nil
	}

	var updated model.Publisher
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"authors._id": id, "authors.authorName": bson.M{"$ne": name}},
		bson.M{"$set": bson.M{"authors.$[a].authorName": name}},
		options.FindOneAndUpdate().
			SetArrayFilters(options.ArrayFilters{Filters: []interface{}{bson.M{"a._id": id}}}).
			SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// The author exists, so the only way to miss is a sibling already
		// carrying the new name.
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("rename author: %w", err)
	}

	renamed := updated.FindAuthorByID(id)
	if renamed == nil {
		return nil, ErrNotFound
	}
	return renamed, nil
}

func (r *MongoCatalogRepository) BookStatistics(ctx context.Context) (model.BookStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$authors"}},
		{{Key: "$unwind", Value: "$authors.books"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalBooks", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "availableBooks", Value: bson.D{{Key: "$sum", Value: "$authors.books.totalCopies"}}},
			{Key: "purchasedBooks", Value: bson.D{{Key: "$sum", Value: "$authors.books.purchasedCopies"}}},
		}}},
	}

	var out []model.BookStatistics
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return model.BookStatistics{}, fmt.Errorf("book statistics: %w", err)
	}
	if len(out) == 0 {
		return model.BookStatistics{}, nil
	}
	return out[0], nil
}

func (r *MongoCatalogRepository) PublisherAuthorStatistics(ctx context.Context) (model.PublisherAuthorStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalPublishers", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalAuthors", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$size", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$authors", bson.A{}}}}},
			}}}},
		}}},
	}

	var out []model.PublisherAuthorStatistics
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return model.PublisherAuthorStatistics{}, fmt.Errorf("publisher statistics: %w", err)
	}
	if len(out) == 0 {
		return model.PublisherAuthorStatistics{}, nil
	}
	return out[0], nil
}

func (r *MongoCatalogRepository) PublisherPurchases(ctx context.Context, limit int) ([]model.PublisherPurchase, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$authors"}},
		{{Key: "$unwind", Value: "$authors.books"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$publisherName"},
			{Key: "purchasedCopies", Value: bson.D{{Key: "$sum", Value: "$authors.books.purchasedCopies"}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "purchasedCopies", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}

	out := []model.PublisherPurchase{}
	if err := r.aggregate(ctx, pipeline, &out); err != nil {
		return nil, fmt.Errorf("publisher purchases: %w", err)
	}
	return out, nil
}

func (r *MongoCatalogRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func mongoErr(err error, op string) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrConflict
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
