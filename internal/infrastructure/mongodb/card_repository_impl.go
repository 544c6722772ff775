package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/photocards/internal/domain/entity"
	"github.com/oksasatya/photocards/internal/domain/repository"
)

type cardDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Name      string               `bson:"name"`
	Link      string               `bson:"link"`
	Owner     primitive.ObjectID   `bson:"owner"`
	Likes     []primitive.ObjectID `bson:"likes"`
	CreatedAt time.Time            `bson:"createdAt"`
}

func (d cardDocument) toEntity() *entity.Card {
	likes := make([]string, 0, len(d.Likes))
	for _, l := range d.Likes {
		likes = append(likes, l.Hex())
	}
	return &entity.Card{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Link:      d.Link,
		Owner:     d.Owner.Hex(),
		Likes:     likes,
		CreatedAt: d.CreatedAt,
	}
}

type CardRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewCardRepository(db *mongo.Database) *CardRepository {
	return &CardRepository{coll: db.Collection(cardsCollection), now: time.Now}
}

func (r *CardRepository) Create(ctx context.Context, c *entity.Card) error {
	owner, err := objectID(c.Owner)
	if err != nil {
		return err
	}
	doc := cardDocument{
		ID:        primitive.NewObjectID(),
		Name:      c.Name,
		Link:      c.Link,
		Owner:     owner,
		Likes:     []primitive.ObjectID{},
		CreatedAt: r.now().UTC().Truncate(time.Millisecond),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return translate(err)
	}
	c.ID = doc.ID.Hex()
	c.Likes = []string{}
	c.CreatedAt = doc.CreatedAt
	return nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (*entity.Card, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc cardDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toEntity(), nil
}

func (r *CardRepository) List(ctx context.Context) ([]entity.Card, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []cardDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Card, 0, len(docs))
	for _, d := range docs {
		out = append(out, *d.toEntity())
	}
	return out, nil
}

func (r *CardRepository) DeleteOwned(ctx context.Context, id, owner string) (*entity.Card, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ownerID, err := objectID(owner)
	if err != nil {
		return nil, err
	}
	var doc cardDocument
	filter := bson.D{{Key: "_id", Value: oid}, {Key: "owner", Value: ownerID}}
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toEntity(), nil
}

// updateLikes applies op ($addToSet or $pull) in a single findAndModify,
// which keeps concurrent likes on one card atomic.
func (r *CardRepository) updateLikes(ctx context.Context, id, userID, op string) (*entity.Card, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	uid, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	update := bson.D{{Key: op, Value: bson.D{{Key: "likes", Value: uid}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc cardDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toEntity(), nil
}

func (r *CardRepository) AddLike(ctx context.Context, id, userID string) (*entity.Card, error) {
	return r.updateLikes(ctx, id, userID, "$addToSet")
}

func (r *CardRepository) RemoveLike(ctx context.Context, id, userID string) (*entity.Card, error) {
	return r.updateLikes(ctx, id, userID, "$pull")
}

var _ repository.CardRepository = (*CardRepository)(nil)
